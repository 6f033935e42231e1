package regexlib

import (
	"hash/fnv"

	"github.com/timtadh/data-structures/types"
)

type termKind int

const (
	kindEmpty   termKind = iota // ∅
	kindEpsilon                 // ε
	kindSingle                  // a₁
	kindDouble                  // a₁b₂
)

// setTerminal is the element type of the Glushkov sets: a marker (empty or
// epsilon), one terminal occurrence, or an ordered adjacency of two
// occurrences. Equality is over fields, never identity.
type setTerminal struct {
	kind termKind
	sym1 rune
	pos1 Position
	sym2 rune
	pos2 Position
}

var (
	empty   = setTerminal{kind: kindEmpty}
	epsilon = setTerminal{kind: kindEpsilon}
)

func single(sym rune, pos Position) setTerminal {
	return setTerminal{kind: kindSingle, sym1: sym, pos1: pos}
}

func double(s1 rune, p1 Position, s2 rune, p2 Position) setTerminal {
	return setTerminal{kind: kindDouble, sym1: s1, pos1: p1, sym2: s2, pos2: p2}
}

// product combines two set elements: empty absorbs, epsilon is identity, two
// single occurrences join into an adjacency. No other combination can reach
// this point.
func (t setTerminal) product(o setTerminal) setTerminal {
	switch {
	case t.kind == kindEmpty || o.kind == kindEmpty:
		return empty
	case t.kind == kindEpsilon:
		return o
	case o.kind == kindEpsilon:
		return t
	case t.kind == kindSingle && o.kind == kindSingle:
		return double(t.sym1, t.pos1, o.sym1, o.pos1)
	}
	panic("regexlib: invalid product operands")
}

// setTerminal implements types.Hashable so the set engine can keep it in a
// data-structures SortedSet.

func (t setTerminal) Equals(o types.Equatable) bool {
	b, ok := o.(setTerminal)
	return ok && t == b
}

func (t setTerminal) Less(o types.Sortable) bool {
	b, ok := o.(setTerminal)
	if !ok {
		return false
	}
	switch {
	case t.kind != b.kind:
		return t.kind < b.kind
	case t.sym1 != b.sym1:
		return t.sym1 < b.sym1
	case t.pos1 != b.pos1:
		return t.pos1 < b.pos1
	case t.sym2 != b.sym2:
		return t.sym2 < b.sym2
	}
	return t.pos2 < b.pos2
}

func (t setTerminal) Hash() int {
	h := fnv.New32a()
	h.Write([]byte{
		byte(t.kind),
		byte(t.sym1), byte(t.sym1 >> 8), byte(t.sym1 >> 16),
		byte(t.pos1), byte(t.pos1 >> 8), byte(t.pos1 >> 16),
		byte(t.sym2), byte(t.sym2 >> 8), byte(t.sym2 >> 16),
		byte(t.pos2), byte(t.pos2 >> 8), byte(t.pos2 >> 16),
	})
	return int(h.Sum32())
}
