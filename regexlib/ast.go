// Package regexlib compiles regular expressions into nondeterministic finite
// automata via Glushkov's construction and simulates them against input
// strings. The automaton has exactly one state per terminal occurrence in the
// pattern, plus an implicit start state.
package regexlib

// Position identifies one terminal occurrence within a compiled pattern.
// State 0 of the automaton is reserved for the start state, so allocators
// hand out positions from 1.
type Position uint32

type nodeType int

const (
	nChar nodeType = iota
	nUnion
	nConcat
	nStar
	nPlus  // reserved, never produced by the parser
	nQMark // reserved, never produced by the parser
)

// Node is one vertex of an expression tree: either a terminal occurrence
// (sym, pos) or an operation over one (star) or two subtrees. Each node
// exclusively owns its children; trees are read-only after construction.
type Node struct {
	typ   nodeType
	left  *Node
	right *Node

	sym rune     // for nChar
	pos Position // for nChar
}

// positionAllocator issues positions unique within one pattern. It is owned
// by a single parse or Builder, never shared between patterns.
type positionAllocator struct {
	last Position
}

func (a *positionAllocator) allocate() Position {
	a.last++
	return a.last
}

// Builder constructs expression trees programmatically, bypassing the
// parser. Each Builder owns its own position counter, so all terminals of
// one tree must come from the same Builder.
type Builder struct {
	alloc positionAllocator
}

func NewBuilder() *Builder { return &Builder{} }

// Terminal returns a leaf matching one occurrence of r.
func (b *Builder) Terminal(r rune) *Node {
	return &Node{typ: nChar, sym: r, pos: b.alloc.allocate()}
}

// Concat chains nodes left to right. Panics on an empty argument list.
func Concat(nodes ...*Node) *Node { return reduce(nConcat, nodes) }

// Or alternates nodes left to right. Panics on an empty argument list.
func Or(nodes ...*Node) *Node { return reduce(nUnion, nodes) }

// Star wraps n in a Kleene closure.
func Star(n *Node) *Node { return &Node{typ: nStar, left: n} }

func reduce(typ nodeType, nodes []*Node) *Node {
	if len(nodes) == 0 {
		panic("regexlib: cannot combine an empty node list")
	}
	out := nodes[0]
	for _, n := range nodes[1:] {
		out = &Node{typ: typ, left: out, right: n}
	}
	return out
}
