package regexlib

import (
	"sort"

	"github.com/timtadh/data-structures/set"
)

// start is the implicit initial state. Terminal positions begin at 1, so it
// never collides with a symbol occurrence.
const start Position = 0

type move struct {
	from Position
	sym  rune
}

// NFA is the compiled automaton: one state per terminal occurrence plus the
// start state. Immutable once built; safe for concurrent Simulate calls.
type NFA struct {
	states map[Position]struct{}
	accept map[Position]struct{}
	trans  map[move]map[Position]struct{}
}

func newNFA() *NFA {
	return &NFA{
		states: map[Position]struct{}{start: {}},
		accept: map[Position]struct{}{},
		trans:  map[move]map[Position]struct{}{},
	}
}

func (n *NFA) addEdge(from Position, sym rune, to Position) {
	key := move{from: from, sym: sym}
	if n.trans[key] == nil {
		n.trans[key] = map[Position]struct{}{}
	}
	n.trans[key][to] = struct{}{}
}

// setsToNFA assembles the automaton from the three top-level Glushkov sets.
// Prefix singles seed transitions out of the start state, suffix singles
// become accepting states, factor doubles become the interior transitions.
// Markers carry no positions and contribute nothing.
func setsToNFA(pre, suf, fac *set.SortedSet) *NFA {
	n := newNFA()

	for _, t := range terms(pre) {
		switch t.kind {
		case kindSingle:
			n.states[t.pos1] = struct{}{}
			n.addEdge(start, t.sym1, t.pos1)
		case kindDouble:
			panic("regexlib: adjacency in prefix set")
		}
	}

	for _, t := range terms(suf) {
		switch t.kind {
		case kindSingle:
			n.states[t.pos1] = struct{}{}
			n.accept[t.pos1] = struct{}{}
		case kindDouble:
			panic("regexlib: adjacency in suffix set")
		}
	}

	for _, t := range terms(fac) {
		switch t.kind {
		case kindDouble:
			n.states[t.pos1] = struct{}{}
			n.states[t.pos2] = struct{}{}
			n.addEdge(t.pos1, t.sym2, t.pos2)
		case kindSingle:
			panic("regexlib: lone occurrence in factors set")
		}
	}

	return n
}

// Simulate runs the automaton over input and reports whether it can end in
// an accepting state. Standard multi-state stepping: the live set starts at
// the start state, each symbol maps it through the transition function, and
// a dead live set stays dead. No backtracking.
func (n *NFA) Simulate(input string) bool {
	current := map[Position]struct{}{start: {}}
	for _, r := range input {
		next := map[Position]struct{}{}
		for s := range current {
			for to := range n.trans[move{from: s, sym: r}] {
				next[to] = struct{}{}
			}
		}
		current = next
	}
	for s := range current {
		if _, ok := n.accept[s]; ok {
			return true
		}
	}
	return false
}

// Edge is one transition of the automaton, used by the DOT exporter and the
// table printers.
type Edge struct {
	From   Position
	Symbol rune
	To     Position
}

// Edges returns every transition in deterministic order.
func (n *NFA) Edges() []Edge {
	var out []Edge
	for key, tos := range n.trans {
		for to := range tos {
			out = append(out, Edge{From: key.from, Symbol: key.sym, To: to})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.From != b.From {
			return a.From < b.From
		}
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		return a.To < b.To
	})
	return out
}

// States returns all state ids in increasing order.
func (n *NFA) States() []Position {
	out := make([]Position, 0, len(n.states))
	for s := range n.states {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Accepting reports whether id is an accepting state.
func (n *NFA) Accepting(id Position) bool {
	_, ok := n.accept[id]
	return ok
}
