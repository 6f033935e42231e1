package regexlib

import (
	"github.com/timtadh/data-structures/set"
)

// The four Glushkov set computations. Each walks the tree and returns a set
// of setTerminals; positions keep repeated symbols apart, which is what
// makes the resulting automaton have one state per occurrence.

func newTermSet(ts ...setTerminal) *set.SortedSet {
	s := set.NewSortedSet(len(ts) + 1)
	for _, t := range ts {
		s.Add(t)
	}
	return s
}

// terms drains a set into a slice, in sorted order.
func terms(s *set.SortedSet) []setTerminal {
	out := make([]setTerminal, 0, s.Size())
	for item, next := s.Items()(); next != nil; item, next = next() {
		out = append(out, item.(setTerminal))
	}
	return out
}

func extend(dst, src *set.SortedSet) {
	for _, t := range terms(src) {
		dst.Add(t)
	}
}

// nullability collects the empty-string evidence of a subtree: empty for a
// bare terminal, epsilon under a closure. Concatenation unions the evidence
// of both branches rather than requiring both to hold; matchesEmpty is the
// conjunctive check used for start-state acceptance.
func nullability(n *Node) *set.SortedSet {
	out := newTermSet()
	switch n.typ {
	case nChar:
		out.Add(empty)
	case nUnion, nConcat:
		extend(out, nullability(n.left))
		extend(out, nullability(n.right))
	case nStar:
		out.Add(epsilon)
	default:
		panic("regexlib: operator without set semantics")
	}
	return out
}

// prefix computes the positions that can match the first symbol of an
// accepted string.
func prefix(n *Node) *set.SortedSet {
	out := newTermSet()
	switch n.typ {
	case nChar:
		out.Add(single(n.sym, n.pos))
	case nUnion:
		extend(out, prefix(n.left))
		extend(out, prefix(n.right))
	case nConcat:
		extend(out, prefix(n.left))
		if nullability(n.left).Has(epsilon) {
			extend(out, prefix(n.right))
		}
	case nStar:
		extend(out, prefix(n.left))
	default:
		panic("regexlib: operator without set semantics")
	}
	return out
}

// suffix computes the positions that can match the last symbol of an
// accepted string. Mirror of prefix with left and right swapped.
func suffix(n *Node) *set.SortedSet {
	out := newTermSet()
	switch n.typ {
	case nChar:
		out.Add(single(n.sym, n.pos))
	case nUnion:
		extend(out, suffix(n.left))
		extend(out, suffix(n.right))
	case nConcat:
		extend(out, suffix(n.right))
		if nullability(n.right).Has(epsilon) {
			extend(out, suffix(n.left))
		}
	case nStar:
		extend(out, suffix(n.left))
	default:
		panic("regexlib: operator without set semantics")
	}
	return out
}

// factors computes the ordered position pairs that can be adjacent in an
// accepted string. Concatenation wires every last position of the left
// subtree to every first position of the right one; closure wires the
// subtree's last positions back to its own first positions.
func factors(n *Node) *set.SortedSet {
	out := newTermSet()
	switch n.typ {
	case nChar:
		out.Add(empty)
	case nUnion:
		extend(out, factors(n.left))
		extend(out, factors(n.right))
	case nConcat:
		extend(out, factors(n.left))
		extend(out, factors(n.right))
		crossProduct(out, suffix(n.left), prefix(n.right))
	case nStar:
		extend(out, factors(n.left))
		crossProduct(out, suffix(n.left), prefix(n.left))
	default:
		panic("regexlib: operator without set semantics")
	}
	return dropEmpty(out)
}

func crossProduct(out, suf, pre *set.SortedSet) {
	for _, a := range terms(suf) {
		for _, b := range terms(pre) {
			out.Add(a.product(b))
		}
	}
}

// dropEmpty prunes the empty marker once real adjacencies exist; it only
// stands alone when the subtree is a single terminal.
func dropEmpty(s *set.SortedSet) *set.SortedSet {
	if s.Size() <= 1 || !s.Has(empty) {
		return s
	}
	pruned := set.NewSortedSet(s.Size() - 1)
	for _, t := range terms(s) {
		if t.kind != kindEmpty {
			pruned.Add(t)
		}
	}
	return pruned
}

// matchesEmpty reports whether the subtree accepts the empty string. The
// nullability set cannot answer this for concatenations (it unions both
// branches' evidence), so start-state acceptance is decided here.
func matchesEmpty(n *Node) bool {
	switch n.typ {
	case nChar:
		return false
	case nUnion:
		return matchesEmpty(n.left) || matchesEmpty(n.right)
	case nConcat:
		return matchesEmpty(n.left) && matchesEmpty(n.right)
	case nStar:
		return true
	}
	panic("regexlib: operator without set semantics")
}
