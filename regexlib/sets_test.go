package regexlib

import (
	"testing"

	"github.com/timtadh/data-structures/set"
)

// ------------------------------------------------------------------- helpers

func wantTerms(t *testing.T, got *set.SortedSet, want ...setTerminal) {
	t.Helper()
	if got.Size() != len(want) {
		t.Fatalf("set size want %d got %d: %v", len(want), got.Size(), terms(got))
	}
	for _, w := range want {
		if !got.Has(w) {
			t.Fatalf("set missing %v: %v", w, terms(got))
		}
	}
}

// Linearized form of (a(ab)*)* | (ba)* with positions a₁ a₂ b₃ b₄ a₅.
func complexTree() *Node {
	return Or(
		Star(Concat(term('a', 1), Star(Concat(term('a', 2), term('b', 3))))),
		Star(Concat(term('b', 4), term('a', 5))),
	)
}

// -------------------------------------------------------------- nullability

func TestNullability(t *testing.T) {
	wantTerms(t, nullability(term('a', 1)), empty)
	wantTerms(t, nullability(Or(term('a', 1), term('b', 2))), empty)
	wantTerms(t, nullability(Concat(term('a', 1), term('b', 2))), empty)
	wantTerms(t, nullability(Star(term('a', 1))), epsilon)
	// union of branch evidence, not conjunction
	wantTerms(t, nullability(Concat(Star(term('a', 1)), term('b', 2))), epsilon, empty)
}

// ------------------------------------------------------------------- prefix

func TestPrefix(t *testing.T) {
	wantTerms(t, prefix(term('a', 1)), single('a', 1))
	wantTerms(t, prefix(Or(term('a', 1), term('b', 2))), single('a', 1), single('b', 2))
	wantTerms(t, prefix(Concat(term('a', 1), term('b', 2))), single('a', 1))
	wantTerms(t, prefix(Star(term('a', 1))), single('a', 1))
	// nullable left lets the right side start the match
	wantTerms(t, prefix(Concat(Star(term('a', 1)), term('b', 2))), single('a', 1), single('b', 2))
}

func TestPrefixComplete(t *testing.T) {
	wantTerms(t, prefix(complexTree()), single('a', 1), single('b', 4))
}

// ------------------------------------------------------------------- suffix

func TestSuffix(t *testing.T) {
	wantTerms(t, suffix(term('a', 1)), single('a', 1))
	wantTerms(t, suffix(Or(term('a', 1), term('b', 2))), single('a', 1), single('b', 2))
	wantTerms(t, suffix(Concat(term('a', 1), term('b', 2))), single('b', 2))
	wantTerms(t, suffix(Star(term('a', 1))), single('a', 1))
	// nullable right keeps the left side's last positions live
	wantTerms(t, suffix(Concat(term('a', 1), Star(term('b', 2)))), single('a', 1), single('b', 2))
}

func TestSuffixComplete(t *testing.T) {
	wantTerms(t, suffix(complexTree()), single('a', 1), single('b', 3), single('a', 5))
}

// ------------------------------------------------------------------ factors

func TestFactors(t *testing.T) {
	wantTerms(t, factors(term('a', 1)), empty)
	wantTerms(t, factors(Or(term('a', 1), term('b', 2))), empty)
	wantTerms(t, factors(Concat(term('a', 1), term('b', 2))), double('a', 1, 'b', 2))
	wantTerms(t, factors(Star(term('a', 1))), double('a', 1, 'a', 1))
}

func TestFactorsComplete(t *testing.T) {
	wantTerms(t, factors(complexTree()),
		double('a', 1, 'a', 2),
		double('a', 1, 'a', 1),
		double('a', 2, 'b', 3),
		double('b', 3, 'a', 1),
		double('b', 3, 'a', 2),
		double('b', 4, 'a', 5),
		double('a', 5, 'b', 4),
	)
}

// ------------------------------------------------------------------ product

func TestProduct(t *testing.T) {
	a := single('a', 1)
	b := single('b', 2)

	if got := a.product(b); got != double('a', 1, 'b', 2) {
		t.Fatalf("a·b: got %v", got)
	}
	if got := a.product(epsilon); got != a {
		t.Fatalf("a·ε: got %v", got)
	}
	if got := epsilon.product(b); got != b {
		t.Fatalf("ε·b: got %v", got)
	}
	if got := epsilon.product(epsilon); got != epsilon {
		t.Fatalf("ε·ε: got %v", got)
	}
	if got := empty.product(a); got != empty {
		t.Fatalf("∅·a: got %v", got)
	}
	if got := b.product(empty); got != empty {
		t.Fatalf("b·∅: got %v", got)
	}
}

func TestProductInvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("product of two adjacencies should panic")
		}
	}()
	d := double('a', 1, 'b', 2)
	d.product(d)
}

// ------------------------------------------------------------- matchesEmpty

func TestMatchesEmpty(t *testing.T) {
	cases := []struct {
		tree *Node
		want bool
	}{
		{term('a', 1), false},
		{Star(term('a', 1)), true},
		{Concat(Star(term('a', 1)), term('b', 2)), false},
		{Concat(Star(term('a', 1)), Star(term('b', 2))), true},
		{Or(term('a', 1), Star(term('b', 2))), true},
		{Or(term('a', 1), term('b', 2)), false},
	}
	for i, c := range cases {
		if got := matchesEmpty(c.tree); got != c.want {
			t.Fatalf("case %d: want %v got %v", i, c.want, got)
		}
	}
}
