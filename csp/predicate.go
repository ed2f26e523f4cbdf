package csp

// Predicate is a binary constraint between two variables: given the pair of
// variable indices and a candidate value for each, it reports whether the
// pair is consistent. Implementations must be pure — no observable side
// effects — and safe to call concurrently from multiple read-only CSP
// accesses (spec §5).
type Predicate interface {
	Check(i, j, vi, vj int) bool
}

// PredicateFunc adapts a plain function to the Predicate interface, the
// idiomatic Go equivalent of the reference's bare callables.
type PredicateFunc func(i, j, vi, vj int) bool

// Check calls f(i, j, vi, vj).
func (f PredicateFunc) Check(i, j, vi, vj int) bool { return f(i, j, vi, vj) }

// and is the conjunction of two predicates, evaluated left to right with
// short-circuiting. Used by AddConstraint when a second constraint is added
// for a pair already in the model (spec §4.1).
type and struct {
	a, b Predicate
}

func (c *and) Check(i, j, vi, vj int) bool {
	return c.a.Check(i, j, vi, vj) && c.b.Check(i, j, vi, vj)
}

// And returns a Predicate that holds iff both a and b hold.
func And(a, b Predicate) Predicate {
	return &and{a: a, b: b}
}

// swapped views a Predicate from the other argument order: swapped(p).Check(j, i, vj, vi)
// == p.Check(i, j, vi, vj). Used to derive the (j,i) entry from a stored (i,j) predicate.
type swapped struct {
	p Predicate
}

func (s *swapped) Check(i, j, vi, vj int) bool {
	return s.p.Check(j, i, vj, vi)
}

// Swap returns the argument-swapped view of p.
func Swap(p Predicate) Predicate {
	return &swapped{p: p}
}

// NotEqual is a ready-made Predicate for "all different" pairwise constraints.
var NotEqual Predicate = PredicateFunc(func(_, _, vi, vj int) bool { return vi != vj })
