// File: api.go
// Role: CSP construction and the constraint/neighborhood maintenance that
// backs it (spec §4.1). No search logic lives here.
package csp

import "fmt"

// Constraint is a single binary constraint supplied at construction time:
// Pred applies between variables I and J, with I != J.
type Constraint struct {
	I, J int
	Pred Predicate
}

// New builds a CSP from ordered domains (one non-empty value slice per
// variable) and a set of binary constraints, inserting each constraint via
// AddConstraint (spec §4.1 "construct"). labels may be nil, in which case
// variables are labeled by their decimal index.
func New(domains [][]int, constraints []Constraint, labels []string) (*CSP, error) {
	if labels != nil && len(labels) != len(domains) {
		return nil, cspErrorf("New", ErrDomainCountMismatch)
	}

	c := &CSP{
		domains:     make([]*Domain, len(domains)),
		labels:      make([]string, len(domains)),
		constraints: make(map[pairKey]Predicate),
		neigh:       make([]map[int]struct{}, len(domains)),
	}
	for i, values := range domains {
		d, err := newDomain(values)
		if err != nil {
			return nil, cspErrorf("New", err)
		}
		c.domains[i] = d
		c.neigh[i] = make(map[int]struct{})
		if labels != nil {
			c.labels[i] = labels[i]
		} else {
			c.labels[i] = fmt.Sprintf("%d", i)
		}
	}
	for _, ct := range constraints {
		if err := c.AddConstraint(ct.I, ct.J, ct.Pred); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddConstraint records pred between variables i and j and updates the
// neighborhood map for both. If a predicate already exists for (i, j), the
// stored predicate becomes the conjunction of the old and new one; the
// (j, i) entry is always the argument-swapped view of whatever is stored
// under (i, j), so propagators can query from either variable's side
// without a conditional branch (spec §4.1 rationale).
//
// Returns ErrInvalidIndex if i or j is out of range, or ErrSelfLoop if
// i == j.
func (c *CSP) AddConstraint(i, j int, pred Predicate) error {
	c.muDomains.RLock()
	n := len(c.domains)
	c.muDomains.RUnlock()

	if !(i >= 0 && i < n) || !(j >= 0 && j < n) {
		return cspErrorf("AddConstraint", ErrInvalidIndex)
	}
	if i == j {
		return cspErrorf("AddConstraint", ErrSelfLoop)
	}

	c.muConstraints.Lock()
	defer c.muConstraints.Unlock()

	key := pairKey{i, j}
	if existing, ok := c.constraints[key]; ok {
		combined := And(existing, pred)
		c.constraints[key] = combined
		c.constraints[pairKey{j, i}] = Swap(combined)
	} else {
		c.constraints[key] = pred
		c.constraints[pairKey{j, i}] = Swap(pred)
	}

	c.neigh[i][j] = struct{}{}
	c.neigh[j][i] = struct{}{}
	return nil
}

// Constraint returns the predicate stored for (i, j) and whether one
// exists. Propagators use this to test c(x, y, vx, vy) from x's side.
func (c *CSP) Constraint(i, j int) (Predicate, bool) {
	c.muConstraints.RLock()
	defer c.muConstraints.RUnlock()
	p, ok := c.constraints[pairKey{i, j}]
	return p, ok
}

// Neighbors returns a fresh copy of the set of variables constrained with v.
func (c *CSP) Neighbors(v int) []int {
	c.muConstraints.RLock()
	defer c.muConstraints.RUnlock()
	out := make([]int, 0, len(c.neigh[v]))
	for n := range c.neigh[v] {
		out = append(out, n)
	}
	return out
}

// ConstraintPairs returns every (i, j) key currently stored, used by AC-3's
// root initialization (spec §4.4 "the initial work set is all constraint
// keys").
func (c *CSP) ConstraintPairs() [][2]int {
	c.muConstraints.RLock()
	defer c.muConstraints.RUnlock()
	out := make([][2]int, 0, len(c.constraints))
	for k := range c.constraints {
		out = append(out, [2]int{k.i, k.j})
	}
	return out
}
