package propagate

import "github.com/csplab/gocsp/csp"

// arc is a directed constraint-graph edge (x, y): AC-3 tests whether every
// live value of x has support in y.
type arc struct{ x, y int }

// AC3 enforces arc consistency over a work set of directed arcs (spec
// §4.4). At the root (last == NoVariable) the work set starts as every
// constraint key; otherwise it starts as {(z, last) | z in neigh[last]}.
//
// The loop pops an arc (x, y), skips it if x is already assigned, and
// otherwise removes every live value of x that has no supporting value in
// y's live slice, logging each removal. If x's domain empties, AC3
// returns immediately. If x's domain was shrunk but not emptied, every
// arc (z, x) with z != y is re-enqueued.
//
// Returns the emptied variable and true, or (NoVariable, false) once the
// work set drains without emptying any domain.
func AC3(c *csp.CSP, state map[int]int, last int, log ShrinkLog) (emptied int, ok bool) {
	queue := make([]arc, 0)
	queued := make(map[arc]struct{})

	enqueue := func(a arc) {
		if _, present := queued[a]; present {
			return
		}
		queued[a] = struct{}{}
		queue = append(queue, a)
	}

	if last == NoVariable {
		for _, p := range c.ConstraintPairs() {
			enqueue(arc{p[0], p[1]})
		}
	} else {
		for _, z := range c.Neighbors(last) {
			enqueue(arc{z, last})
		}
	}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		delete(queued, a)

		if _, assigned := state[a.x]; assigned {
			continue
		}
		pred, exists := c.Constraint(a.x, a.y)
		if !exists {
			continue
		}

		shrunk := false
		idx := 0
		for idx <= c.LastValidIndex(a.x) {
			vx := c.DomainValue(a.x, idx)
			if hasSupport(c, pred, a.x, a.y, vx) {
				idx++
				continue
			}
			if !c.RemoveValueAt(a.x, idx) {
				return a.x, true
			}
			log.record(a.x)
			shrunk = true
		}

		if shrunk {
			for _, z := range c.Neighbors(a.x) {
				if z != a.y {
					enqueue(arc{z, a.x})
				}
			}
		}
	}

	return NoVariable, false
}

// hasSupport reports whether some live value of y satisfies pred against
// (x, y, vx, vy).
func hasSupport(c *csp.CSP, pred csp.Predicate, x, y, vx int) bool {
	for idx := 0; idx <= c.LastValidIndex(y); idx++ {
		vy := c.DomainValue(y, idx)
		if pred.Check(x, y, vx, vy) {
			return true
		}
	}
	return false
}
