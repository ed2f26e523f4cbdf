package search

import (
	"context"
	"time"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/propagate"
)

// Backjump is the conflict-directed variant of spec §4.6: on a dead end it
// computes how many ancestor levels are irrelevant to the failure and
// skips them, rather than always resuming at the immediate parent.
type Backjump struct {
	c   *csp.CSP
	cfg Config
}

// NewBackjump binds a Backjump engine to c with the given Config.
func NewBackjump(c *csp.CSP, cfg Config) *Backjump {
	return &Backjump{c: c, cfg: cfg}
}

// Run searches for a satisfying assignment. See Backtrack.Run for the
// shared budget/cancellation/stats contract.
func (bj *Backjump) Run(ctx context.Context) Result {
	start := time.Now()
	b := newBase(ctx, bj.c, bj.cfg)
	state := make(map[int]int, bj.c.NumVariables())

	solved, _, _ := bj.solve(b, state, nil, propagate.NoVariable)

	outcome := Unsat
	switch {
	case solved:
		outcome = Solved
	case b.budgetExceeded():
		outcome = Timeout
	}

	assignment := map[string]int{}
	if solved {
		assignment = assignmentToLabels(bj.c, state)
	}
	return Result{
		Solved:     solved,
		Assignment: assignment,
		Stats: Stats{
			NodesVisited: b.nodes,
			Elapsed:      time.Since(start),
			Outcome:      outcome,
		},
	}
}

// solve implements spec §4.6. order holds every variable assigned along
// the current path, most recent last, not including the variable this
// call is about to choose. It returns:
//   - (true, _, _) on success — jump and relevant are meaningless.
//   - (false, 1, R) for a conventional chronological step back.
//   - (false, j>1, R) to ask the caller to pop j levels without trying
//     further values, because R implicates none of the intervening ones.
func (bj *Backjump) solve(b *base, state map[int]int, order []int, last int) (bool, int, map[int]struct{}) {
	b.nodes++
	if b.budgetExceeded() {
		return false, b.c.NumVariables(), map[int]struct{}{}
	}
	if !b.consistent(state, last) {
		return false, 1, map[int]struct{}{}
	}

	// Pin ahead of the leaf check (see Backtrack.solve): otherwise the
	// variable that completes a successful leaf is never pinned and
	// invariant 1 fails to hold on the success return.
	pinned := last != propagate.NoVariable
	var undo pinState
	if pinned {
		undo = b.pin(last, state[last])
	}

	if b.isLeaf(state) {
		if b.cfg.LeafEvaluator(state) {
			return true, 0, nil
		}
		if pinned {
			b.unpin(undo)
		}
		return false, 1, map[int]struct{}{}
	}

	out := b.runPropagation(state, last)
	if out.emptied {
		out.log.Rollback(b.c)
		if pinned {
			b.unpin(undo)
		}
		relevant := map[int]struct{}{}
		if out.emptiedByFC {
			relevant[out.emptiedVar] = struct{}{}
		}
		return false, 1, relevant
	}

	n, ok := b.cfg.VariableHeuristic(b.c, state)
	if !ok {
		out.log.Rollback(b.c)
		if pinned {
			b.unpin(undo)
		}
		return false, 1, map[int]struct{}{}
	}

	childOrder := make([]int, len(order)+1)
	copy(childOrder, order)
	childOrder[len(order)] = n

	relevant := map[int]struct{}{}
	for _, value := range b.cfg.ValueHeuristic(b.c, n) {
		state[n] = value
		succ, jump, childRelevant := bj.solve(b, state, childOrder, n)
		if succ {
			return true, 0, nil
		}
		for v := range childRelevant {
			relevant[v] = struct{}{}
		}
		if jump > 1 {
			delete(state, n)
			out.log.Rollback(b.c)
			if pinned {
				b.unpin(undo)
			}
			return false, jump - 1, childRelevant
		}
	}

	delete(state, n)
	out.log.Rollback(b.c)
	if pinned {
		b.unpin(undo)
	}
	relevant[n] = struct{}{}
	jump := computeJump(b.c, order, relevant)
	return false, jump, relevant
}

// computeJump implements spec §4.6's algorithm: union relevant's
// neighborhoods, restrict to variables in order, and find the distance
// from the tail of order to the nearest match.
func computeJump(c *csp.CSP, order []int, relevant map[int]struct{}) int {
	if len(order) == 0 {
		return 1
	}
	relevantAncestors := make(map[int]struct{})
	for v := range relevant {
		for _, z := range c.Neighbors(v) {
			relevantAncestors[z] = struct{}{}
		}
	}
	n := len(order)
	for i := 1; i <= n; i++ {
		if _, ok := relevantAncestors[order[n-i]]; ok {
			return i
		}
	}
	// No ancestor in order is implicated — can only happen if the failing
	// variable shares no constraint with anything already assigned. Fall
	// back to a full chronological unwind rather than the reference's
	// unreachable-case crash (spec leaves this case undefined).
	return n
}
