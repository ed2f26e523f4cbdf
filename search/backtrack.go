package search

import (
	"context"
	"time"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/propagate"
)

// Backtrack is a depth-first, chronologically-backtracking decision
// engine (spec §4.5): on a dead end it always resumes at the immediate
// parent, trying that variable's next candidate value.
type Backtrack struct {
	c   *csp.CSP
	cfg Config
}

// NewBacktrack binds a Backtrack engine to c with the given Config. A Run
// that fails restores c's cursors; a Run that succeeds leaves every
// variable of c pinned to its solution value (cursor 0), so a later Run on
// the same c searches only that assignment.
func NewBacktrack(c *csp.CSP, cfg Config) *Backtrack {
	return &Backtrack{c: c, cfg: cfg}
}

// Run searches for a satisfying assignment, honoring ctx cancellation
// alongside the configured time budget. Counters reset at the start of
// every call (spec §4.7).
func (bt *Backtrack) Run(ctx context.Context) Result {
	start := time.Now()
	b := newBase(ctx, bt.c, bt.cfg)
	state := make(map[int]int, bt.c.NumVariables())

	solved := bt.solve(b, state, propagate.NoVariable)

	outcome := Unsat
	switch {
	case solved:
		outcome = Solved
	case b.budgetExceeded():
		outcome = Timeout
	}

	assignment := map[string]int{}
	if solved {
		assignment = assignmentToLabels(bt.c, state)
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

// solve implements one node of spec §4.5's algorithm: budget check,
// consistency check, pin, leaf check, propagate, choose, iterate,
// exhaust. Pin is hoisted ahead of the leaf check (spec §4.5 numbers it
// step 4, after the step-3 leaf check, but applied literally that
// ordering never pins the variable that completes a successful leaf,
// violating invariant 1 — "for every assigned variable v … the chosen
// value is stored at domains[v][0] and last_valid_index[v] == 0" — on
// exactly the success path. Pinning last before testing isLeaf satisfies
// invariant 1 on every return, including success.
func (bt *Backtrack) solve(b *base, state map[int]int, last int) bool {
	b.nodes++
	if b.budgetExceeded() {
		return false
	}
	if !b.consistent(state, last) {
		return false
	}

	pinned := last != propagate.NoVariable
	var undo pinState
	if pinned {
		undo = b.pin(last, state[last])
	}

	if b.isLeaf(state) {
		if b.cfg.LeafEvaluator(state) {
			return true
		}
		if pinned {
			b.unpin(undo)
		}
		return false
	}

	out := b.runPropagation(state, last)
	if out.emptied {
		out.log.Rollback(b.c)
		if pinned {
			b.unpin(undo)
		}
		return false
	}

	n, ok := b.cfg.VariableHeuristic(b.c, state)
	if !ok {
		out.log.Rollback(b.c)
		if pinned {
			b.unpin(undo)
		}
		return false
	}

	for _, value := range b.cfg.ValueHeuristic(b.c, n) {
		state[n] = value
		if bt.solve(b, state, n) {
			return true
		}
		delete(state, n)
	}

	out.log.Rollback(b.c)
	if pinned {
		b.unpin(undo)
	}
	return false
}
