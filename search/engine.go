// File: engine.go
// Role: mechanics shared by Backtrack and Backjump — deadline polling,
// the consistency check, propagation dispatch, and pin/unpin bookkeeping
// (spec §4.5 steps 1, 2, 4, 5). Neither engine's own file reimplements
// these; each Run builds a *base and passes it down its solve recursion.
package search

import (
	"context"
	"time"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/propagate"
)

// base holds the state and configuration shared by both engines, grounded
// on tsp.bbEngine's shape (spec.md §9 "Backjump recursion state... is
// part of the engine, not the CSP"): a dedicated struct rather than
// closures, so dependencies stay explicit and testable.
type base struct {
	c   *csp.CSP
	cfg Config
	ctx context.Context

	nodes       int
	hasDeadline bool
	deadline    time.Time
}

func newBase(ctx context.Context, c *csp.CSP, cfg Config) *base {
	b := &base{c: c, cfg: cfg, ctx: ctx}
	if cfg.TimeLimit > 0 {
		b.hasDeadline = true
		b.deadline = time.Now().Add(cfg.TimeLimit)
	}
	return b
}

// budgetExceeded polls the wall clock and the context at the top of every
// node (spec §4.5 step 1, §5 "polls wall-clock time at the top of each
// node").
func (b *base) budgetExceeded() bool {
	if b.hasDeadline && time.Now().After(b.deadline) {
		return true
	}
	select {
	case <-b.ctx.Done():
		return true
	default:
		return false
	}
}

// consistent implements spec §4.5 step 2: at the root (last ==
// propagate.NoVariable) it is trivially satisfied; otherwise every stored
// constraint between last and an already-assigned variable must hold.
func (b *base) consistent(state map[int]int, last int) bool {
	if last == propagate.NoVariable {
		return true
	}
	lastValue := state[last]
	for other, otherValue := range state {
		if other == last {
			continue
		}
		if pred, ok := b.c.Constraint(last, other); ok {
			if !pred.Check(last, other, lastValue, otherValue) {
				return false
			}
		}
	}
	return true
}

// isLeaf reports whether every variable has been assigned.
func (b *base) isLeaf(state map[int]int) bool {
	return len(state) == b.c.NumVariables()
}

// pinState captures what pinning variable v overwrote, so a failure path
// can restore it exactly (spec GLOSSARY "Pinning").
type pinState struct {
	v          int
	savedHead  int
	prevCursor int
}

// pin normalizes the just-assigned variable v so its chosen value occupies
// position 0 and its cursor collapses to 0 (spec §4.5 step 4), returning
// enough state to undo it.
func (b *base) pin(v, value int) pinState {
	saved := b.c.PinValue(v, value)
	prev := b.c.SetLastValidIndex(v, 0)
	return pinState{v: v, savedHead: saved, prevCursor: prev}
}

// unpin reverses a matching pin call.
func (b *base) unpin(p pinState) {
	b.c.SetLastValidIndex(p.v, p.prevCursor)
	b.c.UnpinValue(p.v, p.savedHead)
}

// propagationOutcome reports what a propagation pass (AC-3 and/or FC) did
// at one node, including enough detail for Backjump to build its relevant
// set (spec §4.6: AC-3 failure contributes no variable, FC failure
// contributes the emptied variable).
type propagationOutcome struct {
	log         propagate.ShrinkLog
	emptied     bool
	emptiedVar  int
	emptiedByFC bool
}

// runPropagation applies AC-3 (if enabled and gated by AC3Frequency) then
// FC (if enabled, never gated — spec §6), in that order (spec §4.5 step
// 5), sharing one ShrinkLog so a single Rollback call undoes both passes.
func (b *base) runPropagation(state map[int]int, last int) propagationOutcome {
	log := propagate.ShrinkLog{}

	if b.cfg.UseAC3 && b.nodes%b.cfg.AC3Frequency == 0 {
		if v, ok := propagate.AC3(b.c, state, last, log); ok {
			return propagationOutcome{log: log, emptied: true, emptiedVar: v}
		}
	}
	if b.cfg.UseFC {
		if v, ok := propagate.ForwardCheck(b.c, state, last, log); ok {
			return propagationOutcome{log: log, emptied: true, emptiedVar: v, emptiedByFC: true}
		}
	}
	return propagationOutcome{log: log}
}
