// Package optimize implements spec §7's dichotomic optimization driver: it
// treats a decision engine (search.Backtrack or search.Backjump) as a
// feasibility oracle over an integer bound and binary-searches for the
// smallest feasible bound, grounded on original_source's
// coloring_optimization and, for the shrinking-incumbent shape, on
// tsp/bb.go's branch-and-bound loop (lifted here to operate across whole
// engine runs rather than within a single one).
package optimize

import (
	"context"
	"time"

	"github.com/csplab/gocsp/csp"
	"github.com/csplab/gocsp/search"
)

// Result is Minimize's outcome: the smallest bound found feasible within
// budget (or hi, which is assumed feasible and never probed), the
// search.Result of the probe that proved it (the zero Result when Best is
// hi), and whether the
// search exhausted the whole remaining interval (Exact) or stopped early
// because the time budget ran out (spec §7 "may return a bound rather
// than the true optimum under a time limit").
type Result struct {
	Best    int
	Engine  search.Result
	Exact   bool
	Probes  int
	Elapsed time.Duration
}

// Engine runs one feasibility probe against c and reports whether it
// found a satisfying assignment. search.Backtrack.Run and
// search.Backjump.Run both satisfy this signature once their receiver is
// bound.
type Engine func(ctx context.Context) search.Result

// Minimize finds the smallest bound in [lo, hi] for which build(bound)
// is satisfiable, using newEngine to construct a fresh decision engine
// for each probe (spec §7). build must return a CSP whose feasibility is
// monotonic in bound: if bound b is feasible, every b' > b must also be
// feasible (spec §7 invariant; coloring and makespan-style bounds both
// satisfy it). hi itself is assumed feasible and is never independently
// probed — it is the starting incumbent, mirroring
// original_source/instances/coloring.py's max_degree+1 seed.
//
// Each probe tests the midpoint between the incumbent and smallest, a
// lower bound that starts at lo. A feasible probe becomes the incumbent;
// an infeasible one moves smallest up to the probed bound, or one past it
// once smallest is directly below the incumbent, so the bound just below
// the incumbent can be probed twice. Returns once smallest reaches the
// incumbent, or once ctx is done or
// the deadline elapses, in which case Result.Exact is false and
// Result.Best is only an upper bound, not necessarily optimal.
func Minimize(ctx context.Context, build func(bound int) *csp.CSP, lo, hi int, newEngine func(c *csp.CSP) Engine) Result {
	start := time.Now()
	best := hi
	var bestResult search.Result
	smallest := lo
	probes := 0

	for smallest <= best-1 {
		select {
		case <-ctx.Done():
			return Result{Best: best, Engine: bestResult, Exact: false, Probes: probes, Elapsed: time.Since(start)}
		default:
		}

		toTest := (best + smallest) / 2
		c := build(toTest)
		res := newEngine(c)(ctx)
		probes++

		if res.Stats.Outcome == search.Timeout {
			return Result{Best: best, Engine: bestResult, Exact: false, Probes: probes, Elapsed: time.Since(start)}
		}

		if !res.Solved {
			if best-smallest > 1 {
				smallest = toTest
			} else {
				smallest++
			}
			continue
		}

		best = toTest
		bestResult = res
	}

	return Result{Best: best, Engine: bestResult, Exact: true, Probes: probes, Elapsed: time.Since(start)}
}
