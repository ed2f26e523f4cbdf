// Package heuristic provides pure variable- and value-ordering functions
// for the search engines (spec §4.2). Implementations are stateless
// closures over a *csp.CSP and the current partial assignment; none of
// them mutate engine state.
package heuristic

import "github.com/csplab/gocsp/csp"

// Variable selects the next unassigned variable to branch on, given the
// CSP and the current assignment (variable index -> chosen value). It
// returns ok == false if every variable is already assigned.
type Variable func(c *csp.CSP, state map[int]int) (v int, ok bool)

// Naive returns the first unassigned index in variable order (spec §4.2
// "naive_variable").
func Naive(c *csp.CSP, state map[int]int) (int, bool) {
	for v := 0; v < c.NumVariables(); v++ {
		if _, assigned := state[v]; !assigned {
			return v, true
		}
	}
	return 0, false
}

// MinRemainingValues returns the unassigned variable with the smallest
// live-domain size, ties broken by lowest index (spec §4.2
// "smallest-domain (min-remaining-values)").
func MinRemainingValues(c *csp.CSP, state map[int]int) (int, bool) {
	best := -1
	bestSize := 0
	for v := 0; v < c.NumVariables(); v++ {
		if _, assigned := state[v]; assigned {
			continue
		}
		size := c.DomainSize(v)
		if best == -1 || size < bestSize {
			best, bestSize = v, size
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
