package search

import (
	"time"

	"github.com/csplab/gocsp/csp"
)

// Outcome classifies how a run ended (spec §7).
type Outcome int

const (
	// Solved: a complete, constraint-satisfying assignment was found.
	Solved Outcome = iota
	// Unsat: the search space was exhausted within budget; no assignment exists.
	Unsat
	// Timeout: the time budget elapsed before the search could conclude
	// either way. The caller should treat this as "unknown", not "unsat".
	Timeout
)

// String renders the Outcome for logs and error messages.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsat:
		return "unsat"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Stats carries the observable counters spec §4.7 requires, reset at the
// start of every run.
type Stats struct {
	NodesVisited int
	Elapsed      time.Duration
	Outcome      Outcome
}

// Result is the engine's public return value (spec §6 "Engine result").
// When Solved is false, Assignment is empty or partial and carries no
// guarantees.
type Result struct {
	Solved     bool
	Assignment map[string]int
	Stats      Stats
}

// assignmentToLabels converts an internal variable-index assignment to the
// label-keyed map the public Result exposes.
func assignmentToLabels(c *csp.CSP, state map[int]int) map[string]int {
	out := make(map[string]int, len(state))
	for v, value := range state {
		out[c.Label(v)] = value
	}
	return out
}
