package heuristic

import (
	"math/rand"

	"github.com/csplab/gocsp/csp"
)

// Value orders variable v's currently live candidate values for trial.
// The returned slice is a fresh copy, safe for the caller to mutate.
type Value func(c *csp.CSP, v int) []int

// NaiveValues yields v's live values in their current domain order (spec
// §4.2 "naive_values").
func NaiveValues(c *csp.CSP, v int) []int {
	return c.LiveValues(v)
}

// RandomValues returns a Value heuristic that yields a random permutation
// of v's live values, drawn from rng. Determinism requires the caller to
// supply a seeded *rand.Rand (spec §4.2/§9 — the engine itself manages no
// entropy), mirroring builder.builderConfig's injected-RNG convention.
func RandomValues(rng *rand.Rand) Value {
	return func(c *csp.CSP, v int) []int {
		values := c.LiveValues(v)
		rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		return values
	}
}
