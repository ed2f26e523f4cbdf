// Package search implements the two decision engines of spec §4.5–4.7: a
// chronological-backtracking engine (Backtrack) and a conflict-directed
// backjumping variant (Backjump), both built on in-place domain pruning
// with exact rollback via propagate.ShrinkLog.
package search

import (
	"time"

	"github.com/csplab/gocsp/heuristic"
)

// LeafEvaluator is called once every variable is assigned. The default
// always returns true; a caller may supply one that returns false to force
// the engine to keep searching for a better leaf (spec §4.5 step 3). The
// optimize package does not use one: it rebuilds the CSP for each bound.
type LeafEvaluator func(state map[int]int) bool

// Config configures an engine run (spec §6 "Engine configuration").
type Config struct {
	VariableHeuristic heuristic.Variable
	ValueHeuristic    heuristic.Value
	LeafEvaluator     LeafEvaluator
	UseAC3            bool
	UseFC             bool
	AC3Frequency      int
	TimeLimit         time.Duration
}

// Option mutates a Config under construction, in the functional-option
// style of core.GraphOption.
type Option func(*Config)

// NewConfig builds a Config from sane defaults (naive variable/value
// heuristics, no propagation, unbounded time, accept-any leaf) plus any
// supplied options, applied left to right.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		VariableHeuristic: heuristic.Naive,
		ValueHeuristic:    heuristic.NaiveValues,
		LeafEvaluator:     func(map[int]int) bool { return true },
		AC3Frequency:      1,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithAC3 enables the AC-3 arc-consistency propagator at every node whose
// visit count is a multiple of AC3Frequency.
func WithAC3() Option { return func(c *Config) { c.UseAC3 = true } }

// WithFC enables forward checking at every node (never gated by
// AC3Frequency, spec §6).
func WithFC() Option { return func(c *Config) { c.UseFC = true } }

// WithAC3Frequency sets k: AC-3 runs only at nodes whose visit count is a
// multiple of k. k <= 0 is treated as 1 (every node).
func WithAC3Frequency(k int) Option {
	return func(c *Config) {
		if k <= 0 {
			k = 1
		}
		c.AC3Frequency = k
	}
}

// WithTimeLimit sets the wall-clock budget; d <= 0 disables it.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Config) { c.TimeLimit = d }
}

// WithVariableHeuristic overrides the variable-ordering heuristic.
func WithVariableHeuristic(h heuristic.Variable) Option {
	return func(c *Config) { c.VariableHeuristic = h }
}

// WithValueHeuristic overrides the value-ordering heuristic.
func WithValueHeuristic(h heuristic.Value) Option {
	return func(c *Config) { c.ValueHeuristic = h }
}

// WithLeafEvaluator overrides the leaf evaluator (spec §6).
func WithLeafEvaluator(fn LeafEvaluator) Option {
	return func(c *Config) { c.LeafEvaluator = fn }
}
