// Package propagate implements the two domain-pruning passes the search
// engines consult at every node: forward checking (spec §4.3) and AC-3
// arc consistency (spec §4.4). Both mutate a *csp.CSP's domains in place
// and record their removals in a ShrinkLog so the caller can roll back in
// O(k) time, k being the number of distinct variables pruned — not the
// number of values pruned (spec §9).
package propagate

import "github.com/csplab/gocsp/csp"

// ShrinkLog records, per variable, how many live values were removed
// during one propagation pass at one search node.
type ShrinkLog map[int]int

// record increments the removal count for variable v.
func (s ShrinkLog) record(v int) {
	s[v]++
}

// Rollback restores every variable's cursor in the log by its recorded
// count, undoing this pass's removals (spec §3 "Shrinking log").
func (s ShrinkLog) Rollback(c *csp.CSP) {
	for v, n := range s {
		c.RestoreDomain(v, n)
	}
}
