package propagate

import "github.com/csplab/gocsp/csp"

// NoVariable is the sentinel "no variable" index used where the spec calls
// for an optional variable (the root call's absent "just-assigned
// variable", or ForwardCheck/AC3's "no emptied variable" result).
const NoVariable = -1

// ForwardCheck prunes the domains of last's unassigned neighbors after
// last was assigned (spec §4.3). For each live candidate value of an
// unassigned neighbor y, it tests the stored (last, y) constraint against
// last's chosen value and removes values that fail, recording each
// removal in log.
//
// Returns the index of the first neighbor whose live slice becomes empty
// and ok == true, short-circuiting the remaining neighbors; returns
// (NoVariable, false) if every neighbor retains at least one value.
//
// If last == NoVariable (the root call), ForwardCheck is a no-op (spec
// §4.3 edge case).
func ForwardCheck(c *csp.CSP, state map[int]int, last int, log ShrinkLog) (emptied int, ok bool) {
	if last == NoVariable {
		return NoVariable, false
	}
	lastValue := state[last]

	for _, y := range c.Neighbors(last) {
		if _, assigned := state[y]; assigned {
			continue
		}
		pred, exists := c.Constraint(last, y)
		if !exists {
			continue
		}

		idx := 0
		for idx <= c.LastValidIndex(y) {
			vy := c.DomainValue(y, idx)
			if pred.Check(last, y, lastValue, vy) {
				idx++
				continue
			}
			// Candidate value vy is inconsistent with last's assignment;
			// prune it. removeAt swaps the tail value into idx, so idx is
			// re-examined on the next iteration rather than advanced.
			if !c.RemoveValueAt(y, idx) {
				return y, true
			}
			log.record(y)
		}
	}
	return NoVariable, false
}
