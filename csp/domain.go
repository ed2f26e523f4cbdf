package csp

// Domain is variable v's candidate-value sequence, stored as a partitioned
// array (spec §3 "Domain[i]"): positions 0..last are the live values still
// consistent with every propagation recorded on the current search path;
// positions beyond last are values temporarily pruned by some ancestor
// node. Pruning swaps the removed value to the tail and decrements last —
// it never reallocates or copies the backing slice, so a search descent
// touching a variable's domain allocates nothing (spec §9).
type Domain struct {
	values []int
	last   int
}

// newDomain copies values into a fresh Domain with every value initially
// live. Returns ErrEmptyDomain if values is empty.
func newDomain(values []int) (*Domain, error) {
	if len(values) == 0 {
		return nil, ErrEmptyDomain
	}
	cp := make([]int, len(values))
	copy(cp, values)
	return &Domain{values: cp, last: len(cp) - 1}, nil
}

// Size returns the number of currently live values.
func (d *Domain) Size() int { return d.last + 1 }

// LastValidIndex returns the cursor: live values occupy [0, LastValidIndex()].
func (d *Domain) LastValidIndex() int { return d.last }

// At returns the value stored at position i, live or pruned.
func (d *Domain) At(i int) int { return d.values[i] }

// Live returns a fresh copy of the currently live values, in their current
// (possibly permuted) order. Safe for callers to retain; does not alias
// engine-owned storage.
func (d *Domain) Live() []int {
	out := make([]int, d.last+1)
	copy(out, d.values[:d.last+1])
	return out
}

// All returns a fresh copy of every value the domain was constructed with,
// live or pruned — the "original domain" of spec invariant 3.
func (d *Domain) All() []int {
	out := make([]int, len(d.values))
	copy(out, d.values)
	return out
}

// removeAt prunes the live value at position idx (idx must satisfy
// 0 <= idx <= d.last): it is swapped with the value currently at the tail
// of the live range and the cursor is decremented. Reports false without
// mutating anything if idx == d.last == 0, i.e. removing the last live
// value — callers must detect the emptied-domain case before committing to
// the removal (spec §4.3/§4.4: short-circuit on empty rather than leave a
// zero-length live range).
func (d *Domain) removeAt(idx int) bool {
	if d.last == 0 {
		return false
	}
	d.values[idx], d.values[d.last] = d.values[d.last], d.values[idx]
	d.last--
	return true
}

// restore undoes n prior removeAt calls by advancing the cursor back by n.
// This is the O(1)-per-variable rollback spec §9 relies on: the shrinking
// log records only a count, never the sequence of swaps, so the live/pruned
// *set* is restored exactly but the in-between array order is not
// guaranteed to match bit-for-bit what it was before the removals (see
// DESIGN.md, "[C1] CSP model"). No other invariant depends on order.
func (d *Domain) restore(n int) { d.last += n }

// pin swaps value (found by scanning the live range) into position 0 and
// returns the value that was there before, without touching the cursor.
// Used to normalize a just-assigned variable's domain head before
// propagation (spec §4.5 step 4, "Pinning" in the GLOSSARY). Because it
// swaps rather than overwrites, the multiset of stored values is preserved
// whether or not a matching unpin follows.
func (d *Domain) pin(value int) (savedHead int) {
	savedHead = d.values[0]
	for k := 1; k <= d.last && savedHead != value; k++ {
		if d.values[k] == value {
			d.values[0], d.values[k] = value, savedHead
			break
		}
	}
	return savedHead
}

// unpin swaps savedHead, the value returned by a matching pin call, back
// into position 0, returning the pinned value to the position it came from.
func (d *Domain) unpin(savedHead int) {
	value := d.values[0]
	for k := 1; k < len(d.values) && value != savedHead; k++ {
		if d.values[k] == savedHead {
			d.values[0], d.values[k] = savedHead, value
			break
		}
	}
}
