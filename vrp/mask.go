// mask.go
//
// Feasibility masking: which nodes a vehicle may legally visit next.
// All load/demand reads go through integer units to keep the decision
// exact; the three rules are applied per instance in a fixed priority
// order (termination, defaults, forced depot return).

package vrp

// Mask flags the legality of visiting each node next. Index 0 is the depot.
// An all-false Mask means the instance's episode is over: no legal move,
// including the depot, remains.
type Mask []bool

// Done reports whether the mask signals episode completion (no legal node).
func (m Mask) Done() bool {
	for _, legal := range m {
		if legal {
			return false
		}
	}
	return true
}

// LegalCount returns the number of legal nodes.
func (m Mask) LegalCount() int {
	n := 0
	for _, legal := range m {
		if legal {
			n++
		}
	}
	return n
}

// ComputeMask returns one legality Mask per instance given the batch state
// and the previously chosen node per instance. At episode start, callers
// pass the depot (node 0) as the last chosen node — the vehicle begins
// there, so the no-back-to-back rule correctly keeps it at first step.
//
// Instances are masked independently; states[i] pairs with lastChosen[i].
func ComputeMask(states []*State, lastChosen []int) []Mask {
	masks := make([]Mask, len(states))
	for i, st := range states {
		masks[i] = maskFor(st, lastChosen[i])
	}
	return masks
}

// maskFor applies the three masking rules to a single instance, in strict
// priority order. Later rules never revisit earlier ones: termination
// overrides everything, and the forced-return rule overrides the defaults.
func maskFor(st *State, last int) Mask {
	mask := make(Mask, st.NumNodes())

	remaining := st.RemainingDemandUnits()

	// Rule 1: termination. All customer demand satisfied means no legal
	// move at all — the all-false mask is the episode-complete signal.
	if remaining == 0 {
		return mask
	}

	// Rule 2: defaults. A customer is legal while its demand is open; the
	// depot is legal unless the vehicle just came from it.
	for n := 1; n < st.NumNodes(); n++ {
		mask[n] = st.DemandUnits(n) != 0
	}
	mask[depotIndex] = last != depotIndex

	// Rule 3: forced depot return. An empty vehicle (or, in partially
	// finished batches, an instance with no open demand left) has exactly
	// one legal move: back to the depot. Overrides the defaults, including
	// the no-back-to-back rule.
	if st.LoadUnits() == 0 || remaining == 0 {
		for n := range mask {
			mask[n] = false
		}
		mask[depotIndex] = true
	}

	return mask
}
