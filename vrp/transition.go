// transition.go
//
// The load/demand update rule. ApplyTransition is functional: it returns
// fresh states and leaves its inputs untouched, mirroring how the decision
// loop treats state snapshots. All arithmetic runs in integer units and the
// results are written back normalized.

package vrp

// ApplyTransition advances every instance's state by its chosen node and
// returns the updated states. Input states are not mutated. Instances are
// updated independently; states[i] pairs with chosen[i].
//
// The engine tolerates illegal choices: picking a customer whose demand is
// already zero degenerates to serving nothing rather than failing. Callers
// are expected to choose legal nodes per ComputeMask.
func ApplyTransition(states []*State, chosen []int) []*State {
	next := make([]*State, len(states))
	for i, st := range states {
		next[i] = applyChoice(st, chosen[i])
	}
	return next
}

// applyChoice computes the successor of a single instance's state.
func applyChoice(st *State, chosen int) *State {
	out := st.Clone()

	if chosen == depotIndex {
		// Depot visit: refill to full capacity, clear the marker slot.
		for n := range out.Loads {
			out.Loads[n] = 1.0
		}
		out.Demands[depotIndex] = 0
		return out
	}

	// Customer visit: serve as much of the node's demand as the load allows.
	load := st.LoadUnits()
	demand := st.DemandUnits(chosen)
	served := min(load, demand)

	newLoad := load - served
	newDemand := demand - served

	normLoad := ToNormalized(newLoad, st.Capacity)
	for n := range out.Loads {
		out.Loads[n] = normLoad
	}
	out.Demands[chosen] = ToNormalized(newDemand, st.Capacity)

	// Legacy bookkeeping: the depot slot holds normalized(new load) - 1
	// after every customer visit. Kept for state-layout parity with the
	// reference dynamics; nothing in the engine reads it.
	out.Demands[depotIndex] = ToNormalized(newLoad-st.Capacity, st.Capacity)

	return out
}
