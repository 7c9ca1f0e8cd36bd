package vrp

// newTestState builds a State directly from integer units: the vehicle's
// load and one remaining demand per customer (the depot slot is prepended
// automatically, holding zero).
func newTestState(capacity, load int, customerDemands ...int) *State {
	n := len(customerDemands) + 1
	st := &State{
		Loads:    make([]float64, n),
		Demands:  make([]float64, n),
		Capacity: capacity,
	}
	for i := range st.Loads {
		st.Loads[i] = ToNormalized(load, capacity)
	}
	for i, d := range customerDemands {
		st.Demands[i+1] = ToNormalized(d, capacity)
	}
	return st
}

// unitDemands reads a state's demand slots back as integer units.
func unitDemands(st *State) []int {
	out := make([]int, st.NumNodes())
	for i := range out {
		out[i] = st.DemandUnits(i)
	}
	return out
}
