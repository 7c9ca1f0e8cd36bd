// state.go
//
// Defines the mutable per-instance State evolved over an episode. Values are
// stored normalized (value / capacity); all decisions and updates read them
// back through integer units (see fixedpoint.go).

package vrp

// depotIndex is the node slot reserved for the depot in every instance.
const depotIndex = 0

// State is the evolving load/demand picture of one instance.
//
// Loads holds the vehicle's current load broadcast identically across all
// node slots — conceptually a single scalar, stored per node for batching
// uniformity with the reference state layout.
//
// Demands[1:] hold each customer's remaining demand. Demands[0] is the
// depot's slot, repurposed after each customer visit as a legacy bookkeeping
// marker (normalized new load minus one). The masking rule never reads it;
// it is carried only for state-layout parity. Do not infer meaning from it.
type State struct {
	Loads    []float64 // normalized, length N+1, all slots equal
	Demands  []float64 // normalized, length N+1; slot 0 is the depot marker
	Capacity int       // integer capacity backing the normalization
}

// NewState builds the initial State for an instance: a full load broadcast
// to every slot and each customer's full demand.
func NewState(inst Instance) *State {
	n := inst.NumNodes()
	st := &State{
		Loads:    make([]float64, n),
		Demands:  make([]float64, n),
		Capacity: inst.Capacity,
	}
	for i := 0; i < n; i++ {
		st.Loads[i] = 1.0 // capacity/capacity
		st.Demands[i] = ToNormalized(inst.Demands[i], inst.Capacity)
	}
	return st
}

// Clone returns a deep copy. Transitions are functional; Clone is how they
// leave their input untouched.
func (st *State) Clone() *State {
	out := &State{
		Loads:    make([]float64, len(st.Loads)),
		Demands:  make([]float64, len(st.Demands)),
		Capacity: st.Capacity,
	}
	copy(out.Loads, st.Loads)
	copy(out.Demands, st.Demands)
	return out
}

// NumNodes returns N+1 for this state's instance.
func (st *State) NumNodes() int {
	return len(st.Loads)
}

// LoadUnits returns the current vehicle load in integer capacity units.
// Every slot carries the same broadcast value; slot 0 is read.
func (st *State) LoadUnits() int {
	return ToUnits(st.Loads[depotIndex], st.Capacity)
}

// DemandUnits returns node i's remaining demand in integer capacity units.
// Meaningful for customer slots only; slot 0 is the depot marker.
func (st *State) DemandUnits(i int) int {
	return ToUnits(st.Demands[i], st.Capacity)
}

// RemainingDemandUnits returns the sum of all customers' remaining demand
// in integer units.
func (st *State) RemainingDemandUnits() int {
	total := 0
	for i := 1; i < len(st.Demands); i++ {
		total += st.DemandUnits(i)
	}
	return total
}

// Done reports whether every customer's remaining demand is zero.
func (st *State) Done() bool {
	return st.RemainingDemandUnits() == 0
}
