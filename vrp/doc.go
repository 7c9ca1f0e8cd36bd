// Package vrp provides the batched state-transition engine for the
// capacitated Vehicle Routing Problem.
//
// # Reading Guide
//
// Start with these three files to understand the engine kernel:
//   - instance.go: Instance generation (locations, demands, capacity) and the Batch container
//   - mask.go: Feasibility masking — which nodes a vehicle may visit next
//   - transition.go: The load/demand update rule applied when a node is chosen
//
// # Architecture
//
// The engine is a pure, synchronous, data-parallel computation: every
// operation is applied per instance across the batch with no cross-instance
// interaction. An external decision process drives the loop
//
//	GenerateBatch -> [ComputeMask -> choose -> ApplyTransition]* -> ComputeReward
//
// until every instance's mask is all-false. episode.go packages that loop
// together with per-instance completion tracking; policy.go supplies baseline
// node-choice policies standing in for an external (learned) decision-maker.
//
// # Fixed-point invariant
//
// Loads and demands are stored normalized (value / capacity, a float in
// [0,1]) but every comparison and subtraction is performed on integer
// capacity units via fixedpoint.go. Compute in integer units, store
// normalized — this holds for every update so no floating-point error
// accumulates across decision steps.
//
// Sub-packages:
//   - vrp/trace/: per-step decision trace recording and CSV export
package vrp
