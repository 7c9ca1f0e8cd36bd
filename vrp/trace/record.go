// Package trace provides decision-trace recording for episode analysis.
// This package has no dependencies on vrp/ — it stores pure data types.
package trace

// StepRecord captures a single node-choice decision for one instance.
type StepRecord struct {
	Instance        int     // batch slot of the instance
	Step            int     // decision step index within the episode
	Node            int     // chosen node; 0 is the depot
	LoadAfter       float64 // normalized vehicle load after the transition
	DemandRemaining float64 // normalized sum of open customer demand after the transition
}

// IsDepot reports whether this step returned the vehicle to the depot.
func (r StepRecord) IsDepot() bool {
	return r.Node == 0
}
