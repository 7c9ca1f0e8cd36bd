// episode.go
//
// The decision loop: mask, choose, transition, repeat until every instance's
// mask is all-false, then score the recorded tours. The engine proper has no
// notion of an episode — this driver packages the loop the way an external
// decision process runs it, with per-instance completion tracking.

package vrp

import (
	"fmt"

	"github.com/vrp-sim/vrp-sim/vrp/trace"
)

// EpisodeConfig groups episode driver parameters.
type EpisodeConfig struct {
	// MaxSteps caps the number of decision steps before the episode is
	// abandoned with ErrStepLimit. 0 applies DefaultMaxSteps.
	MaxSteps int

	// Trace, when non-nil, records every decision step.
	Trace *trace.EpisodeTrace
}

// DefaultMaxSteps bounds runaway episodes. Under a legal policy every
// customer visit serves at least one unit and depot visits never repeat, so
// an episode needs at most two steps per unit of total demand.
const DefaultMaxSteps = 10000

// EpisodeResult is the outcome of one full batch episode.
type EpisodeResult struct {
	Tours   [][]int   // chosen node sequence per instance, depot legs implicit
	Rewards []float64 // total tour length per instance
	Steps   int       // decision steps taken by the longest-running instance
}

// RunEpisode drives the batch from its initial state to termination under
// the given policy and computes rewards over the recorded tours.
//
// Finished instances stay in the batch: their masks are all-false, the
// policy is no longer consulted for them, and a depot choice is recorded as
// a hold so ApplyTransition's batch shape stays uniform. A depot "visit" on
// a finished instance leaves its reward unchanged — the duplicate depot leg
// has zero length.
func RunEpisode(batch *Batch, policy Policy, cfg EpisodeConfig) (*EpisodeResult, error) {
	maxSteps := cfg.MaxSteps
	if maxSteps == 0 {
		maxSteps = DefaultMaxSteps
	}

	size := batch.Size()
	states := make([]*State, size)
	copy(states, batch.States)

	// The vehicle starts at the depot.
	last := make([]int, size)
	tours := make([][]int, size)

	steps := 0
	for ; ; steps++ {
		masks := ComputeMask(states, last)

		active := false
		chosen := make([]int, size)
		for i, m := range masks {
			if m.Done() {
				chosen[i] = depotIndex // hold at depot, zero-length leg
				continue
			}
			active = true
			c := policy.Choose(batch.Instances[i], states[i], last[i], m)
			if c < 0 || c >= states[i].NumNodes() {
				return nil, fmt.Errorf("%w: policy chose node %d for instance %d (valid range 0..%d)",
					ErrInvalidNodeIndex, c, i, states[i].NumNodes()-1)
			}
			chosen[i] = c
			tours[i] = append(tours[i], c)
		}
		if !active {
			break
		}
		if steps >= maxSteps {
			return nil, fmt.Errorf("%w: %d steps without termination", ErrStepLimit, maxSteps)
		}

		states = ApplyTransition(states, chosen)

		if cfg.Trace != nil {
			for i, m := range masks {
				if m.Done() {
					continue
				}
				cfg.Trace.RecordStep(trace.StepRecord{
					Instance:        i,
					Step:            steps,
					Node:            chosen[i],
					LoadAfter:       states[i].Loads[depotIndex],
					DemandRemaining: ToNormalized(states[i].RemainingDemandUnits(), states[i].Capacity),
				})
			}
		}

		last = chosen
	}

	return &EpisodeResult{
		Tours:   tours,
		Rewards: ComputeReward(batch.Instances, tours),
		Steps:   steps,
	}, nil
}
