// policy.go
//
// Baseline node-choice policies. The real decision-maker is an external
// collaborator (typically learned); these two stand in for it so the engine
// can be driven end to end from the CLI and exercised in tests.

package vrp

import (
	"math"
	"math/rand"
)

// Policy chooses the next node for one instance given its current state and
// legality mask. Choose is only called with at least one legal node; the
// returned index must be legal per the mask.
type Policy interface {
	// Choose returns the next node index for this instance. last is the
	// previously chosen node (the vehicle's current position).
	Choose(inst Instance, st *State, last int, mask Mask) int
}

// GreedyPolicy picks the legal node nearest to the vehicle's current
// position. Deterministic; ties break toward the lower index.
type GreedyPolicy struct{}

func (GreedyPolicy) Choose(inst Instance, st *State, last int, mask Mask) int {
	pos := inst.Locations[last]
	best := -1
	bestDist := math.Inf(1)
	for n, legal := range mask {
		if !legal {
			continue
		}
		if d := pos.Dist(inst.Locations[n]); d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// RandomPolicy picks uniformly among legal nodes using its own
// deterministic stream. Useful as a worst-case baseline and for shaking
// out masking bugs that a greedy visit order would never reach.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy derives the policy's stream from the given master seed,
// isolated from the generation subsystems.
func NewRandomPolicy(seed int64) *RandomPolicy {
	return &RandomPolicy{
		rng: NewPartitionedRNG(NewGenerationKey(seed)).ForSubsystem(SubsystemPolicy),
	}
}

func (p *RandomPolicy) Choose(inst Instance, st *State, last int, mask Mask) int {
	k := p.rng.Intn(mask.LegalCount())
	for n, legal := range mask {
		if !legal {
			continue
		}
		if k == 0 {
			return n
		}
		k--
	}
	return depotIndex // unreachable with a non-empty mask
}

// NewPolicy builds a named baseline policy. Valid names: "greedy", "random".
// Unknown names return nil.
func NewPolicy(name string, seed int64) Policy {
	switch name {
	case "greedy", "":
		return GreedyPolicy{}
	case "random":
		return NewRandomPolicy(seed)
	default:
		return nil
	}
}
