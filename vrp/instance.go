// instance.go
//
// Defines the immutable per-episode problem data (Instance) and batched
// instance generation. Node 0 is always the depot; nodes 1..N are customers.

package vrp

import (
	"fmt"
	"math"
)

// Point is a 2D location in the unit square.
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Instance is one independent VRP problem: a depot, N customers with
// integer demands, and a vehicle capacity. Never mutated after generation.
type Instance struct {
	Locations []Point // length N+1; Locations[0] is the depot
	Demands   []int   // integer capacity units; Demands[0] == 0
	Capacity  int     // maximum vehicle load, > 0
}

// NumNodes returns N+1, the depot plus customer count.
func (inst Instance) NumNodes() int {
	return len(inst.Locations)
}

// TotalDemand returns the sum of all customer demands in integer units.
func (inst Instance) TotalDemand() int {
	total := 0
	for _, d := range inst.Demands {
		total += d
	}
	return total
}

// Batch pairs a slice of generated Instances with their initial States.
// Instances[i] and States[i] describe the same problem; the two slices
// always have equal length.
type Batch struct {
	Instances []Instance
	States    []*State
}

// Size returns the number of instances in the batch.
func (b *Batch) Size() int {
	return len(b.Instances)
}

// GeneratorConfig groups instance generation parameters.
type GeneratorConfig struct {
	BatchSize    int   // number of independent instances, > 0
	NumCustomers int   // customers per instance (nodes 1..N), > 0
	Capacity     int   // vehicle capacity in integer units, >= MaxDemand
	MaxDemand    int   // upper bound (inclusive) on per-customer demand, >= 1
	Seed         int64 // master seed; same seed => bit-identical batch
}

// Validate checks the configuration, returning ErrInvalidConfiguration
// (wrapped with detail) on the first violation found.
func (cfg GeneratorConfig) Validate() error {
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidConfiguration, cfg.BatchSize)
	}
	if cfg.NumCustomers <= 0 {
		return fmt.Errorf("%w: customer count must be positive, got %d", ErrInvalidConfiguration, cfg.NumCustomers)
	}
	if cfg.MaxDemand < 1 {
		return fmt.Errorf("%w: max demand must be >= 1, got %d", ErrInvalidConfiguration, cfg.MaxDemand)
	}
	if cfg.Capacity < cfg.MaxDemand {
		return fmt.Errorf("%w: capacity %d < max demand %d", ErrInvalidConfiguration, cfg.Capacity, cfg.MaxDemand)
	}
	return nil
}

// GenerateBatch produces a batch of Instances with their initial States.
//
// Locations are uniform in [0,1]^2. The depot's coordinates participate in
// the uniform draw and are then overwritten to the origin — a deliberate
// simplification carried over from the reference dynamics, which also keeps
// the location stream layout independent of the depot convention. Customer
// demands are uniform integers in [1, MaxDemand]; the depot's demand is 0.
// Every vehicle starts fully loaded (load == Capacity).
//
// Generation draws from a PartitionedRNG owned by this call, with isolated
// streams for locations and demands, so concurrent GenerateBatch calls never
// interfere with each other's reproducibility.
func GenerateBatch(cfg GeneratorConfig) (*Batch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := NewPartitionedRNG(NewGenerationKey(cfg.Seed))
	locRNG := rng.ForSubsystem(SubsystemLocations)
	demandRNG := rng.ForSubsystem(SubsystemDemands)

	batch := &Batch{
		Instances: make([]Instance, cfg.BatchSize),
		States:    make([]*State, cfg.BatchSize),
	}

	numNodes := cfg.NumCustomers + 1
	for i := 0; i < cfg.BatchSize; i++ {
		locations := make([]Point, numNodes)
		for n := 0; n < numNodes; n++ {
			locations[n] = Point{X: locRNG.Float64(), Y: locRNG.Float64()}
		}
		locations[depotIndex] = Point{} // depot pinned to the origin

		demands := make([]int, numNodes)
		for n := 1; n < numNodes; n++ {
			demands[n] = 1 + demandRNG.Intn(cfg.MaxDemand)
		}

		inst := Instance{
			Locations: locations,
			Demands:   demands,
			Capacity:  cfg.Capacity,
		}
		batch.Instances[i] = inst
		batch.States[i] = NewState(inst)
	}

	return batch, nil
}
