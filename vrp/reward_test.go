package vrp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const distTolerance = 1e-12

func TestTourLength_SingleCustomerRoundTrip(t *testing.T) {
	// GIVEN one customer at distance 0.5 from the depot (3-4-5 triangle)
	inst := Instance{
		Locations: []Point{{}, {X: 0.3, Y: 0.4}},
		Demands:   []int{0, 5},
		Capacity:  20,
	}

	// WHEN the tour visits it once
	got := TourLength(inst, []int{1})

	// THEN the reward is there and back: 2d
	assert.InDelta(t, 1.0, got, distTolerance)
}

func TestTourLength_SquareTour(t *testing.T) {
	// GIVEN customers on three corners of the unit square, depot on the fourth
	inst := Instance{
		Locations: []Point{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		Demands:   []int{0, 1, 1, 1},
		Capacity:  20,
	}

	got := TourLength(inst, []int{1, 2, 3})

	// THEN the closed tour walks the square's perimeter
	assert.InDelta(t, 4.0, got, distTolerance)
}

func TestTourLength_DuplicateDepotLegsAreFree(t *testing.T) {
	inst := Instance{
		Locations: []Point{{}, {X: 0.3, Y: 0.4}, {X: 0.6, Y: 0.8}},
		Demands:   []int{0, 5, 5},
		Capacity:  20,
	}

	// GIVEN the same visit order with and without redundant depot stops
	plain := TourLength(inst, []int{1, 0, 2})
	redundant := TourLength(inst, []int{1, 0, 0, 0, 2})

	// THEN consecutive depot legs contribute zero distance
	assert.InDelta(t, plain, redundant, distTolerance)
}

func TestTourLength_EmptyTour(t *testing.T) {
	inst := Instance{
		Locations: []Point{{}, {X: 0.5, Y: 0.5}},
		Demands:   []int{0, 1},
		Capacity:  20,
	}

	// A tour that never leaves the depot travels nothing
	assert.Equal(t, 0.0, TourLength(inst, nil))
}

func TestComputeReward_Batch(t *testing.T) {
	instances := []Instance{
		{Locations: []Point{{}, {X: 0.3, Y: 0.4}}, Demands: []int{0, 5}, Capacity: 20},
		{Locations: []Point{{}, {Y: 1}}, Demands: []int{0, 5}, Capacity: 20},
	}
	tours := [][]int{{1}, {1}}

	rewards := ComputeReward(instances, tours)

	assert.Len(t, rewards, 2)
	assert.InDelta(t, 1.0, rewards[0], distTolerance)
	assert.InDelta(t, 2.0, rewards[1], distTolerance)
}

func TestPoint_Dist(t *testing.T) {
	p := Point{X: 1, Y: 2}
	q := Point{X: 4, Y: 6}
	if got := p.Dist(q); math.Abs(got-5) > distTolerance {
		t.Errorf("Dist = %v, want 5", got)
	}
}
