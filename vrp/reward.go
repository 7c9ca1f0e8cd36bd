// reward.go
//
// Tour-length reward: total Euclidean distance traveled, with the implicit
// depot legs at both ends of every tour.

package vrp

// TourLength computes the traveled distance for one instance's tour of node
// indices. The depot is prepended and appended — the vehicle always starts
// and ends there. Consecutive duplicate depot visits contribute zero
// distance through the same summation, so they need no special-casing.
func TourLength(inst Instance, tour []int) float64 {
	depot := inst.Locations[depotIndex]
	prev := depot
	total := 0.0
	for _, n := range tour {
		loc := inst.Locations[n]
		total += prev.Dist(loc)
		prev = loc
	}
	total += prev.Dist(depot)
	return total
}

// ComputeReward computes the tour length for every instance in the batch.
// instances[i] pairs with tours[i]; the result is one non-negative length
// per instance.
func ComputeReward(instances []Instance, tours [][]int) []float64 {
	rewards := make([]float64, len(instances))
	for i, inst := range instances {
		rewards[i] = TourLength(inst, tours[i])
	}
	return rewards
}
