// Aggregates batch-level episode statistics (tour lengths, steps, depot
// returns) for final reporting.

package vrp

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics summarizes one batch episode for reporting. Useful for comparing
// policies and spotting degenerate tours (e.g. excessive depot shuttling).
type Metrics struct {
	Instances    int     // batch size
	Steps        int     // decision steps of the longest-running instance
	DepotReturns int     // depot visits recorded across all tours
	MeanReward   float64 // mean tour length
	StdReward    float64 // tour length standard deviation
	MinReward    float64 // shortest tour in the batch
	MaxReward    float64 // longest tour in the batch
}

// NewMetrics computes batch statistics from an episode result.
func NewMetrics(result *EpisodeResult) *Metrics {
	m := &Metrics{
		Instances: len(result.Rewards),
		Steps:     result.Steps,
	}
	for _, tour := range result.Tours {
		for _, n := range tour {
			if n == depotIndex {
				m.DepotReturns++
			}
		}
	}
	if len(result.Rewards) > 0 {
		m.MeanReward = stat.Mean(result.Rewards, nil)
		m.MinReward = floats.Min(result.Rewards)
		m.MaxReward = floats.Max(result.Rewards)
	}
	if len(result.Rewards) > 1 {
		m.StdReward = stat.StdDev(result.Rewards, nil)
	}
	return m
}

// Print displays aggregated metrics at the end of an episode.
func (m *Metrics) Print() {
	fmt.Println("=== Episode Metrics ===")
	fmt.Printf("Instances        : %d\n", m.Instances)
	fmt.Printf("Decision Steps   : %d\n", m.Steps)
	fmt.Printf("Depot Returns    : %d\n", m.DepotReturns)
	fmt.Printf("Mean Tour Length : %.4f\n", m.MeanReward)
	fmt.Printf("Std Tour Length  : %.4f\n", m.StdReward)
	fmt.Printf("Min Tour Length  : %.4f\n", m.MinReward)
	fmt.Printf("Max Tour Length  : %.4f\n", m.MaxReward)
}
