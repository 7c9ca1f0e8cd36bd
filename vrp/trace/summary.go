package trace

// TraceSummary aggregates statistics from an EpisodeTrace.
type TraceSummary struct {
	TotalSteps        int
	DepotReturns      int
	CustomerVisits    int
	ActiveInstances   int
	VisitDistribution map[int]int // node index → times chosen across the batch
}

// Summarize computes aggregate statistics from an EpisodeTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(et *EpisodeTrace) *TraceSummary {
	summary := &TraceSummary{
		VisitDistribution: make(map[int]int),
	}
	if et == nil {
		return summary
	}

	instances := make(map[int]bool)
	for _, s := range et.Steps {
		summary.TotalSteps++
		summary.VisitDistribution[s.Node]++
		if s.IsDepot() {
			summary.DepotReturns++
		} else {
			summary.CustomerVisits++
		}
		instances[s.Instance] = true
	}
	summary.ActiveInstances = len(instances)

	return summary
}
