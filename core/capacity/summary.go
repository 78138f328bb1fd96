package capacity

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates utilization over a calendar snapshot for reporting.
type Summary struct {
	TotalCapacityHours float64
	TotalUsedHours     float64
	MeanUtilizationPct float64
	P95UtilizationPct  float64
	PeakUtilizationPct float64
}

// Summarize computes fleet-wide load statistics over the snapshot rows.
func Summarize(rows []Row) Summary {
	if len(rows) == 0 {
		return Summary{}
	}
	var s Summary
	pcts := make([]float64, len(rows))
	for i, r := range rows {
		s.TotalCapacityHours += r.CapacityHours
		s.TotalUsedHours += r.UsedHours
		pcts[i] = r.UtilizationPct
	}
	sort.Float64s(pcts)
	s.MeanUtilizationPct = stat.Mean(pcts, nil)
	s.P95UtilizationPct = stat.Quantile(0.95, stat.Empirical, pcts, nil)
	s.PeakUtilizationPct = pcts[len(pcts)-1]
	return s
}
