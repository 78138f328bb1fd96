package capacity

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	rows := []Row{
		{CapacityHours: 10, UsedHours: 10, UtilizationPct: 100},
		{CapacityHours: 10, UsedHours: 5, UtilizationPct: 50},
		{CapacityHours: 10, UsedHours: 0, UtilizationPct: 0},
	}
	s := Summarize(rows)
	if s.TotalCapacityHours != 30 || s.TotalUsedHours != 15 {
		t.Fatalf("totals = %g/%g, want 15/30", s.TotalUsedHours, s.TotalCapacityHours)
	}
	if math.Abs(s.MeanUtilizationPct-50) > 1e-9 {
		t.Fatalf("mean = %g, want 50", s.MeanUtilizationPct)
	}
	if s.PeakUtilizationPct != 100 {
		t.Fatalf("peak = %g, want 100", s.PeakUtilizationPct)
	}
	if s.P95UtilizationPct < 50 || s.P95UtilizationPct > 100 {
		t.Fatalf("p95 = %g out of range", s.P95UtilizationPct)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Fatalf("empty snapshot must yield zero summary: %+v", s)
	}
}
