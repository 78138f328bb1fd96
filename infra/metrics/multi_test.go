package metrics

import (
	"testing"

	coremetrics "techops/core/metrics"
)

type recordSink struct {
	count int
}

func (r *recordSink) RecordPlanRun(coremetrics.PlanRunRecord) error {
	r.count++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordPlanRun(coremetrics.PlanRunRecord{}); err != nil {
		t.Fatalf("record run: %v", err)
	}
	if s1.count != 1 || s2.count != 1 {
		t.Fatalf("record not forwarded")
	}
}

func TestNewFromConfig_Empty(t *testing.T) {
	sink, err := NewFromConfig(coremetrics.Config{})
	if err != nil {
		t.Fatalf("empty config: %v", err)
	}
	if _, ok := sink.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", sink)
	}
}
