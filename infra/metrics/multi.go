package metrics

import coremetrics "techops/core/metrics"

// MultiSink fans plan run records out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlanRun forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlanRun(rec coremetrics.PlanRunRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlanRun(rec); err != nil {
			return err
		}
	}
	return nil
}
