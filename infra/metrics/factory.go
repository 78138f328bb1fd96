package metrics

import (
	"fmt"

	coremetrics "techops/core/metrics"
)

// NewFromConfig composes the configured sinks. With nothing enabled a
// NopSink is returned so callers never hold a nil Sink.
func NewFromConfig(cfg coremetrics.Config) (coremetrics.Sink, error) {
	var sinks []coremetrics.Sink
	if cfg.PrometheusEnabled {
		sink, err := NewPromSink(nil)
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
	}
	if cfg.InfluxEnabled {
		sinks = append(sinks, NewInfluxSinkWithFallback(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	default:
		return NewMultiSink(sinks...), nil
	}
}
