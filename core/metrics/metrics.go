// Package metrics defines the observability seam for planning runs.
// Concrete sinks live under infra/metrics.
package metrics

import "time"

// PlanRunRecord summarizes one completed forecast-to-schedule pass.
type PlanRunRecord struct {
	RunID              string
	HorizonStart       time.Time
	HorizonDays        int
	DueItems           int
	Scheduled          int
	Unscheduled        int
	RiskCounts         map[string]int // risk kind name -> entry count
	MeanUtilizationPct float64
	PeakUtilizationPct float64
	CompletedAt        time.Time
}

// Sink records plan run outcomes for observability purposes.
type Sink interface {
	RecordPlanRun(PlanRunRecord) error
}

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlanRun(PlanRunRecord) error { return nil }
