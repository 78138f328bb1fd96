package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "techops/core/metrics"
)

// PromSink records plan run outcomes in Prometheus metrics.
type PromSink struct {
	items       *prometheus.CounterVec
	risks       *prometheus.CounterVec
	utilization prometheus.Gauge
}

// NewPromSink registers plan metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	items := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_items_total",
		Help: "Total number of planned maintenance items",
	}, []string{"status"})
	risks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_risk_entries_total",
		Help: "Total number of risk register entries",
	}, []string{"kind"})
	utilization := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "plan_mean_utilization_pct",
		Help: "Mean capacity utilization of the last planning run",
	})

	for _, c := range []prometheus.Collector{items, risks, utilization} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				if c == items {
					items = existing
				} else {
					risks = existing
				}
			case prometheus.Gauge:
				utilization = existing
			}
		}
	}

	return &PromSink{items: items, risks: risks, utilization: utilization}, nil
}

// RecordPlanRun increments the counters for the run's outcome.
func (s *PromSink) RecordPlanRun(rec coremetrics.PlanRunRecord) error {
	s.items.WithLabelValues("SCHEDULED").Add(float64(rec.Scheduled))
	s.items.WithLabelValues("UNSCHEDULED").Add(float64(rec.Unscheduled))
	for kind, n := range rec.RiskCounts {
		s.risks.WithLabelValues(kind).Add(float64(n))
	}
	s.utilization.Set(rec.MeanUtilizationPct)
	return nil
}
