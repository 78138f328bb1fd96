package metrics

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"techops/core/logger"
	coremetrics "techops/core/metrics"
	infralogger "techops/infra/logger"
)

// InfluxSink writes plan run outcomes to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      infralogger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.Sink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordPlanRun writes the run summary as a line protocol point.
func (s *InfluxSink) RecordPlanRun(rec coremetrics.PlanRunRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("plan_run").
		AddTag("run_id", rec.RunID).
		AddTag("component", "plan_runner").
		AddField("horizon_days", rec.HorizonDays).
		AddField("due_items", rec.DueItems).
		AddField("scheduled", rec.Scheduled).
		AddField("unscheduled", rec.Unscheduled).
		AddField("mean_utilization_pct", round3(rec.MeanUtilizationPct)).
		AddField("peak_utilization_pct", round3(rec.PeakUtilizationPct)).
		SetTime(rec.CompletedAt)
	for kind, n := range rec.RiskCounts {
		p.AddField("risk_"+strings.ToLower(kind), n)
	}
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
