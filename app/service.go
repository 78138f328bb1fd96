// Package app wires the planning pipeline to its infrastructure: input
// files, report writers, metric sinks and the risk alert publisher.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"techops/config"
	"techops/core/capacity"
	"techops/core/forecast"
	"techops/core/logger"
	coremetrics "techops/core/metrics"
	"techops/core/model"
	"techops/core/plan"
	"techops/infra/alert"
	infralogger "techops/infra/logger"
	"techops/infra/metrics"
	"techops/pkg/export"
)

// Service runs planning passes from configuration.
type Service struct {
	cfg    *config.Config
	log    logger.Logger
	sink   coremetrics.Sink
	alerts alert.Publisher
	now    func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := metrics.NewFromConfig(cfg.Metrics)
	if err != nil {
		return nil, err
	}
	var alerts alert.Publisher
	if cfg.Alerts.Enabled {
		alerts, err = alert.NewPahoPublisher(cfg.Alerts)
		if err != nil {
			return nil, fmt.Errorf("alert publisher: %w", err)
		}
	}
	return &Service{
		cfg:    cfg,
		log:    infralogger.New("planner"),
		sink:   sink,
		alerts: alerts,
		now:    time.Now,
	}, nil
}

// Run executes one planning pass: load inputs, forecast, schedule,
// classify, then write reports, record metrics and publish alerts.
func (s *Service) Run() (*plan.Result, error) {
	if err := s.cfg.Inputs.Validate(); err != nil {
		return nil, err
	}
	planCfg, err := s.cfg.Planning.PlanConfig(s.now())
	if err != nil {
		return nil, err
	}
	runner, err := plan.NewRunner(planCfg, s.log)
	if err != nil {
		return nil, err
	}

	fleet, err := export.LoadFleet(s.cfg.Inputs.Fleet)
	if err != nil {
		return nil, err
	}
	cards, err := export.LoadTaskCards(s.cfg.Inputs.Tasks)
	if err != nil {
		return nil, err
	}
	var hist forecast.History
	if s.cfg.Inputs.History != "" {
		hist, err = export.LoadHistory(s.cfg.Inputs.History)
		if err != nil {
			return nil, err
		}
	}

	res, err := runner.Run(fleet, cards, hist)
	if err != nil {
		return nil, err
	}

	if err := s.writeReports(res); err != nil {
		return nil, err
	}
	s.record(res)
	s.publish(res)
	return res, nil
}

// Close releases the alert publisher connection, if any.
func (s *Service) Close() error {
	if s.alerts != nil {
		return s.alerts.Close()
	}
	return nil
}

func (s *Service) writeReports(res *plan.Result) error {
	dir := s.cfg.Reports.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("reports dir: %w", err)
	}
	ext := s.cfg.Reports.Format

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"maintenance_plan." + ext, func(w io.Writer) error { return s.writePlan(w, res.Plan) }},
		{"capacity_calendar." + ext, func(w io.Writer) error { return s.writeCalendar(w, res.Calendar) }},
		{"risk_register." + ext, func(w io.Writer) error { return s.writeRisks(w, res.Risks) }},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		out, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		werr := f.write(out)
		cerr := out.Close()
		if werr != nil {
			return fmt.Errorf("write %s: %w", path, werr)
		}
		if cerr != nil {
			return fmt.Errorf("close %s: %w", path, cerr)
		}
	}
	s.log.Infof("reports written to %s", dir)
	return nil
}

func (s *Service) writePlan(w io.Writer, placements []model.Placement) error {
	if s.cfg.Reports.Format == "json" {
		return export.WritePlanJSON(w, placements)
	}
	return export.WritePlanCSV(w, placements)
}

func (s *Service) writeCalendar(w io.Writer, rows []capacity.Row) error {
	if s.cfg.Reports.Format == "json" {
		return export.WriteCalendarJSON(w, rows)
	}
	return export.WriteCalendarCSV(w, rows)
}

func (s *Service) writeRisks(w io.Writer, entries []model.RiskEntry) error {
	if s.cfg.Reports.Format == "json" {
		return export.WriteRiskJSON(w, entries)
	}
	return export.WriteRiskCSV(w, entries)
}

// record pushes the run summary to the configured metric sinks. Sink
// failures are logged, not fatal: the plan itself already succeeded.
func (s *Service) record(res *plan.Result) {
	rec := coremetrics.PlanRunRecord{
		RunID:              res.RunID,
		HorizonStart:       res.Horizon.Start,
		HorizonDays:        res.Horizon.Days,
		DueItems:           res.Stats.DueItems,
		Scheduled:          res.Stats.Scheduled,
		Unscheduled:        res.Stats.Unscheduled,
		RiskCounts:         res.Stats.RiskCounts,
		MeanUtilizationPct: res.Summary.MeanUtilizationPct,
		PeakUtilizationPct: res.Summary.PeakUtilizationPct,
		CompletedAt:        res.GeneratedAt,
	}
	if err := s.sink.RecordPlanRun(rec); err != nil {
		s.log.Warnf("metrics sink: %v", err)
	}
}

// publish forwards every risk entry to the alert publisher. Individual
// publish failures are logged and the remaining entries still go out.
func (s *Service) publish(res *plan.Result) {
	if s.alerts == nil {
		return
	}
	for _, e := range res.Risks {
		if err := s.alerts.PublishRisk(e); err != nil {
			s.log.Warnf("risk alert %s %s/%s: %v", e.Kind, e.Item.Aircraft.ID, e.Item.Task.ID, err)
		}
	}
}
