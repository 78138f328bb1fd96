// Package plan runs the forecast-to-schedule-to-risk pipeline over an
// in-memory fleet. One Run is a single-threaded, bounded computation: the
// scheduler owns the capacity calendar for the whole pass and
// infeasibility comes back as data, never as an error.
package plan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"techops/core/capacity"
	"techops/core/forecast"
	"techops/core/logger"
	"techops/core/model"
	"techops/core/risk"
	"techops/core/schedule"
)

// Config is the planning surface consumed by the core.
type Config struct {
	Horizon          model.Horizon
	LaborHoursPerDay float64
	// BaseHours overrides the daily budget for individual bases.
	BaseHours map[string]float64
	// CapacityScale multiplies every daily budget. Zero means 1.0 so the
	// zero value of Config stays usable.
	CapacityScale float64
	// Strategy names the scheduler strategy; empty selects greedy.
	Strategy string
}

// Validate fails fast on a configuration the pipeline cannot run with.
func (c Config) Validate() error {
	if c.Horizon.Days <= 0 {
		return fmt.Errorf("horizon_days must be positive, got %d", c.Horizon.Days)
	}
	if c.LaborHoursPerDay <= 0 {
		return fmt.Errorf("labor_hours_per_day must be positive, got %g", c.LaborHoursPerDay)
	}
	if c.CapacityScale < 0 {
		return fmt.Errorf("capacity_scale must not be negative, got %g", c.CapacityScale)
	}
	return nil
}

func (c Config) scale() float64 {
	if c.CapacityScale == 0 {
		return 1
	}
	return c.CapacityScale
}

// Stats aggregates the outcome of one run.
type Stats struct {
	DueItems    int
	Scheduled   int
	Unscheduled int
	RiskCounts  map[string]int
}

// Result carries the three output collections of one planning pass plus
// run metadata.
type Result struct {
	RunID       string
	Horizon     model.Horizon
	GeneratedAt time.Time
	Plan        []model.Placement
	Calendar    []capacity.Row
	Summary     capacity.Summary
	Risks       []model.RiskEntry
	Stats       Stats
}

// Runner executes planning passes with a fixed configuration.
type Runner struct {
	cfg   Config
	strat schedule.Strategy
	log   logger.Logger
}

// NewRunner validates the configuration and resolves the scheduler
// strategy.
func NewRunner(cfg Config, log logger.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strat, err := schedule.New(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	return &Runner{cfg: cfg, strat: strat, log: log}, nil
}

// Run executes one forecast-to-schedule-to-risk pass. The calendar is
// built fresh each call, so repeated runs over the same input produce
// identical results.
func (r *Runner) Run(fleet []model.Aircraft, cards []model.TaskCard, hist forecast.History) (*Result, error) {
	items, err := forecast.Forecast(fleet, cards, hist, r.cfg.Horizon)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	scaled := r.cfg.LaborHoursPerDay * r.cfg.scale()
	overrides := make(map[string]float64, len(r.cfg.BaseHours))
	for base, hrs := range r.cfg.BaseHours {
		overrides[base] = hrs * r.cfg.scale()
	}
	cal, err := capacity.NewCalendar(bases(fleet), r.cfg.Horizon, scaled, overrides)
	if err != nil {
		return nil, fmt.Errorf("capacity calendar: %w", err)
	}

	placements := r.strat.Schedule(items, cal)
	risks := risk.Classify(placements, r.cfg.Horizon)

	res := &Result{
		RunID:       uuid.NewString(),
		Horizon:     r.cfg.Horizon,
		GeneratedAt: time.Now().UTC(),
		Plan:        placements,
		Calendar:    cal.Snapshot(),
		Risks:       risks,
		Stats:       Stats{DueItems: len(items), RiskCounts: make(map[string]int)},
	}
	res.Summary = capacity.Summarize(res.Calendar)
	for _, p := range placements {
		if p.Status == model.StatusScheduled {
			res.Stats.Scheduled++
		} else {
			res.Stats.Unscheduled++
		}
	}
	for _, e := range risks {
		res.Stats.RiskCounts[e.Kind.String()]++
	}

	if r.log != nil {
		r.log.Infow("plan run complete", map[string]any{
			"run_id":      res.RunID,
			"due_items":   res.Stats.DueItems,
			"scheduled":   res.Stats.Scheduled,
			"unscheduled": res.Stats.Unscheduled,
			"risks":       len(risks),
		})
	}
	return res, nil
}

// bases returns the distinct home stations of the fleet. Ordering is left
// to the calendar, which sorts its own base list.
func bases(fleet []model.Aircraft) []string {
	seen := make(map[string]bool)
	var out []string
	for _, ac := range fleet {
		if !seen[ac.Base] {
			seen[ac.Base] = true
			out = append(out, ac.Base)
		}
	}
	return out
}
