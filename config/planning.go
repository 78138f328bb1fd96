package config

import (
	"fmt"
	"time"

	"techops/core/model"
	"techops/core/plan"
)

// PlanningConfig holds the forecast and capacity parameters.
type PlanningConfig struct {
	// HorizonStart is the first planned day, formatted YYYY-MM-DD. Empty
	// anchors the horizon at the day the run starts.
	HorizonStart string `json:"horizon_start"`
	// HorizonDays is how far ahead work is forecast and planned.
	HorizonDays int `json:"horizon_days"`
	// LaborHoursPerDay is the uniform daily budget per base.
	LaborHoursPerDay float64 `json:"labor_hours_per_day"`
	// BaseHours overrides the daily budget for individual bases.
	BaseHours map[string]float64 `json:"base_hours"`
	// CapacityScale multiplies every daily budget. Values below 1 tighten
	// the plan and populate the risk register.
	CapacityScale float64 `json:"capacity_scale"`
	// Strategy selects the scheduler; "greedy" is the only built-in.
	Strategy string `json:"strategy"`
}

// SetDefaults applies sane defaults.
func (c *PlanningConfig) SetDefaults() {
	if c.HorizonDays == 0 {
		c.HorizonDays = 120
	}
	if c.LaborHoursPerDay == 0 {
		c.LaborHoursPerDay = 80
	}
	if c.CapacityScale == 0 {
		c.CapacityScale = 1
	}
	if c.Strategy == "" {
		c.Strategy = "greedy"
	}
}

// Validate checks mandatory fields.
func (c PlanningConfig) Validate() error {
	if c.HorizonDays <= 0 {
		return fmt.Errorf("planning.horizon_days must be positive, got %d", c.HorizonDays)
	}
	if c.LaborHoursPerDay <= 0 {
		return fmt.Errorf("planning.labor_hours_per_day must be positive, got %g", c.LaborHoursPerDay)
	}
	if c.CapacityScale <= 0 {
		return fmt.Errorf("planning.capacity_scale must be positive, got %g", c.CapacityScale)
	}
	if c.HorizonStart != "" {
		if _, err := time.Parse("2006-01-02", c.HorizonStart); err != nil {
			return fmt.Errorf("planning.horizon_start: %w", err)
		}
	}
	return nil
}

// Horizon resolves the configured horizon, falling back to now as the
// anchor day.
func (c PlanningConfig) Horizon(now time.Time) (model.Horizon, error) {
	start := now
	if c.HorizonStart != "" {
		parsed, err := time.Parse("2006-01-02", c.HorizonStart)
		if err != nil {
			return model.Horizon{}, fmt.Errorf("planning.horizon_start: %w", err)
		}
		start = parsed
	}
	return model.NewHorizon(start, c.HorizonDays), nil
}

// PlanConfig converts the section into the core pipeline configuration.
func (c PlanningConfig) PlanConfig(now time.Time) (plan.Config, error) {
	h, err := c.Horizon(now)
	if err != nil {
		return plan.Config{}, err
	}
	return plan.Config{
		Horizon:          h,
		LaborHoursPerDay: c.LaborHoursPerDay,
		BaseHours:        c.BaseHours,
		CapacityScale:    c.CapacityScale,
		Strategy:         c.Strategy,
	}, nil
}

// InputsConfig points at the tabular input files.
type InputsConfig struct {
	Fleet   string `json:"fleet"`
	Tasks   string `json:"tasks"`
	History string `json:"history"` // optional
}

// Validate checks that the required inputs are configured.
func (c InputsConfig) Validate() error {
	if c.Fleet == "" {
		return fmt.Errorf("inputs.fleet is required")
	}
	if c.Tasks == "" {
		return fmt.Errorf("inputs.tasks is required")
	}
	return nil
}

// ReportsConfig controls where and how outputs are written.
type ReportsConfig struct {
	Dir    string `json:"dir"`
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *ReportsConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "reports"
	}
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate checks mandatory fields.
func (c ReportsConfig) Validate() error {
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("reports.format must be csv or json, got %q", c.Format)
	}
	return nil
}
