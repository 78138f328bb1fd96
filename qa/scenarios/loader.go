// Package scenarios runs end-to-end planning scenarios described in YAML
// files next to this package. Each file defines a fleet, a task program,
// optional history and the outcome the plan must produce.
package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"techops/core/forecast"
	"techops/core/model"
	"techops/core/plan"
)

type AircraftDef struct {
	ID        string `yaml:"aircraft_id"`
	FleetType string `yaml:"fleet_type"`
	Base      string `yaml:"base"`
}

func (a AircraftDef) ToModel() model.Aircraft {
	return model.Aircraft{ID: a.ID, FleetType: a.FleetType, Base: a.Base}
}

type TaskDef struct {
	ID           string  `yaml:"task_id"`
	FleetType    string  `yaml:"fleet_type"`
	Criticality  string  `yaml:"criticality"`
	IntervalDays int     `yaml:"interval_days"`
	WindowDays   int     `yaml:"window_days"`
	LaborHours   float64 `yaml:"labor_hours"`
}

func (t TaskDef) ToModel() model.TaskCard {
	return model.TaskCard{
		ID:           t.ID,
		FleetType:    t.FleetType,
		Criticality:  t.Criticality,
		IntervalDays: t.IntervalDays,
		WindowDays:   t.WindowDays,
		LaborHours:   t.LaborHours,
	}
}

type HistoryDef struct {
	AircraftID string `yaml:"aircraft_id"`
	TaskID     string `yaml:"task_id"`
	LastDone   string `yaml:"last_done"`
}

type PlanningDef struct {
	HorizonStart     string             `yaml:"horizon_start"`
	HorizonDays      int                `yaml:"horizon_days"`
	LaborHoursPerDay float64            `yaml:"labor_hours_per_day"`
	BaseHours        map[string]float64 `yaml:"base_hours,omitempty"`
	CapacityScale    float64            `yaml:"capacity_scale,omitempty"`
}

type PlacementExp struct {
	AircraftID string `yaml:"aircraft_id"`
	TaskID     string `yaml:"task_id"`
	// Scheduled is the expected date, or empty when the item must stay
	// unscheduled.
	Scheduled string `yaml:"scheduled,omitempty"`
}

type Expected struct {
	Due         int            `yaml:"due"`
	Scheduled   int            `yaml:"scheduled"`
	Unscheduled int            `yaml:"unscheduled"`
	Risks       map[string]int `yaml:"risks,omitempty"`
	Placements  []PlacementExp `yaml:"placements,omitempty"`
}

type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Planning    PlanningDef   `yaml:"planning"`
	Fleet       []AircraftDef `yaml:"fleet"`
	Tasks       []TaskDef     `yaml:"tasks"`
	History     []HistoryDef  `yaml:"history,omitempty"`
	Expected    Expected      `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

const dateLayout = "2006-01-02"

// PlanConfig translates the planning block into the core configuration.
func (s *Scenario) PlanConfig() (plan.Config, error) {
	start, err := time.Parse(dateLayout, s.Planning.HorizonStart)
	if err != nil {
		return plan.Config{}, fmt.Errorf("scenario %s: horizon_start: %w", s.Name, err)
	}
	return plan.Config{
		Horizon:          model.NewHorizon(start, s.Planning.HorizonDays),
		LaborHoursPerDay: s.Planning.LaborHoursPerDay,
		BaseHours:        s.Planning.BaseHours,
		CapacityScale:    s.Planning.CapacityScale,
	}, nil
}

// HistoryMap translates history records into the forecaster's form.
func (s *Scenario) HistoryMap() (forecast.History, error) {
	if len(s.History) == 0 {
		return nil, nil
	}
	hist := make(forecast.History, len(s.History))
	for _, h := range s.History {
		day, err := time.Parse(dateLayout, h.LastDone)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %s/%s last_done: %w", s.Name, h.AircraftID, h.TaskID, err)
		}
		hist[forecast.HistoryKey{AircraftID: h.AircraftID, TaskID: h.TaskID}] = day
	}
	return hist, nil
}
