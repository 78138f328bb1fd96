// Package simulator synthesizes demo fleets, task programs and
// maintenance history so the planner can be exercised without real
// airline data. Generation is deterministic: the same config always
// produces the same files, which keeps demo plans reproducible.
package simulator

import (
	"fmt"
	"time"

	"techops/core/forecast"
	"techops/core/model"
)

// Config holds parameters for demo data generation.
type Config struct {
	FleetSize  int
	Bases      []string
	FleetTypes []string
	// Start anchors seeded history so due dates spread across the
	// horizon instead of stacking on one day.
	Start time.Time
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.FleetSize == 0 {
		c.FleetSize = 12
	}
	if len(c.Bases) == 0 {
		c.Bases = []string{"CDG", "ORY", "LYS"}
	}
	if len(c.FleetTypes) == 0 {
		c.FleetTypes = []string{"A320", "B737"}
	}
	if c.Start.IsZero() {
		c.Start = model.Day(time.Now())
	}
}

// GenerateFleet creates FleetSize aircraft with IDs AC-0001..AC-NNNN,
// cycling through the configured bases and fleet types.
func GenerateFleet(cfg Config) []model.Aircraft {
	if cfg.FleetSize <= 0 {
		return nil
	}
	fleet := make([]model.Aircraft, cfg.FleetSize)
	for i := 0; i < cfg.FleetSize; i++ {
		fleet[i] = model.Aircraft{
			ID:        fmt.Sprintf("AC-%04d", i+1),
			FleetType: cfg.FleetTypes[i%len(cfg.FleetTypes)],
			Base:      cfg.Bases[i%len(cfg.Bases)],
		}
	}
	return fleet
}

// TaskProgram returns a standard recurring check program for each
// configured fleet type.
func TaskProgram(cfg Config) []model.TaskCard {
	var cards []model.TaskCard
	for _, ft := range cfg.FleetTypes {
		cards = append(cards,
			model.TaskCard{
				ID: ft + "-A-CHK", Name: "A Check", FleetType: ft,
				Criticality: model.CriticalityHigh, IntervalDays: 60, WindowDays: 10, LaborHours: 60,
			},
			model.TaskCard{
				ID: ft + "-WKLY", Name: "Weekly Check", FleetType: ft,
				Criticality: model.CriticalityMedium, IntervalDays: 7, WindowDays: 2, LaborHours: 6,
			},
			model.TaskCard{
				ID: ft + "-LUBE", Name: "Gear Lubrication", FleetType: ft,
				Criticality: model.CriticalityLow, IntervalDays: 30, WindowDays: 5, LaborHours: 12,
			},
		)
	}
	return cards
}

// SeedHistory fabricates plausible last-performed dates so the next due
// dates land near the start of the horizon, offset per aircraft and task
// so the whole fleet does not come due on the same day.
func SeedHistory(fleet []model.Aircraft, cards []model.TaskCard, start time.Time) forecast.History {
	start = model.Day(start)
	hist := make(forecast.History)
	for i, ac := range fleet {
		for j, card := range cards {
			if !card.AppliesTo(ac) {
				continue
			}
			offset := (i*7 + j*3) % max(2, card.IntervalDays)
			back := max(1, card.IntervalDays-offset)
			hist[forecast.HistoryKey{AircraftID: ac.ID, TaskID: card.ID}] = start.AddDate(0, 0, -back)
		}
	}
	return hist
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
