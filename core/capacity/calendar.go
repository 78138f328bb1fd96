// Package capacity models the labor-hour ledger maintenance work is
// planned against: one cell per (base, day), each holding a fixed budget
// and a consumed amount.
package capacity

import (
	"fmt"
	"sort"
	"time"

	"techops/core/model"
)

type cellKey struct {
	base string
	day  time.Time
}

type cell struct {
	capacity float64
	used     float64
}

// Calendar is the mutable capacity ledger for one scheduling pass. It is
// not safe for concurrent use; the scheduler owns it for the duration of
// a pass.
type Calendar struct {
	horizon model.Horizon
	bases   []string
	cells   map[cellKey]*cell
}

// NewCalendar builds a ledger covering every base over the horizon with a
// uniform daily budget. Overrides replace the daily budget for individual
// bases.
func NewCalendar(bases []string, h model.Horizon, hoursPerDay float64, overrides map[string]float64) (*Calendar, error) {
	if h.Days <= 0 {
		return nil, fmt.Errorf("horizon_days must be positive, got %d", h.Days)
	}
	if hoursPerDay <= 0 {
		return nil, fmt.Errorf("labor_hours_per_day must be positive, got %g", hoursPerDay)
	}
	for base, hrs := range overrides {
		if hrs <= 0 {
			return nil, fmt.Errorf("labor_hours_per_day override for base %s must be positive, got %g", base, hrs)
		}
	}

	sorted := append([]string(nil), bases...)
	sort.Strings(sorted)

	cal := &Calendar{horizon: h, bases: sorted, cells: make(map[cellKey]*cell, len(sorted)*h.Days)}
	for _, base := range sorted {
		budget := hoursPerDay
		if hrs, ok := overrides[base]; ok {
			budget = hrs
		}
		for d := 0; d < h.Days; d++ {
			day := h.Start.AddDate(0, 0, d)
			cal.cells[cellKey{base: base, day: day}] = &cell{capacity: budget}
		}
	}
	return cal, nil
}

// Horizon returns the date range the ledger covers.
func (c *Calendar) Horizon() model.Horizon { return c.horizon }

// Remaining returns the unconsumed hours for the cell, or 0 for any
// (base, date) outside the modeled horizon.
func (c *Calendar) Remaining(base string, date time.Time) float64 {
	cl, ok := c.cells[cellKey{base: base, day: model.Day(date)}]
	if !ok {
		return 0
	}
	return cl.capacity - cl.used
}

// Commit consumes hours from the cell if they fit, reporting whether the
// reservation was made. It is the only way the ledger is mutated, so used
// hours can never exceed the budget.
func (c *Calendar) Commit(base string, date time.Time, hours float64) bool {
	cl, ok := c.cells[cellKey{base: base, day: model.Day(date)}]
	if !ok {
		return false
	}
	if cl.capacity-cl.used < hours {
		return false
	}
	cl.used += hours
	return true
}

// Row is one exported calendar cell.
type Row struct {
	Base           string
	Date           time.Time
	CapacityHours  float64
	UsedHours      float64
	UtilizationPct float64
}

// Snapshot returns every cell ordered by base then date.
func (c *Calendar) Snapshot() []Row {
	rows := make([]Row, 0, len(c.cells))
	for _, base := range c.bases {
		for d := 0; d < c.horizon.Days; d++ {
			day := c.horizon.Start.AddDate(0, 0, d)
			cl := c.cells[cellKey{base: base, day: day}]
			rows = append(rows, Row{
				Base:           base,
				Date:           day,
				CapacityHours:  cl.capacity,
				UsedHours:      cl.used,
				UtilizationPct: 100 * cl.used / cl.capacity,
			})
		}
	}
	return rows
}
