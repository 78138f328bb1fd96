// Package schedule assigns forecast maintenance items to concrete days in
// the capacity calendar. Strategies are pluggable, selected by
// configuration; Greedy is the baseline and the default.
package schedule

import (
	"fmt"

	"techops/core/capacity"
	"techops/core/model"
)

// Strategy places due items into the calendar, mutating it in place, and
// returns exactly one Placement per item in input order.
type Strategy interface {
	Schedule(items []model.DueItem, cal *capacity.Calendar) []model.Placement
}

// New returns the strategy registered under name. An empty name selects
// the greedy baseline.
func New(name string) (Strategy, error) {
	switch name {
	case "", "greedy":
		return Greedy{}, nil
	default:
		return nil, fmt.Errorf("unknown scheduler strategy %q", name)
	}
}

// Greedy performs a single deterministic pass in forecast order: each item
// takes the earliest day in [due, due+window] with room for its labor
// hours. Capacity committed by earlier items is never released or
// reshuffled, so earlier-due work always has priority.
type Greedy struct{}

// Schedule implements Strategy.
func (Greedy) Schedule(items []model.DueItem, cal *capacity.Calendar) []model.Placement {
	h := cal.Horizon()
	lastDay := h.End().AddDate(0, 0, -1)

	placements := make([]model.Placement, 0, len(items))
	for _, it := range items {
		p := model.Placement{Item: it, Status: model.StatusUnscheduled}

		windowEnd := it.DueDate.AddDate(0, 0, it.Task.WindowDays)
		if windowEnd.After(lastDay) {
			p.WindowClipped = true
			windowEnd = lastDay
		}
		if it.DueDate.After(windowEnd) {
			// The whole window lies past the horizon.
			p.WindowEmpty = true
			placements = append(placements, p)
			continue
		}

		for day := it.DueDate; !day.After(windowEnd); day = day.AddDate(0, 0, 1) {
			if cal.Commit(it.Aircraft.Base, day, it.Task.LaborHours) {
				p.Status = model.StatusScheduled
				p.ScheduledDate = day
				break
			}
		}
		placements = append(placements, p)
	}
	return placements
}
