// Package forecast computes which maintenance tasks come due for each
// aircraft inside a planning horizon. The forecast is a pure function of
// its inputs and its output order is stable, so repeated runs over the
// same fleet produce the same plan.
package forecast

import (
	"fmt"
	"sort"
	"time"

	"techops/core/model"
)

// HistoryKey identifies the last-performed record for one (aircraft, task)
// pair.
type HistoryKey struct {
	AircraftID string
	TaskID     string
}

// History maps each pair to the day the task was last performed. Pairs
// without a record are anchored at the horizon start.
type History map[HistoryKey]time.Time

// Forecast emits at most one DueItem per applicable (aircraft, task) pair
// whose next due date falls inside the horizon. A pair whose due date lands
// at or before the horizon start enters the plan dated at the start day and
// is flagged overdue by the risk classifier, not here.
//
// Items are ordered by due date, then aircraft ID, then task ID.
func Forecast(fleet []model.Aircraft, cards []model.TaskCard, hist History, h model.Horizon) ([]model.DueItem, error) {
	if h.Days <= 0 {
		return nil, fmt.Errorf("horizon_days must be positive, got %d", h.Days)
	}
	for _, c := range cards {
		if err := c.Validate(); err != nil {
			return nil, err
		}
	}
	for _, a := range fleet {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	var items []model.DueItem
	for _, ac := range fleet {
		for _, card := range cards {
			if !card.AppliesTo(ac) {
				continue
			}
			due := nextDue(ac, card, hist, h.Start)
			if !due.Before(h.End()) {
				continue
			}
			items = append(items, model.DueItem{Aircraft: ac, Task: card, DueDate: due})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.DueDate.Equal(b.DueDate) {
			return a.DueDate.Before(b.DueDate)
		}
		if a.Aircraft.ID != b.Aircraft.ID {
			return a.Aircraft.ID < b.Aircraft.ID
		}
		return a.Task.ID < b.Task.ID
	})
	return items, nil
}

// nextDue applies the interval to the last-performed anchor, or to the
// horizon start when no history exists. Due dates already in the past are
// clamped to the horizon start so overdue work competes for day-0 capacity.
func nextDue(ac model.Aircraft, card model.TaskCard, hist History, start time.Time) time.Time {
	anchor := start
	if last, ok := hist[HistoryKey{AircraftID: ac.ID, TaskID: card.ID}]; ok {
		anchor = model.Day(last)
	}
	due := anchor.AddDate(0, 0, card.IntervalDays)
	if due.Before(start) {
		return start
	}
	return due
}
