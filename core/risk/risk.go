// Package risk derives the risk register from a completed scheduling
// pass. Infeasibility is data here, never an error: every rule is
// evaluated independently and a single item can raise several entries.
package risk

import (
	"fmt"

	"techops/core/model"
)

// Classify returns one entry per violated guarantee across all placements.
// An item scheduled on or before its due date with no overdue condition
// produces nothing.
func Classify(placements []model.Placement, h model.Horizon) []model.RiskEntry {
	var entries []model.RiskEntry
	for _, p := range placements {
		it := p.Item

		if !it.DueDate.After(h.Start) {
			entries = append(entries, model.RiskEntry{
				Item: it, Kind: model.RiskOverdue,
				Detail: "task was already due when the planning horizon opened",
			})
		}

		switch p.Status {
		case model.StatusScheduled:
			if p.ScheduledDate.After(it.DueDate) {
				late := int(p.ScheduledDate.Sub(it.DueDate).Hours() / 24)
				entries = append(entries, model.RiskEntry{
					Item: it, Kind: model.RiskLateSchedule,
					Detail: fmt.Sprintf("scheduled %d day(s) after due date", late),
				})
			}
		case model.StatusUnscheduled:
			if p.WindowClipped {
				entries = append(entries, model.RiskEntry{
					Item: it, Kind: model.RiskMissedWindow,
					Detail: "maintenance window extends past the planning horizon",
				})
			}
			if !p.WindowEmpty {
				entries = append(entries, model.RiskEntry{
					Item: it, Kind: model.RiskCapacityShortfall,
					Detail: fmt.Sprintf("no day in window had %g labor hours free at %s",
						it.Task.LaborHours, it.Aircraft.Base),
				})
			}
		}
	}
	return entries
}
