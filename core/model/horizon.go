package model

import "time"

// Day truncates t to a calendar day in UTC. All dates handled by the
// planning pipeline are normalized through this function.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Horizon is the fixed date range [Start, Start+Days) over which
// maintenance is forecast and planned.
type Horizon struct {
	Start time.Time
	Days  int
}

// NewHorizon builds a horizon anchored at the day containing start.
func NewHorizon(start time.Time, days int) Horizon {
	return Horizon{Start: Day(start), Days: days}
}

// End returns the first day after the horizon (exclusive bound).
func (h Horizon) End() time.Time {
	return h.Start.AddDate(0, 0, h.Days)
}

// Contains reports whether the day of t falls inside the horizon.
func (h Horizon) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(h.Start) && d.Before(h.End())
}
