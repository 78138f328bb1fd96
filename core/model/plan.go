package model

import "time"

// DueItem is one forecast maintenance obligation: a task card coming due
// on a specific aircraft within the planning horizon.
type DueItem struct {
	Aircraft Aircraft
	Task     TaskCard
	DueDate  time.Time
}

// PlacementStatus reports whether the scheduler found a feasible day.
type PlacementStatus int

const (
	StatusScheduled PlacementStatus = iota
	StatusUnscheduled
)

// String returns the status name used in reports.
func (s PlacementStatus) String() string {
	switch s {
	case StatusScheduled:
		return "SCHEDULED"
	case StatusUnscheduled:
		return "UNSCHEDULED"
	default:
		return "unknown"
	}
}

// Placement is the scheduler's decision for one DueItem. ScheduledDate is
// the zero time when Status is StatusUnscheduled.
type Placement struct {
	Item          DueItem
	ScheduledDate time.Time
	Status        PlacementStatus

	// WindowClipped is set when the candidate window extended past the
	// horizon end and was truncated. WindowEmpty is set when no candidate
	// day remained after clipping. The risk classifier uses both to tell
	// a window miss apart from a capacity shortfall.
	WindowClipped bool
	WindowEmpty   bool
}

// RiskKind classifies why an item failed an on-time, in-window or
// in-capacity guarantee.
type RiskKind int

const (
	RiskOverdue RiskKind = iota
	RiskMissedWindow
	RiskLateSchedule
	RiskCapacityShortfall
)

// String returns the risk kind name used in the risk register.
func (k RiskKind) String() string {
	switch k {
	case RiskOverdue:
		return "OVERDUE"
	case RiskMissedWindow:
		return "MISSED_WINDOW"
	case RiskLateSchedule:
		return "LATE_SCHEDULE"
	case RiskCapacityShortfall:
		return "CAPACITY_SHORTFALL"
	default:
		return "unknown"
	}
}

// RiskEntry is one row of the risk register. A single item may produce
// several entries of different kinds.
type RiskEntry struct {
	Item   DueItem
	Kind   RiskKind
	Detail string
}
