package model

import "fmt"

// Aircraft represents a single tail in the planned fleet.
type Aircraft struct {
	ID        string // tail number, e.g. "AC-1042"
	FleetType string // fleet family used to match task cards
	Base      string // home station whose capacity pool the aircraft draws from
}

// Validate checks that the aircraft record is sound.
func (a Aircraft) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("aircraft id is required")
	}
	if a.Base == "" {
		return fmt.Errorf("aircraft %s: base is required", a.ID)
	}
	return nil
}

// Criticality levels carried on task cards. They are reporting metadata:
// the greedy scheduler orders work by due date only.
const (
	CriticalityHigh   = "High"
	CriticalityMedium = "Medium"
	CriticalityLow    = "Low"
)

// TaskCard describes a recurring maintenance task.
type TaskCard struct {
	ID           string
	Name         string
	FleetType    string // empty means the card applies to every fleet type
	Criticality  string
	IntervalDays int     // recurrence interval in days
	WindowDays   int     // allowable slack after the due date
	LaborHours   float64 // nominal labor hours consumed in one execution
}

// Validate checks that the task card defines a usable recurrence.
func (t TaskCard) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task card id is required")
	}
	if t.IntervalDays <= 0 {
		return fmt.Errorf("task %s: interval_days must be positive", t.ID)
	}
	if t.WindowDays < 0 {
		return fmt.Errorf("task %s: window_days must not be negative", t.ID)
	}
	if t.LaborHours <= 0 {
		return fmt.Errorf("task %s: labor_hours must be positive", t.ID)
	}
	return nil
}

// AppliesTo reports whether the card is part of the aircraft's program.
func (t TaskCard) AppliesTo(a Aircraft) bool {
	return t.FleetType == "" || t.FleetType == a.FleetType
}
