package model

import (
	"testing"
	"time"
)

func TestTaskCardValidate(t *testing.T) {
	tests := []struct {
		name    string
		card    TaskCard
		wantErr bool
	}{
		{"valid", TaskCard{ID: "A-CHK", IntervalDays: 90, WindowDays: 14, LaborHours: 8}, false},
		{"missing id", TaskCard{IntervalDays: 90, LaborHours: 8}, true},
		{"zero interval", TaskCard{ID: "A-CHK", IntervalDays: 0, LaborHours: 8}, true},
		{"negative window", TaskCard{ID: "A-CHK", IntervalDays: 90, WindowDays: -1, LaborHours: 8}, true},
		{"zero labor", TaskCard{ID: "A-CHK", IntervalDays: 90, LaborHours: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskCardAppliesTo(t *testing.T) {
	ac := Aircraft{ID: "AC-1", FleetType: "A320", Base: "CDG"}
	if !(TaskCard{ID: "t", FleetType: "A320"}).AppliesTo(ac) {
		t.Fatalf("matching fleet type should apply")
	}
	if (TaskCard{ID: "t", FleetType: "B737"}).AppliesTo(ac) {
		t.Fatalf("other fleet type should not apply")
	}
	if !(TaskCard{ID: "t"}).AppliesTo(ac) {
		t.Fatalf("empty fleet type should apply to all")
	}
}

func TestHorizonContains(t *testing.T) {
	h := NewHorizon(time.Date(2026, 3, 1, 15, 4, 5, 0, time.UTC), 30)
	if !h.Start.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start not normalized: %v", h.Start)
	}
	if !h.Contains(h.Start) {
		t.Fatalf("start day must be in horizon")
	}
	if !h.Contains(h.Start.AddDate(0, 0, 29)) {
		t.Fatalf("last day must be in horizon")
	}
	if h.Contains(h.End()) {
		t.Fatalf("end bound is exclusive")
	}
	if h.Contains(h.Start.AddDate(0, 0, -1)) {
		t.Fatalf("day before start must not be in horizon")
	}
}
