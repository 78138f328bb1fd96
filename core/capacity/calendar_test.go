package capacity

import (
	"testing"
	"time"

	"techops/core/model"
)

var start = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestCalendar(t *testing.T, days int, hours float64) *Calendar {
	t.Helper()
	cal, err := NewCalendar([]string{"CDG", "ORY"}, model.NewHorizon(start, days), hours, nil)
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	return cal
}

func TestCalendar_CommitAndRemaining(t *testing.T) {
	cal := newTestCalendar(t, 10, 10)
	day := start.AddDate(0, 0, 3)

	if got := cal.Remaining("CDG", day); got != 10 {
		t.Fatalf("remaining = %g, want 10", got)
	}
	if !cal.Commit("CDG", day, 6) {
		t.Fatalf("commit within budget must succeed")
	}
	if got := cal.Remaining("CDG", day); got != 4 {
		t.Fatalf("remaining after commit = %g, want 4", got)
	}
	if cal.Commit("CDG", day, 5) {
		t.Fatalf("commit beyond remaining must fail")
	}
	if got := cal.Remaining("CDG", day); got != 4 {
		t.Fatalf("failed commit must not mutate ledger, remaining = %g", got)
	}
	if !cal.Commit("CDG", day, 4) {
		t.Fatalf("commit of exact remainder must succeed")
	}
	// Other base untouched.
	if got := cal.Remaining("ORY", day); got != 10 {
		t.Fatalf("other base affected: %g", got)
	}
}

func TestCalendar_OutsideHorizon(t *testing.T) {
	cal := newTestCalendar(t, 10, 10)
	before := start.AddDate(0, 0, -1)
	after := start.AddDate(0, 0, 10)

	if got := cal.Remaining("CDG", before); got != 0 {
		t.Fatalf("remaining before horizon = %g, want 0", got)
	}
	if got := cal.Remaining("CDG", after); got != 0 {
		t.Fatalf("remaining after horizon = %g, want 0", got)
	}
	if cal.Commit("CDG", after, 1) {
		t.Fatalf("commit outside horizon must fail")
	}
	if cal.Commit("XXX", start, 1) {
		t.Fatalf("commit for unknown base must fail")
	}
}

func TestCalendar_UsedNeverExceedsCapacity(t *testing.T) {
	cal := newTestCalendar(t, 5, 8)
	day := start
	for i := 0; i < 20; i++ {
		cal.Commit("CDG", day, 3)
	}
	for _, row := range cal.Snapshot() {
		if row.UsedHours > row.CapacityHours {
			t.Fatalf("cell %s/%s over budget: used %g capacity %g",
				row.Base, row.Date, row.UsedHours, row.CapacityHours)
		}
	}
}

func TestCalendar_PerBaseOverride(t *testing.T) {
	cal, err := NewCalendar([]string{"CDG", "ORY"}, model.NewHorizon(start, 2), 10,
		map[string]float64{"ORY": 4})
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	if got := cal.Remaining("CDG", start); got != 10 {
		t.Fatalf("CDG remaining = %g, want 10", got)
	}
	if got := cal.Remaining("ORY", start); got != 4 {
		t.Fatalf("ORY remaining = %g, want 4", got)
	}
}

func TestCalendar_SnapshotOrdering(t *testing.T) {
	cal, err := NewCalendar([]string{"ORY", "CDG"}, model.NewHorizon(start, 3), 10, nil)
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	cal.Commit("CDG", start, 5)
	rows := cal.Snapshot()
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	if rows[0].Base != "CDG" || !rows[0].Date.Equal(start) {
		t.Fatalf("first row = %s/%v, want CDG/%v", rows[0].Base, rows[0].Date, start)
	}
	if rows[0].UtilizationPct != 50 {
		t.Fatalf("utilization = %g, want 50", rows[0].UtilizationPct)
	}
	if rows[3].Base != "ORY" {
		t.Fatalf("bases not ordered: %s", rows[3].Base)
	}
}

func TestCalendar_Validation(t *testing.T) {
	if _, err := NewCalendar([]string{"CDG"}, model.NewHorizon(start, 0), 10, nil); err == nil {
		t.Fatalf("zero horizon must fail")
	}
	if _, err := NewCalendar([]string{"CDG"}, model.NewHorizon(start, 1), 0, nil); err == nil {
		t.Fatalf("zero hours must fail")
	}
	if _, err := NewCalendar([]string{"CDG"}, model.NewHorizon(start, 1), 10,
		map[string]float64{"CDG": -1}); err == nil {
		t.Fatalf("negative override must fail")
	}
}
