package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"techops/core/forecast"
	"techops/core/model"
)

// Round trip: what the seed command writes, the plan command must read
// back unchanged.
func TestInputsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fleet := []model.Aircraft{
		{ID: "AC-1", FleetType: "A320", Base: "CDG"},
		{ID: "AC-2", FleetType: "B737", Base: "ORY"},
	}
	cards := []model.TaskCard{
		{ID: "A-CHK", Name: "A Check", FleetType: "A320", Criticality: "High", IntervalDays: 60, WindowDays: 10, LaborHours: 60},
	}
	hist := forecast.History{
		{AircraftID: "AC-1", TaskID: "A-CHK"}: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	write := func(name string, fn func(*bytes.Buffer) error) string {
		var buf bytes.Buffer
		if err := fn(&buf); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
		return path
	}

	fleetPath := write("fleet.csv", func(b *bytes.Buffer) error { return WriteFleetCSV(b, fleet) })
	cardPath := write("task_cards.csv", func(b *bytes.Buffer) error { return WriteTaskCardsCSV(b, cards) })
	histPath := write("history.csv", func(b *bytes.Buffer) error { return WriteHistoryCSV(b, hist) })

	gotFleet, err := LoadFleet(fleetPath)
	if err != nil {
		t.Fatalf("load fleet: %v", err)
	}
	if len(gotFleet) != 2 || gotFleet[0] != fleet[0] || gotFleet[1] != fleet[1] {
		t.Fatalf("fleet round trip: %+v", gotFleet)
	}

	gotCards, err := LoadTaskCards(cardPath)
	if err != nil {
		t.Fatalf("load cards: %v", err)
	}
	if len(gotCards) != 1 || gotCards[0] != cards[0] {
		t.Fatalf("cards round trip: %+v", gotCards)
	}

	gotHist, err := LoadHistory(histPath)
	if err != nil {
		t.Fatalf("load history: %v", err)
	}
	key := forecast.HistoryKey{AircraftID: "AC-1", TaskID: "A-CHK"}
	if !gotHist[key].Equal(hist[key]) {
		t.Fatalf("history round trip: %v", gotHist[key])
	}
}
