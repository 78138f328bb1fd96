package scenarios

import (
	"testing"
	"time"

	"techops/core/model"
	"techops/core/plan"
	"techops/infra/logger"
)

// RunScenario executes one planning pass and compares the outcome with
// the scenario's expectations.
func RunScenario(t *testing.T, sc *Scenario) {
	cfg, err := sc.PlanConfig()
	if err != nil {
		t.Fatalf("plan config: %v", err)
	}
	hist, err := sc.HistoryMap()
	if err != nil {
		t.Fatalf("history: %v", err)
	}

	fleet := make([]model.Aircraft, len(sc.Fleet))
	for i, a := range sc.Fleet {
		fleet[i] = a.ToModel()
	}
	cards := make([]model.TaskCard, len(sc.Tasks))
	for i, c := range sc.Tasks {
		cards[i] = c.ToModel()
	}

	runner, err := plan.NewRunner(cfg, logger.NopLogger{})
	if err != nil {
		t.Fatalf("runner: %v", err)
	}
	res, err := runner.Run(fleet, cards, hist)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Stats.DueItems != sc.Expected.Due {
		t.Errorf("due items = %d, want %d", res.Stats.DueItems, sc.Expected.Due)
	}
	if res.Stats.Scheduled != sc.Expected.Scheduled {
		t.Errorf("scheduled = %d, want %d", res.Stats.Scheduled, sc.Expected.Scheduled)
	}
	if res.Stats.Unscheduled != sc.Expected.Unscheduled {
		t.Errorf("unscheduled = %d, want %d", res.Stats.Unscheduled, sc.Expected.Unscheduled)
	}

	for kind, want := range sc.Expected.Risks {
		if got := res.Stats.RiskCounts[kind]; got != want {
			t.Errorf("risk %s = %d, want %d", kind, got, want)
		}
	}
	for kind, got := range res.Stats.RiskCounts {
		if _, listed := sc.Expected.Risks[kind]; !listed && got > 0 {
			t.Errorf("unexpected risk %s = %d", kind, got)
		}
	}

	for _, exp := range sc.Expected.Placements {
		checkPlacement(t, res, exp)
	}
}

func checkPlacement(t *testing.T, res *plan.Result, exp PlacementExp) {
	for _, p := range res.Plan {
		if p.Item.Aircraft.ID != exp.AircraftID || p.Item.Task.ID != exp.TaskID {
			continue
		}
		if exp.Scheduled == "" {
			if p.Status != model.StatusUnscheduled {
				t.Errorf("%s/%s: status %s, want UNSCHEDULED", exp.AircraftID, exp.TaskID, p.Status)
			}
			return
		}
		want, err := time.Parse(dateLayout, exp.Scheduled)
		if err != nil {
			t.Fatalf("%s/%s: expected date: %v", exp.AircraftID, exp.TaskID, err)
		}
		if p.Status != model.StatusScheduled {
			t.Errorf("%s/%s: status %s, want SCHEDULED", exp.AircraftID, exp.TaskID, p.Status)
			return
		}
		if !p.ScheduledDate.Equal(model.Day(want)) {
			t.Errorf("%s/%s: scheduled %s, want %s",
				exp.AircraftID, exp.TaskID, p.ScheduledDate.Format(dateLayout), exp.Scheduled)
		}
		return
	}
	t.Errorf("%s/%s: no placement in plan", exp.AircraftID, exp.TaskID)
}
