package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"techops/core/forecast"
	"techops/core/model"
)

// header maps column names to their position, so input files may order
// or extend columns freely.
type header map[string]int

func readHeader(r *csv.Reader) (header, error) {
	cols, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("missing header row")
	}
	if err != nil {
		return nil, err
	}
	h := make(header, len(cols))
	for i, c := range cols {
		h[c] = i
	}
	return h, nil
}

func (h header) get(rec []string, col string) (string, error) {
	i, ok := h[col]
	if !ok {
		return "", fmt.Errorf("missing column %q", col)
	}
	return rec[i], nil
}

func (h header) optional(rec []string, col string) string {
	if i, ok := h[col]; ok {
		return rec[i]
	}
	return ""
}

// LoadFleet reads aircraft records from a CSV file with at least the
// columns aircraft_id, fleet_type and base.
func LoadFleet(path string) ([]model.Aircraft, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fleet: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("fleet %s: %w", path, err)
	}
	var fleet []model.Aircraft
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fleet %s: %w", path, err)
		}
		id, err := h.get(rec, "aircraft_id")
		if err != nil {
			return nil, fmt.Errorf("fleet %s: %w", path, err)
		}
		base, err := h.get(rec, "base")
		if err != nil {
			return nil, fmt.Errorf("fleet %s: %w", path, err)
		}
		ac := model.Aircraft{ID: id, FleetType: h.optional(rec, "fleet_type"), Base: base}
		if err := ac.Validate(); err != nil {
			return nil, fmt.Errorf("fleet %s: %w", path, err)
		}
		fleet = append(fleet, ac)
	}
	return fleet, nil
}

// LoadTaskCards reads task card records from a CSV file with at least the
// columns task_id, interval_days, window_days and labor_hours.
func LoadTaskCards(path string) ([]model.TaskCard, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open task cards: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("task cards %s: %w", path, err)
	}
	var cards []model.TaskCard
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("task cards %s: %w", path, err)
		}
		card, err := taskCard(h, rec)
		if err != nil {
			return nil, fmt.Errorf("task cards %s: %w", path, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func taskCard(h header, rec []string) (model.TaskCard, error) {
	id, err := h.get(rec, "task_id")
	if err != nil {
		return model.TaskCard{}, err
	}
	interval, err := intColumn(h, rec, "interval_days")
	if err != nil {
		return model.TaskCard{}, err
	}
	window, err := intColumn(h, rec, "window_days")
	if err != nil {
		return model.TaskCard{}, err
	}
	laborRaw, err := h.get(rec, "labor_hours")
	if err != nil {
		return model.TaskCard{}, err
	}
	labor, err := strconv.ParseFloat(laborRaw, 64)
	if err != nil {
		return model.TaskCard{}, fmt.Errorf("task %s: labor_hours: %w", id, err)
	}
	card := model.TaskCard{
		ID:           id,
		Name:         h.optional(rec, "task_name"),
		FleetType:    h.optional(rec, "fleet_type"),
		Criticality:  h.optional(rec, "criticality"),
		IntervalDays: interval,
		WindowDays:   window,
		LaborHours:   labor,
	}
	if err := card.Validate(); err != nil {
		return model.TaskCard{}, err
	}
	return card, nil
}

func intColumn(h header, rec []string, col string) (int, error) {
	raw, err := h.get(rec, col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", col, err)
	}
	return v, nil
}

// LoadHistory reads last-performed records from a CSV file with the
// columns aircraft_id, task_id and last_done (YYYY-MM-DD).
func LoadHistory(path string) (forecast.History, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r)
	if err != nil {
		return nil, fmt.Errorf("history %s: %w", path, err)
	}
	hist := make(forecast.History)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", path, err)
		}
		ac, err := h.get(rec, "aircraft_id")
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", path, err)
		}
		task, err := h.get(rec, "task_id")
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", path, err)
		}
		raw, err := h.get(rec, "last_done")
		if err != nil {
			return nil, fmt.Errorf("history %s: %w", path, err)
		}
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("history %s: %s/%s last_done: %w", path, ac, task, err)
		}
		hist[forecast.HistoryKey{AircraftID: ac, TaskID: task}] = day
	}
	return hist, nil
}
