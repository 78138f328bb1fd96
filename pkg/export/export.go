// Package export marshals the three planning outputs (maintenance plan,
// capacity calendar, risk register) to CSV or JSON, and loads the tabular
// inputs the pipeline consumes. Empty collections produce header-only
// files, not errors.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"techops/core/capacity"
	"techops/core/model"
)

const dateLayout = "2006-01-02"

type planRecord struct {
	AircraftID    string `json:"aircraft_id"`
	TaskID        string `json:"task_id"`
	DueDate       string `json:"due_date"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	Status        string `json:"status"`
}

func planRecords(placements []model.Placement) []planRecord {
	recs := make([]planRecord, len(placements))
	for i, p := range placements {
		rec := planRecord{
			AircraftID: p.Item.Aircraft.ID,
			TaskID:     p.Item.Task.ID,
			DueDate:    p.Item.DueDate.Format(dateLayout),
			Status:     p.Status.String(),
		}
		if p.Status == model.StatusScheduled {
			rec.ScheduledDate = p.ScheduledDate.Format(dateLayout)
		}
		recs[i] = rec
	}
	return recs
}

// WritePlanCSV writes the maintenance plan to w.
func WritePlanCSV(w io.Writer, placements []model.Placement) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"aircraft_id", "task_id", "due_date", "scheduled_date", "status"}); err != nil {
		return err
	}
	for _, rec := range planRecords(placements) {
		if err := cw.Write([]string{rec.AircraftID, rec.TaskID, rec.DueDate, rec.ScheduledDate, rec.Status}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePlanJSON writes the maintenance plan to w in JSON format.
func WritePlanJSON(w io.Writer, placements []model.Placement) error {
	return json.NewEncoder(w).Encode(planRecords(placements))
}

type calendarRecord struct {
	Base           string  `json:"base"`
	Date           string  `json:"date"`
	CapacityHours  float64 `json:"capacity_hours"`
	UsedHours      float64 `json:"used_hours"`
	UtilizationPct float64 `json:"utilization_pct"`
}

func calendarRecords(rows []capacity.Row) []calendarRecord {
	recs := make([]calendarRecord, len(rows))
	for i, r := range rows {
		recs[i] = calendarRecord{
			Base:           r.Base,
			Date:           r.Date.Format(dateLayout),
			CapacityHours:  r.CapacityHours,
			UsedHours:      r.UsedHours,
			UtilizationPct: r.UtilizationPct,
		}
	}
	return recs
}

// WriteCalendarCSV writes the capacity calendar to w.
func WriteCalendarCSV(w io.Writer, rows []capacity.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"base", "date", "capacity_hours", "used_hours", "utilization_pct"}); err != nil {
		return err
	}
	for _, rec := range calendarRecords(rows) {
		if err := cw.Write([]string{
			rec.Base,
			rec.Date,
			formatFloat(rec.CapacityHours),
			formatFloat(rec.UsedHours),
			strconv.FormatFloat(rec.UtilizationPct, 'f', 1, 64),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCalendarJSON writes the capacity calendar to w in JSON format.
func WriteCalendarJSON(w io.Writer, rows []capacity.Row) error {
	return json.NewEncoder(w).Encode(calendarRecords(rows))
}

type riskRecord struct {
	AircraftID string `json:"aircraft_id"`
	TaskID     string `json:"task_id"`
	RiskKind   string `json:"risk_kind"`
	DueDate    string `json:"due_date"`
	Detail     string `json:"detail"`
}

func riskRecords(entries []model.RiskEntry) []riskRecord {
	recs := make([]riskRecord, len(entries))
	for i, e := range entries {
		recs[i] = riskRecord{
			AircraftID: e.Item.Aircraft.ID,
			TaskID:     e.Item.Task.ID,
			RiskKind:   e.Kind.String(),
			DueDate:    e.Item.DueDate.Format(dateLayout),
			Detail:     e.Detail,
		}
	}
	return recs
}

// WriteRiskCSV writes the risk register to w.
func WriteRiskCSV(w io.Writer, entries []model.RiskEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"aircraft_id", "task_id", "risk_kind", "due_date", "detail"}); err != nil {
		return err
	}
	for _, rec := range riskRecords(entries) {
		if err := cw.Write([]string{rec.AircraftID, rec.TaskID, rec.RiskKind, rec.DueDate, rec.Detail}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRiskJSON writes the risk register to w in JSON format.
func WriteRiskJSON(w io.Writer, entries []model.RiskEntry) error {
	return json.NewEncoder(w).Encode(riskRecords(entries))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
