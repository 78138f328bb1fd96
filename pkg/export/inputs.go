package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"techops/core/forecast"
	"techops/core/model"
)

// WriteFleetCSV writes aircraft records in the format LoadFleet reads.
func WriteFleetCSV(w io.Writer, fleet []model.Aircraft) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"aircraft_id", "fleet_type", "base"}); err != nil {
		return err
	}
	for _, ac := range fleet {
		if err := cw.Write([]string{ac.ID, ac.FleetType, ac.Base}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTaskCardsCSV writes task cards in the format LoadTaskCards reads.
func WriteTaskCardsCSV(w io.Writer, cards []model.TaskCard) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"task_id", "task_name", "fleet_type", "criticality", "interval_days", "window_days", "labor_hours"}); err != nil {
		return err
	}
	for _, c := range cards {
		if err := cw.Write([]string{
			c.ID, c.Name, c.FleetType, c.Criticality,
			strconv.Itoa(c.IntervalDays),
			strconv.Itoa(c.WindowDays),
			formatFloat(c.LaborHours),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistoryCSV writes last-performed records in the format LoadHistory
// reads, ordered by aircraft then task for reproducible files.
func WriteHistoryCSV(w io.Writer, hist forecast.History) error {
	keys := make([]forecast.HistoryKey, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].AircraftID != keys[j].AircraftID {
			return keys[i].AircraftID < keys[j].AircraftID
		}
		return keys[i].TaskID < keys[j].TaskID
	})

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"aircraft_id", "task_id", "last_done"}); err != nil {
		return err
	}
	for _, k := range keys {
		if err := cw.Write([]string{k.AircraftID, k.TaskID, hist[k].Format(dateLayout)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
