package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasjlepore/hevyfit"
)

// Columns an export must carry. Extra columns are ignored; column order
// is irrelevant, only header names matter.
var requiredColumns = []string{
	"title",
	"start_time",
	"end_time",
	"exercise_title",
	"set_index",
	"set_type",
	"weight_kg",
	"reps",
}

// ReadRows parses a Hevy CSV export. The first record is the header; every
// later record becomes one WorkoutRow. Empty or unparsable numeric cells
// map to nil rather than failing the whole file.
func ReadRows(r io.Reader) ([]hevyfit.WorkoutRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &hevyfit.FormatError{Input: "", Reason: "empty csv: missing header"}
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &hevyfit.FormatError{Input: name, Reason: "missing required column"}
		}
	}

	var rows []hevyfit.WorkoutRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		rows = append(rows, hevyfit.WorkoutRow{
			Title:           cell("title"),
			StartTime:       cell("start_time"),
			EndTime:         cell("end_time"),
			Description:     cell("description"),
			ExerciseTitle:   cell("exercise_title"),
			SupersetID:      optString(cell("superset_id")),
			ExerciseNotes:   cell("exercise_notes"),
			SetIndex:        parseSetIndex(cell("set_index")),
			SetType:         cell("set_type"),
			WeightKG:        optFloat(cell("weight_kg")),
			Reps:            optFloat(cell("reps")),
			DistanceKM:      optFloat(cell("distance_km")),
			DurationSeconds: optFloat(cell("duration_seconds")),
			RPE:             optFloat(cell("rpe")),
		})
	}
	return rows, nil
}

func optString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func optFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseSetIndex treats an empty or malformed index as 0 so a bad cell
// degrades to "unordered" instead of dropping the row.
func parseSetIndex(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
