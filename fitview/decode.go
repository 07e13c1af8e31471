package fitview

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/tormoder/fit"
)

// DecodeActivity decodes binary activity FIT data into the semantic view
// using the tormoder codec for the standard message families. Set
// messages sit outside that codec's typed activity surface and reach the
// view only through generic bags, which Project tolerates.
func DecodeActivity(data []byte) (View, error) {
	decoded, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return View{}, fmt.Errorf("decode fit data: %w", err)
	}
	activityFile, err := decoded.Activity()
	if err != nil {
		return View{}, fmt.Errorf("activity file expected: %w", err)
	}

	view := View{}

	if _, id, err := fit.DecodeHeaderAndFileID(bytes.NewReader(data)); err == nil {
		fileID := &FileID{
			Manufacturer: fmt.Sprint(id.Manufacturer),
			Type:         fmt.Sprint(id.Type),
			SerialNumber: id.SerialNumber,
		}
		if !id.TimeCreated.IsZero() {
			fileID.TimeCreated = id.TimeCreated.UTC().Format(time.RFC3339)
		}
		view.FileID = fileID
	}

	if activityFile.Activity != nil {
		a := activityFile.Activity
		view.Activities = append(view.Activities, map[string]any{
			"timestamp":        instantOrEmpty(a.Timestamp),
			"total_timer_time": a.GetTotalTimerTimeScaled(),
			"num_sessions":     validUint16(a.NumSessions),
			"local_timestamp":  instantOrEmpty(a.LocalTimestamp),
		})
	}

	for _, s := range activityFile.Sessions {
		if s == nil {
			continue
		}
		view.Sessions = append(view.Sessions, map[string]any{
			"timestamp":          instantOrEmpty(s.Timestamp),
			"start_time":         instantOrEmpty(s.StartTime),
			"sport":              fmt.Sprint(s.Sport),
			"sub_sport":          fmt.Sprint(s.SubSport),
			"total_elapsed_time": s.GetTotalElapsedTimeScaled(),
			"total_timer_time":   s.GetTotalTimerTimeScaled(),
			"total_calories":     validUint16(s.TotalCalories),
		})
	}

	for _, lap := range activityFile.Laps {
		if lap == nil {
			continue
		}
		view.Laps = append(view.Laps, map[string]any{
			"timestamp":          instantOrEmpty(lap.Timestamp),
			"start_time":         instantOrEmpty(lap.StartTime),
			"total_elapsed_time": lap.GetTotalElapsedTimeScaled(),
			"total_timer_time":   lap.GetTotalTimerTimeScaled(),
			"total_calories":     validUint16(lap.TotalCalories),
		})
	}

	return view, nil
}

func instantOrEmpty(t time.Time) string {
	if t.IsZero() || fit.IsBaseTime(t) {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func validUint16(v uint16) uint16 {
	if v == math.MaxUint16 {
		return 0
	}
	return v
}
