// Package hevyfit converts Hevy workout log exports into the ordered,
// cross-referenced message sequence of a FIT strength training activity,
// and projects decoded FIT files back into the same semantic shape.
package hevyfit

// WorkoutRow is one row of a Hevy CSV export: a single recorded set.
// Rows are immutable once parsed; nil pointers mark empty numeric cells.
type WorkoutRow struct {
	Title           string   `json:"title"`
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	Description     string   `json:"description"`
	ExerciseTitle   string   `json:"exercise_title"`
	SupersetID      *string  `json:"superset_id"`
	ExerciseNotes   string   `json:"exercise_notes"`
	SetIndex        int      `json:"set_index"`
	SetType         string   `json:"set_type"`
	WeightKG        *float64 `json:"weight_kg"`
	Reps            *float64 `json:"reps"`
	DistanceKM      *float64 `json:"distance_km"`
	DurationSeconds *float64 `json:"duration_seconds"`
	RPE             *float64 `json:"rpe"`
}

// Activity is one complete workout grouped from raw rows, identified by
// the (title, start time, end time) triple. Exercises keep the order in
// which they first appeared in the source rows.
type Activity struct {
	Title       string     `json:"title"`
	StartTime   string     `json:"start_time"`
	EndTime     string     `json:"end_time"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
}

// Exercise groups the sets of one exercise title within an activity.
// Sets are sorted ascending by SetIndex; indices need not be contiguous.
type Exercise struct {
	ExerciseTitle string  `json:"exercise_title"`
	SupersetID    *string `json:"superset_id"`
	ExerciseNotes string  `json:"exercise_notes"`
	Sets          []Set   `json:"sets"`
}

// Set is one recorded resistance training attempt. A set with both
// WeightKG and Reps nil is a placeholder row; grouping keeps it, message
// assembly drops it.
type Set struct {
	SetIndex        int      `json:"set_index"`
	SetType         string   `json:"set_type"`
	WeightKG        *float64 `json:"weight_kg"`
	Reps            *float64 `json:"reps"`
	DistanceKM      *float64 `json:"distance_km"`
	DurationSeconds *float64 `json:"duration_seconds"`
	RPE             *float64 `json:"rpe"`
}

// Empty reports whether the set carries neither weight nor repetitions.
func (s *Set) Empty() bool {
	return s.WeightKG == nil && s.Reps == nil
}
