// Package pipeline orchestrates the Hevy CSV to FIT-message conversion
// and writes an inspectable export bundle.
package pipeline

import (
	"time"

	"github.com/lucasjlepore/hevyfit/fitmsg"
)

// Options configures a conversion run.
type Options struct {
	CSVPath string
	OutDir  string

	// LookupTablePath / LookupTableURL locate the exercise lookup table;
	// both optional, classification degrades without them.
	LookupTablePath string
	LookupTableURL  string

	// LastOnly converts only the most recent activity in the export.
	LastOnly bool

	// IncludeSets emits workout_step and set messages.
	IncludeSets bool

	// Format selects the set-row artifact: "csv" or "parquet".
	Format string

	// Overwrite allows writing into a non-empty output directory.
	Overwrite bool
}

// Result describes generated artifacts.
type Result struct {
	OutputDir     string   `json:"output_dir"`
	ManifestPath  string   `json:"manifest_path"`
	MessagesPath  string   `json:"messages_path"`
	SetsPath      string   `json:"sets_path,omitempty"`
	ActivityCount int      `json:"activity_count"`
	MessageCount  int      `json:"message_count"`
	SetCount      int      `json:"set_count"`
	SkippedErrors []string `json:"skipped_errors,omitempty"`
}

// Manifest captures run metadata and per-activity summaries.
type Manifest struct {
	GeneratedAt   time.Time         `json:"generated_at"`
	SourceFile    string            `json:"source_file"`
	SourceSHA256  string            `json:"source_sha256"`
	RowCount      int               `json:"row_count"`
	ActivityCount int               `json:"activity_count"`
	MessageCount  int               `json:"message_count"`
	SetCount      int               `json:"set_count"`
	Activities    []ActivitySummary `json:"activities"`
	SkippedErrors []string          `json:"skipped_errors,omitempty"`
}

// ActivitySummary is a compact per-activity view for the manifest.
type ActivitySummary struct {
	Title             string `json:"title"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	DurationSeconds   int    `json:"duration_seconds"`
	EstimatedCalories int    `json:"estimated_calories"`
	ExerciseCount     int    `json:"exercise_count"`
	SetCount          int    `json:"set_count"`
	Summary           string `json:"summary"`
}

// MessageEnvelope is one JSONL line in messages.jsonl. Messages of one
// activity share an activity index and preserve assembly order, which is
// the only structural requirement the downstream encoder has.
type MessageEnvelope struct {
	ActivityIndex int            `json:"activity_index"`
	ActivityTitle string         `json:"activity_title"`
	Message       fitmsg.Message `json:"message"`
}

// SetRow is one flattened set message for the tabular artifact.
type SetRow struct {
	ActivityTitle   string `json:"activity_title"`
	TimestampUTC    string `json:"ts_utc_iso"`
	DurationS       int    `json:"duration_s"`
	Repetitions     int    `json:"repetitions"`
	WeightKG        int    `json:"weight_kg"`
	SetType         int    `json:"set_type"`
	WktStepIndex    int    `json:"wkt_step_index"`
	WktStepName     string `json:"wkt_step_name"`
	Category        uint16 `json:"category"`
	CategorySubtype uint16 `json:"category_subtype"`
	MessageIndex    int    `json:"message_index"`
}
