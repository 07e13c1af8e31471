package pipeline

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lucasjlepore/hevyfit"
	"github.com/lucasjlepore/hevyfit/exercise"
	"github.com/lucasjlepore/hevyfit/fitmsg"
)

// Run converts a Hevy CSV export into a message bundle on disk.
// Output files:
//   - manifest.json
//   - messages.jsonl
//   - sets.csv or sets.parquet (when sets are included)
func Run(ctx context.Context, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.CSVPath) == "" {
		return nil, fmt.Errorf("csv path is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := opts.Format
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "parquet" {
		return nil, fmt.Errorf("unsupported set format: %q", format)
	}

	data, err := os.ReadFile(opts.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}
	sum := sha256.Sum256(data)
	sha := hex.EncodeToString(sum[:])

	rows, err := ReadRows(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse csv file: %w", err)
	}

	activities := hevyfit.GroupRows(rows)
	if opts.LastOnly {
		latest, err := hevyfit.LatestActivity(activities)
		if err != nil {
			return nil, fmt.Errorf("select latest activity: %w", err)
		}
		if latest == nil {
			activities = nil
		} else {
			activities = []hevyfit.Activity{*latest}
		}
	}

	matcher := &exercise.Matcher{
		TablePath:  opts.LookupTablePath,
		TableURL:   opts.LookupTableURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}

	var (
		envelopes  []MessageEnvelope
		setRows    []SetRow
		summaries  []ActivitySummary
		skipped    []string
		assembleOK int
	)
	for i := range activities {
		activity := &activities[i]
		msgs, err := fitmsg.Assemble(ctx, activity, fitmsg.Options{
			IncludeSets: opts.IncludeSets,
			Classifier:  matcher,
		})
		if err != nil {
			// A malformed timestamp poisons one activity, not the run.
			var fe *hevyfit.FormatError
			if errors.As(err, &fe) {
				skipped = append(skipped, fmt.Sprintf("%s: %v", activity.Title, err))
				continue
			}
			return nil, fmt.Errorf("assemble activity %q: %w", activity.Title, err)
		}
		for _, msg := range msgs {
			envelopes = append(envelopes, MessageEnvelope{
				ActivityIndex: assembleOK,
				ActivityTitle: activity.Title,
				Message:       msg,
			})
			if row, ok := setRowFromMessage(activity.Title, msg); ok {
				setRows = append(setRows, row)
			}
		}
		summaries = append(summaries, summarizeActivity(activity))
		assembleOK++
	}

	if err := ensureOutputDir(opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}

	messagesPath := filepath.Join(opts.OutDir, "messages.jsonl")
	if err := writeJSONL(messagesPath, envelopes); err != nil {
		return nil, fmt.Errorf("write messages.jsonl: %w", err)
	}

	setsPath := ""
	if opts.IncludeSets {
		if format == "parquet" {
			setsPath = filepath.Join(opts.OutDir, "sets.parquet")
			err = writeSetsParquet(setsPath, setRows)
		} else {
			setsPath = filepath.Join(opts.OutDir, "sets.csv")
			err = writeSetsCSV(setsPath, setRows)
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", filepath.Base(setsPath), err)
		}
	}

	manifest := Manifest{
		GeneratedAt:   time.Now().UTC(),
		SourceFile:    opts.CSVPath,
		SourceSHA256:  sha,
		RowCount:      len(rows),
		ActivityCount: assembleOK,
		MessageCount:  len(envelopes),
		SetCount:      len(setRows),
		Activities:    summaries,
		SkippedErrors: skipped,
	}
	manifestPath := filepath.Join(opts.OutDir, "manifest.json")
	if err := writeJSON(manifestPath, manifest); err != nil {
		return nil, fmt.Errorf("write manifest.json: %w", err)
	}

	return &Result{
		OutputDir:     opts.OutDir,
		ManifestPath:  manifestPath,
		MessagesPath:  messagesPath,
		SetsPath:      setsPath,
		ActivityCount: assembleOK,
		MessageCount:  len(envelopes),
		SetCount:      len(setRows),
		SkippedErrors: skipped,
	}, nil
}

func summarizeActivity(activity *hevyfit.Activity) ActivitySummary {
	summary := ActivitySummary{
		Title:         activity.Title,
		StartTime:     activity.StartTime,
		EndTime:       activity.EndTime,
		ExerciseCount: len(activity.Exercises),
		Summary:       hevyfit.Summary(activity),
	}
	for _, ex := range activity.Exercises {
		summary.SetCount += len(ex.Sets)
	}

	start, err := hevyfit.ParseTimestamp(activity.StartTime)
	if err != nil {
		return summary
	}
	end, err := hevyfit.ParseTimestamp(activity.EndTime)
	if err != nil {
		return summary
	}
	duration, err := hevyfit.SessionDuration(start, end)
	if err != nil {
		return summary
	}
	summary.DurationSeconds = duration
	summary.EstimatedCalories = hevyfit.EstimateCalories(activity, duration)
	return summary
}

// setRowFromMessage flattens a set message into a tabular row. Non-set
// messages report ok=false.
func setRowFromMessage(activityTitle string, msg fitmsg.Message) (SetRow, bool) {
	if msg.Num != fitmsg.MesgNumSet {
		return SetRow{}, false
	}
	row := SetRow{ActivityTitle: activityTitle}
	if v, ok := msg.Get("timestamp"); ok {
		if ts, ok := v.(uint32); ok {
			row.TimestampUTC = hevyfit.FitEpoch.Add(time.Duration(ts) * time.Second).Format(time.RFC3339)
		}
	}
	row.DurationS = intField(msg, "duration")
	row.Repetitions = intField(msg, "repetitions")
	row.WeightKG = intField(msg, "weight")
	row.SetType = intField(msg, "set_type")
	row.WktStepIndex = intField(msg, "wkt_step_index")
	row.MessageIndex = intField(msg, "message_index")
	if v, ok := msg.Get("wkt_step_name"); ok {
		if name, ok := v.(string); ok {
			row.WktStepName = name
		}
	}
	if v, ok := msg.Get("category"); ok {
		if cats, ok := v.([]uint16); ok && len(cats) > 0 {
			row.Category = cats[0]
		}
	}
	if v, ok := msg.Get("category_subtype"); ok {
		if subs, ok := v.([]uint16); ok && len(subs) > 0 {
			row.CategorySubtype = subs[0]
		}
	}
	return row, true
}

func intField(msg fitmsg.Message, name string) int {
	v, ok := msg.Get(name)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

func ensureOutputDir(path string, overwrite bool) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) > 0 && !overwrite {
		return fmt.Errorf("output directory is not empty: %s (set overwrite=true to allow)", path)
	}
	return nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeJSONL(path string, envelopes []MessageEnvelope) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := bufio.NewWriterSize(f, 1<<20)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	for _, envelope := range envelopes {
		if err := enc.Encode(envelope); err != nil {
			return err
		}
	}
	return buf.Flush()
}
