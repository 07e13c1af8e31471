package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasjlepore/hevyfit/fitmsg"
	"github.com/lucasjlepore/hevyfit/fitview"
)

func writeSampleCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workouts.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write sample csv: %v", err)
	}
	return path
}

func TestRunWritesBundle(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "export")

	result, err := Run(context.Background(), Options{
		CSVPath:     writeSampleCSV(t, sampleCSV),
		OutDir:      outDir,
		IncludeSets: true,
		Format:      "csv",
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.ActivityCount != 1 {
		t.Fatalf("activities = %d, want 1", result.ActivityCount)
	}
	if result.SetCount != 3 {
		t.Fatalf("sets = %d, want 3", result.SetCount)
	}
	for _, path := range []string{result.ManifestPath, result.MessagesPath, result.SetsPath} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("artifact missing: %v", err)
		}
	}

	manifestData, err := os.ReadFile(result.ManifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var manifest Manifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if manifest.RowCount != 3 {
		t.Fatalf("manifest row count = %d, want 3", manifest.RowCount)
	}
	if manifest.MessageCount != result.MessageCount {
		t.Fatalf("manifest message count mismatch: %d != %d", manifest.MessageCount, result.MessageCount)
	}
	if len(manifest.Activities) != 1 {
		t.Fatalf("manifest activities = %d, want 1", len(manifest.Activities))
	}
	if manifest.Activities[0].DurationSeconds != 1800 {
		t.Fatalf("manifest duration = %d, want 1800", manifest.Activities[0].DurationSeconds)
	}
	if !strings.Contains(manifest.Activities[0].Summary, "Workout: Push Day") {
		t.Fatalf("manifest summary missing header:\n%s", manifest.Activities[0].Summary)
	}
}

func TestRunMessagesRoundTripThroughView(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "export")

	result, err := Run(context.Background(), Options{
		CSVPath:     writeSampleCSV(t, sampleCSV),
		OutDir:      outDir,
		IncludeSets: true,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	f, err := os.Open(result.MessagesPath)
	if err != nil {
		t.Fatalf("open messages: %v", err)
	}
	defer f.Close()

	var msgs []fitmsg.Message
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var envelope MessageEnvelope
		if err := json.Unmarshal(scanner.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal envelope: %v", err)
		}
		if envelope.ActivityTitle != "Push Day" {
			t.Fatalf("unexpected activity title: %q", envelope.ActivityTitle)
		}
		msgs = append(msgs, envelope.Message)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan messages: %v", err)
	}
	if len(msgs) != result.MessageCount {
		t.Fatalf("message lines = %d, want %d", len(msgs), result.MessageCount)
	}

	view := fitview.Project(fitview.BagFromMessages(msgs))
	if view.FileID == nil {
		t.Fatal("expected file_id in projected view")
	}
	if len(view.Sets) != 3 {
		t.Fatalf("projected sets = %d, want 3", len(view.Sets))
	}
}

func TestRunSkipsActivityWithBadTimestamp(t *testing.T) {
	csv := sampleCSV +
		`Broken Day,whenever,"7 Dec 2025, 10:00",,Squat,,,0,normal,100,5,,,` + "\n" +
		`Leg Day,"8 Dec 2025, 09:00","8 Dec 2025, 10:00",,Squat,,,0,normal,100,5,,,` + "\n"
	outDir := filepath.Join(t.TempDir(), "export")

	result, err := Run(context.Background(), Options{
		CSVPath:     writeSampleCSV(t, csv),
		OutDir:      outDir,
		IncludeSets: true,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.ActivityCount != 2 {
		t.Fatalf("activities = %d, want 2 (broken one skipped)", result.ActivityCount)
	}
	if len(result.SkippedErrors) != 1 {
		t.Fatalf("skipped errors = %v, want 1", result.SkippedErrors)
	}
	if !strings.Contains(result.SkippedErrors[0], "Broken Day") {
		t.Fatalf("skip reason should name the activity: %q", result.SkippedErrors[0])
	}
}

func TestRunLastOnly(t *testing.T) {
	csv := sampleCSV +
		`Leg Day,"8 Dec 2025, 09:00","8 Dec 2025, 10:00",,Squat,,,0,normal,100,5,,,` + "\n"
	outDir := filepath.Join(t.TempDir(), "export")

	result, err := Run(context.Background(), Options{
		CSVPath:     writeSampleCSV(t, csv),
		OutDir:      outDir,
		LastOnly:    true,
		IncludeSets: true,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.ActivityCount != 1 {
		t.Fatalf("activities = %d, want 1", result.ActivityCount)
	}
	manifestData, _ := os.ReadFile(result.ManifestPath)
	var manifest Manifest
	if err := json.Unmarshal(manifestData, &manifest); err != nil {
		t.Fatalf("unmarshal manifest: %v", err)
	}
	if manifest.Activities[0].Title != "Leg Day" {
		t.Fatalf("expected most recent activity, got %q", manifest.Activities[0].Title)
	}
}

func TestRunNoSets(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "export")

	result, err := Run(context.Background(), Options{
		CSVPath: writeSampleCSV(t, sampleCSV),
		OutDir:  outDir,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.SetsPath != "" {
		t.Fatalf("expected no set table, got %q", result.SetsPath)
	}
	if result.SetCount != 0 {
		t.Fatalf("set count = %d, want 0", result.SetCount)
	}
}

func TestRunParquetFormat(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "export")

	result, err := Run(context.Background(), Options{
		CSVPath:     writeSampleCSV(t, sampleCSV),
		OutDir:      outDir,
		IncludeSets: true,
		Format:      "parquet",
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if filepath.Base(result.SetsPath) != "sets.parquet" {
		t.Fatalf("sets path = %q, want sets.parquet", result.SetsPath)
	}
	info, err := os.Stat(result.SetsPath)
	if err != nil {
		t.Fatalf("sets.parquet missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("sets.parquet is empty")
	}
}

func TestRunRejectsNonEmptyOutputDir(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "leftover"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed output dir: %v", err)
	}

	_, err := Run(context.Background(), Options{
		CSVPath: writeSampleCSV(t, sampleCSV),
		OutDir:  outDir,
	})
	if err == nil {
		t.Fatal("expected refusal to write into non-empty directory")
	}
}

func TestRunUnsupportedFormat(t *testing.T) {
	_, err := Run(context.Background(), Options{
		CSVPath: writeSampleCSV(t, sampleCSV),
		OutDir:  filepath.Join(t.TempDir(), "export"),
		Format:  "xml",
	})
	if err == nil {
		t.Fatal("expected unsupported format error")
	}
}
