package hevyfit

import (
	"strings"
	"testing"
)

func TestSummaryNil(t *testing.T) {
	if got := Summary(nil); got != "" {
		t.Fatalf("expected empty summary for nil activity, got %q", got)
	}
}

func TestSummaryRendersSetsAndTotals(t *testing.T) {
	activity := &Activity{
		Title:     "Push Day",
		StartTime: "5 Dec 2025, 11:00",
		EndTime:   "5 Dec 2025, 11:30",
		Exercises: []Exercise{
			{
				ExerciseTitle: "Bench Press (Barbell)",
				Sets: []Set{
					{SetIndex: 0, WeightKG: floatPtr(100), Reps: floatPtr(10)},
					{SetIndex: 1}, // placeholder, not rendered
				},
			},
		},
	}

	got := Summary(activity)
	for _, want := range []string{
		"Workout: Push Day",
		"Bench Press (Barbell)",
		"10 x 100.0 kg",
		"Totals: 1 sets | 1000 kg volume | 30m00s | Est. 265 kcal",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryUnparsableTimes(t *testing.T) {
	activity := &Activity{
		Title:     "Broken",
		StartTime: "whenever",
		EndTime:   "later",
	}

	got := Summary(activity)
	if !strings.Contains(got, "unknown") {
		t.Fatalf("expected unknown duration marker:\n%s", got)
	}
	if strings.Contains(got, "kcal") {
		t.Fatalf("calories should be omitted without a duration:\n%s", got)
	}
}
