package fitview

import (
	"context"
	"testing"

	hevyfit "github.com/lucasjlepore/hevyfit"
	"github.com/lucasjlepore/hevyfit/fitmsg"
)

func floatPtr(v float64) *float64 { return &v }

func assembledMessages(t *testing.T) []fitmsg.Message {
	t.Helper()

	activity := &hevyfit.Activity{
		Title:     "Push Day",
		StartTime: "5 Dec 2025, 11:00",
		EndTime:   "5 Dec 2025, 11:30",
		Exercises: []hevyfit.Exercise{
			{
				ExerciseTitle: "Bench Press (Barbell)",
				Sets: []hevyfit.Set{
					{SetIndex: 0, SetType: "normal", WeightKG: floatPtr(80), Reps: floatPtr(8)},
				},
			},
		},
	}
	msgs, err := fitmsg.Assemble(context.Background(), activity, fitmsg.Options{IncludeSets: true})
	if err != nil {
		t.Fatalf("Assemble error: %v", err)
	}
	return msgs
}

func TestProjectAssembledMessages(t *testing.T) {
	bag := BagFromMessages(assembledMessages(t))

	view := Project(bag)
	if view.FileID == nil {
		t.Fatal("expected file_id projection")
	}
	if view.FileID.TimeCreated != "2025-12-05T11:00:00Z" {
		t.Fatalf("time_created = %q", view.FileID.TimeCreated)
	}
	if len(view.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(view.Sessions))
	}
	if len(view.Laps) != 1 {
		t.Fatalf("laps = %d, want 1", len(view.Laps))
	}
	if len(view.Activities) != 1 {
		t.Fatalf("activities = %d, want 1", len(view.Activities))
	}
	if len(view.Sets) != 1 {
		t.Fatalf("sets = %d, want 1", len(view.Sets))
	}
	if got := view.Sessions[0]["total_timer_time"]; got != 1800 {
		t.Fatalf("session total_timer_time = %v, want 1800", got)
	}
}

func TestProjectPartialBag(t *testing.T) {
	bag := Bag{
		Messages: map[string][]map[string]any{
			"session": {{"sport": "training"}},
		},
		Errors: []string{"short read"},
	}

	view := Project(bag)
	if view.FileID != nil {
		t.Fatal("expected no file_id")
	}
	if len(view.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(view.Sessions))
	}
	if view.Laps != nil || view.Sets != nil || view.Activities != nil {
		t.Fatal("absent families must stay nil")
	}
	if len(view.Errors) != 1 {
		t.Fatalf("errors = %v", view.Errors)
	}
}

func TestProjectEmptyBag(t *testing.T) {
	view := Project(Bag{})
	if view.FileID != nil || view.Sessions != nil || view.Errors != nil {
		t.Fatalf("empty bag should project empty view: %+v", view)
	}
}

func TestFormatInstant(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"uint32 epoch offset", uint32(86400), "1990-01-01T00:00:00Z"},
		{"int", int(0), "1989-12-31T00:00:00Z"},
		{"string passthrough", "2025-12-05T11:00:00Z", "2025-12-05T11:00:00Z"},
		{"unknown type", struct{}{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatInstant(tc.in); got != tc.want {
				t.Fatalf("formatInstant(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
