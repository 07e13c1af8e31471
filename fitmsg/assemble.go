package fitmsg

import (
	"context"
	"fmt"
	"math"

	hevyfit "github.com/lucasjlepore/hevyfit"
	"github.com/lucasjlepore/hevyfit/exercise"
)

// Device identity written into file_id and device_info messages.
const (
	manufacturerGarmin = 1
	fileTypeActivity   = 4
	productName        = "Hevy Converter"
	softwareVersion    = 1
)

// Profile enum codes used by the fixed emission sequence.
const (
	eventTimer       = 0
	eventTypeStart   = 0
	eventTypeStopAll = 4
	sportTraining    = 10
	subSportStrength = 20
	weightUnitKG     = 1
	setTypeRest      = 0
	setTypeActive    = 1
)

// Classifier resolves an exercise title to its taxonomy codes. It must be
// total; assembly never aborts on classification.
type Classifier interface {
	Classify(ctx context.Context, name string) exercise.Match
}

// Options controls message assembly.
type Options struct {
	// IncludeSets emits workout_step and set messages after the summary
	// messages.
	IncludeSets bool

	// Classifier resolves exercise titles. Nil degrades every set to the
	// generic total-body match.
	Classifier Classifier
}

// Assemble converts one grouped activity into the fixed-order message
// sequence an activity FIT encoder expects: file_id, device_info, timer
// start, session, lap, activity, timer stop, then workout steps and sets.
//
// A malformed activity timestamp aborts with a FormatError. Once the
// timestamps parse, assembly always completes.
func Assemble(ctx context.Context, activity *hevyfit.Activity, opts Options) ([]Message, error) {
	start, err := hevyfit.ParseTimestamp(activity.StartTime)
	if err != nil {
		return nil, fmt.Errorf("activity start time: %w", err)
	}
	end, err := hevyfit.ParseTimestamp(activity.EndTime)
	if err != nil {
		return nil, fmt.Errorf("activity end time: %w", err)
	}
	durationSeconds, err := hevyfit.SessionDuration(start, end)
	if err != nil {
		return nil, fmt.Errorf("activity %q: %w", activity.Title, err)
	}

	totalCalories := hevyfit.EstimateCalories(activity, durationSeconds)
	startFit := hevyfit.FitTimestamp(start)
	endFit := hevyfit.FitTimestamp(end)

	msgs := make([]Message, 0, 16)

	msgs = append(msgs, newMessage(MesgNumFileID,
		field("manufacturer", manufacturerGarmin),
		field("type", fileTypeActivity),
		field("time_created", startFit),
		field("serial_number", 0),
	))

	msgs = append(msgs, newMessage(MesgNumDeviceInfo,
		field("timestamp", startFit),
		field("device_index", 0), // creator device
		field("manufacturer", manufacturerGarmin),
		field("product", 0),
		field("product_name", productName),
		field("serial_number", 0),
		field("software_version", softwareVersion),
	))

	msgs = append(msgs, newMessage(MesgNumEvent,
		field("timestamp", startFit),
		field("event", eventTimer),
		field("event_type", eventTypeStart),
	))

	// Durations and weights are stored in unscaled seconds/kg rather than
	// the nominal 1000x/16x profile scale: the downstream reader applies
	// no scale factor, so scaled values would display wrong.
	msgs = append(msgs, newMessage(MesgNumSession,
		field("message_index", 0),
		field("timestamp", endFit),
		field("start_time", startFit),
		field("sport", sportTraining),
		field("sub_sport", subSportStrength),
		field("total_elapsed_time", durationSeconds),
		field("total_timer_time", durationSeconds),
		field("total_distance", 0),
		field("total_calories", totalCalories),
		field("avg_speed", 0),
		field("max_speed", 0),
		field("avg_heart_rate", 0),
		field("max_heart_rate", 0),
		field("avg_cadence", 0),
		field("max_cadence", 0),
		field("total_ascent", 0),
		field("total_descent", 0),
		field("num_laps", 1),
		field("first_lap_index", 0),
		field("event_group", 0),
	))

	msgs = append(msgs, newMessage(MesgNumLap,
		field("message_index", 0),
		field("timestamp", endFit),
		field("start_time", startFit),
		field("total_elapsed_time", durationSeconds),
		field("total_timer_time", durationSeconds),
		field("total_distance", 0),
		field("total_calories", totalCalories),
		field("avg_speed", 0),
		field("max_speed", 0),
		field("avg_heart_rate", 0),
		field("max_heart_rate", 0),
		field("avg_cadence", 0),
		field("max_cadence", 0),
		field("total_ascent", 0),
		field("total_descent", 0),
		field("event_group", 0),
	))

	msgs = append(msgs, newMessage(MesgNumActivity,
		field("timestamp", endFit),
		field("total_timer_time", durationSeconds),
		field("num_sessions", 1),
		field("local_timestamp", 0), // UTC assumed
	))

	msgs = append(msgs, newMessage(MesgNumEvent,
		field("timestamp", endFit),
		field("event", eventTimer),
		field("event_type", eventTypeStopAll),
	))

	if !opts.IncludeSets {
		return msgs, nil
	}

	// One workout step per distinct exercise title, first-seen order. The
	// step index is the stable reference every set of that exercise uses.
	stepIndexByTitle := make(map[string]int)
	for _, ex := range activity.Exercises {
		if _, ok := stepIndexByTitle[ex.ExerciseTitle]; ok {
			continue
		}
		stepIndex := len(stepIndexByTitle)
		stepIndexByTitle[ex.ExerciseTitle] = stepIndex
		msgs = append(msgs, newMessage(MesgNumWorkoutStep,
			field("message_index", stepIndex),
			field("wkt_step_name", ex.ExerciseTitle),
		))
	}

	planned := scheduleSets(activity, start, stepIndexByTitle)
	for i, ps := range planned {
		// Each set lasts until the next set starts; the last one runs to
		// the activity end.
		var setDuration int
		if i < len(planned)-1 {
			setDuration = int(math.Round(planned[i+1].start.Sub(ps.start).Seconds()))
		} else {
			setDuration = int(math.Round(end.Sub(ps.start).Seconds()))
		}

		setType := setTypeRest
		if ps.set.SetType == "normal" || ps.set.SetType == "warmup" {
			setType = setTypeActive
		}

		weight := 0
		if ps.set.WeightKG != nil {
			weight = int(math.Round(*ps.set.WeightKG))
		}
		reps := 0
		if ps.set.Reps != nil {
			reps = int(math.Round(*ps.set.Reps))
		}

		match := classify(ctx, opts.Classifier, ps.exerciseTitle)
		setFit := hevyfit.FitTimestamp(ps.start)

		msgs = append(msgs, newMessage(MesgNumSet,
			field("timestamp", setFit),
			field("duration", setDuration),
			field("repetitions", reps),
			field("weight", weight),
			field("weight_display_unit", weightUnitKG),
			field("set_type", setType),
			field("start_time", setFit),
			field("wkt_step_name", ps.exerciseTitle),
			field("wkt_step_index", ps.stepIndex),
			field("category", []uint16{match.Category}),
			field("category_subtype", []uint16{match.CategorySubtype}),
			field("message_index", i),
		))
	}

	return msgs, nil
}

func classify(ctx context.Context, classifier Classifier, title string) exercise.Match {
	if classifier == nil {
		return exercise.Default()
	}
	return classifier.Classify(ctx, title)
}
