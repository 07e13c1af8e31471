package hevyfit

import (
	"fmt"
	"strings"
)

// Summary renders a compact text summary of one workout: per-exercise set
// lines in first-seen order, then duration, volume and estimated calories.
func Summary(activity *Activity) string {
	if activity == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Workout: %s\n", activity.Title)
	fmt.Fprintf(&b, "Start: %s | End: %s\n", activity.StartTime, activity.EndTime)

	totalSets := 0
	for _, exercise := range activity.Exercises {
		lines := make([]string, 0, len(exercise.Sets))
		for _, set := range exercise.Sets {
			if set.Empty() {
				continue
			}
			lines = append(lines, formatSetLine(set))
			totalSets++
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", exercise.ExerciseTitle)
		for _, line := range lines {
			fmt.Fprintf(&b, "  %s\n", line)
		}
	}

	duration := "unknown"
	calories := ""
	start, startErr := ParseTimestamp(activity.StartTime)
	end, endErr := ParseTimestamp(activity.EndTime)
	if startErr == nil && endErr == nil {
		if seconds, err := SessionDuration(start, end); err == nil {
			duration = formatDurationSeconds(seconds)
			calories = fmt.Sprintf(" | Est. %d kcal", EstimateCalories(activity, seconds))
		}
	}

	fmt.Fprintf(
		&b,
		"\nTotals: %d sets | %.0f kg volume | %s%s\n",
		totalSets,
		TotalVolume(activity),
		duration,
		calories,
	)
	return b.String()
}

func formatSetLine(set Set) string {
	switch {
	case set.WeightKG != nil && set.Reps != nil:
		return fmt.Sprintf("%.0f x %.1f kg", *set.Reps, *set.WeightKG)
	case set.Reps != nil:
		return fmt.Sprintf("%.0f reps", *set.Reps)
	case set.WeightKG != nil:
		return fmt.Sprintf("%.1f kg", *set.WeightKG)
	default:
		return "rest"
	}
}

func formatDurationSeconds(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%dh%02dm", seconds/3600, (seconds%3600)/60)
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}
