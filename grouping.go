package hevyfit

import "sort"

type activityKey struct {
	title, start, end string
}

// GroupRows groups flat workout rows into activities keyed by
// (title, start time, end time), preserving first-seen order of both
// activities and exercise titles. Grouping is lossless: placeholder sets
// without weight or reps are kept.
func GroupRows(rows []WorkoutRow) []Activity {
	order := make([]activityKey, 0)
	grouped := make(map[activityKey][]WorkoutRow)
	for _, row := range rows {
		k := activityKey{title: row.Title, start: row.StartTime, end: row.EndTime}
		if _, ok := grouped[k]; !ok {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], row)
	}

	activities := make([]Activity, 0, len(order))
	for _, k := range order {
		activityRows := grouped[k]

		titles := make([]string, 0)
		setsByTitle := make(map[string][]Set)
		firstRowByTitle := make(map[string]WorkoutRow)
		for _, row := range activityRows {
			if _, ok := setsByTitle[row.ExerciseTitle]; !ok {
				titles = append(titles, row.ExerciseTitle)
				firstRowByTitle[row.ExerciseTitle] = row
			}
			setsByTitle[row.ExerciseTitle] = append(setsByTitle[row.ExerciseTitle], Set{
				SetIndex:        row.SetIndex,
				SetType:         row.SetType,
				WeightKG:        row.WeightKG,
				Reps:            row.Reps,
				DistanceKM:      row.DistanceKM,
				DurationSeconds: row.DurationSeconds,
				RPE:             row.RPE,
			})
		}

		exercises := make([]Exercise, 0, len(titles))
		for _, title := range titles {
			sets := setsByTitle[title]
			// Stable so equal indices keep their source order.
			sort.SliceStable(sets, func(i, j int) bool {
				return sets[i].SetIndex < sets[j].SetIndex
			})
			first := firstRowByTitle[title]
			exercises = append(exercises, Exercise{
				ExerciseTitle: title,
				SupersetID:    first.SupersetID,
				ExerciseNotes: first.ExerciseNotes,
				Sets:          sets,
			})
		}

		activities = append(activities, Activity{
			Title:       k.title,
			StartTime:   k.start,
			EndTime:     k.end,
			Description: activityRows[0].Description,
			Exercises:   exercises,
		})
	}
	return activities
}

// LatestActivity returns the most recent activity, ordered by end time
// descending with start time descending as tie-break. It returns nil for
// empty input and a FormatError when a timestamp cannot be parsed.
func LatestActivity(activities []Activity) (*Activity, error) {
	if len(activities) == 0 {
		return nil, nil
	}

	latest := &activities[0]
	latestEnd, err := ParseTimestamp(latest.EndTime)
	if err != nil {
		return nil, err
	}
	latestStart, err := ParseTimestamp(latest.StartTime)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(activities); i++ {
		candidate := &activities[i]
		end, err := ParseTimestamp(candidate.EndTime)
		if err != nil {
			return nil, err
		}
		start, err := ParseTimestamp(candidate.StartTime)
		if err != nil {
			return nil, err
		}
		if end.After(latestEnd) || (end.Equal(latestEnd) && start.After(latestStart)) {
			latest = candidate
			latestEnd = end
			latestStart = start
		}
	}
	return latest, nil
}
