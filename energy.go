package hevyfit

import "math"

const (
	// 5.5 kcal/min approximates moderate intensity strength training.
	caloriesPerMinute = 5.5

	// Additional energy per kg-rep of lifted volume.
	volumeBonusPerKgRep = 0.1
)

// EstimateCalories derives an estimated energy expenditure from workout
// duration and total lifted volume. The heuristic is deliberately coarse
// and must stay reproducible bit for bit: round(min × 5.5 + 0.1 × Σ w×r).
func EstimateCalories(activity *Activity, durationSeconds int) int {
	estimated := float64(durationSeconds) / 60.0 * caloriesPerMinute
	estimated += TotalVolume(activity) * volumeBonusPerKgRep
	return int(math.Round(estimated))
}

// TotalVolume is the summed weight × reps over all sets carrying both.
func TotalVolume(activity *Activity) float64 {
	volume := 0.0
	for _, exercise := range activity.Exercises {
		for _, set := range exercise.Sets {
			if set.WeightKG != nil && set.Reps != nil {
				volume += *set.WeightKG * *set.Reps
			}
		}
	}
	return volume
}
