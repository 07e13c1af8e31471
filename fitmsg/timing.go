package fitmsg

import (
	"time"

	hevyfit "github.com/lucasjlepore/hevyfit"
)

// restInterval is inserted before every set except the first when laying
// sets out on the synthetic timeline.
const restInterval = 60 * time.Second

// plannedSet is one emittable set with its synthetic start instant and
// the workout step it references.
type plannedSet struct {
	set           hevyfit.Set
	exerciseTitle string
	stepIndex     int
	start         time.Time
}

// scheduleSets lays non-empty sets out sequentially from the activity
// start. Placeholder sets (no weight, no reps) get no slot and therefore
// no message.
func scheduleSets(activity *hevyfit.Activity, start time.Time, stepIndexByTitle map[string]int) []plannedSet {
	planned := make([]plannedSet, 0)
	current := start
	for _, exercise := range activity.Exercises {
		stepIndex := stepIndexByTitle[exercise.ExerciseTitle]
		for _, set := range exercise.Sets {
			if set.Empty() {
				continue
			}
			if len(planned) > 0 {
				current = current.Add(restInterval)
			}
			planned = append(planned, plannedSet{
				set:           set,
				exerciseTitle: exercise.ExerciseTitle,
				stepIndex:     stepIndex,
				start:         current,
			})
		}
	}
	return planned
}
