// Package exercise classifies free-text exercise names against the FIT
// exercise taxonomy using a reference lookup table with tiered fuzzy
// matching fallbacks.
package exercise

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// CategoryTotalBody is the generic fallback exercise category.
const CategoryTotalBody uint16 = 29

// Match is a classification result. Confidence is advisory only; no
// consumer rejects a match based on it.
type Match struct {
	Category        uint16  `json:"category"`
	CategorySubtype uint16  `json:"category_subtype"`
	Confidence      float64 `json:"confidence"`
}

// Default is the total-body fallback returned when no tier produces an
// acceptable match.
func Default() Match {
	return Match{Category: CategoryTotalBody, CategorySubtype: 0, Confidence: 0.3}
}

// LookupEntry maps a known Hevy exercise title to its Garmin
// classification codes. Entries form read-only reference data.
type LookupEntry struct {
	Garmin GarminExercise `json:"garmin"`
	Hevy   HevyExercise   `json:"hevy"`
}

// GarminExercise identifies one exercise in the target taxonomy.
type GarminExercise struct {
	CategoryID   uint16 `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	ExerciseID   uint16 `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
}

// HevyExercise carries the source-side title, when one is known.
type HevyExercise struct {
	ExerciseTitle *string `json:"exerciseTitle"`
}

// Normalize lower-cases a name, strips everything outside [a-z0-9 ],
// collapses whitespace runs and trims. All matching operates on
// normalized strings.
func Normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity scores how alike two exercise names are, in [0,1]: 1.0 for
// equal normalized strings, 0.8 for substring containment, a token-overlap
// score when any whitespace-delimited token is shared, else a positional
// character-match ratio scaled by 0.5.
func Similarity(a, b string) float64 {
	s1 := Normalize(a)
	s2 := Normalize(b)

	if s1 == s2 {
		return 1.0
	}
	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return 0.8
	}

	words1 := strings.Fields(s1)
	words2 := strings.Fields(s2)
	shared := 0
	for _, w := range words1 {
		if slices.Contains(words2, w) {
			shared++
		}
	}
	if shared > 0 {
		return 0.5 + float64(shared)/math.Max(float64(len(words1)), float64(len(words2)))*0.3
	}

	matches := 0
	minLen := len(s1)
	if len(s2) < minLen {
		minLen = len(s2)
	}
	for i := 0; i < minLen; i++ {
		if s1[i] == s2[i] {
			matches++
		}
	}
	return float64(matches) / math.Max(float64(len(s1)), float64(len(s2))) * 0.5
}
