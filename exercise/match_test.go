package exercise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bench Press (Barbell)", "bench press barbell"},
		{"  Squat  ", "squat"},
		{"Lat Pulldown - Wide Grip", "lat pulldown wide grip"},
		{"21s Bicep Curl", "21s bicep curl"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Bench Press", "bench  press"))
}

func TestSimilarityContainment(t *testing.T) {
	assert.Equal(t, 0.8, Similarity("Bench Press (Barbell)", "bench press"))
	assert.Equal(t, 0.8, Similarity("squat", "Back Squat"))
}

func TestSimilarityTokenOverlap(t *testing.T) {
	// One of two tokens shared: 0.5 + 1/2 * 0.3.
	assert.InDelta(t, 0.65, Similarity("bench press", "shoulder press"), 1e-9)
}

func TestSimilarityPositionalFallback(t *testing.T) {
	score := Similarity("ran", "run")
	// Two of three positions agree, scaled by 0.5.
	assert.InDelta(t, 2.0/3.0*0.5, score, 1e-9)
}

func TestSimilarityDisjoint(t *testing.T) {
	assert.Equal(t, 0.0, Similarity("abc", "xyz"))
}

func TestDefault(t *testing.T) {
	got := Default()
	assert.Equal(t, CategoryTotalBody, got.Category)
	assert.Equal(t, uint16(0), got.CategorySubtype)
	assert.Equal(t, 0.3, got.Confidence)
}
