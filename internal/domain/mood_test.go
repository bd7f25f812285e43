package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodFor(t *testing.T) {
	tests := []struct {
		name     string
		anomaly  float64
		expected Mood
	}{
		{"well above hot threshold", 1.6, MoodHot},
		{"hot boundary inclusive", 1.5, MoodHot},
		{"just below hot", 1.49, MoodWarm},
		{"warm boundary inclusive", 0.5, MoodWarm},
		{"just below warm", 0.49, MoodStable},
		{"stable boundary inclusive", 0.0, MoodStable},
		{"just below zero", -0.01, MoodCold},
		{"deep cold", -3.2, MoodCold},
		{"extreme positive", 100, MoodHot},
		{"extreme negative", math.Inf(-1), MoodCold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MoodFor(tt.anomaly))
		})
	}
}

// The four bands must partition the real line: every value gets exactly one
// label, and labels only change at the documented thresholds.
func TestMoodFor_BandsPartitionRealLine(t *testing.T) {
	valid := map[Mood]bool{MoodHot: true, MoodWarm: true, MoodStable: true, MoodCold: true}

	for a := -5.0; a <= 5.0; a += 0.01 {
		mood := MoodFor(a)
		require.True(t, valid[mood], "anomaly %.2f produced unknown mood %q", a, mood)

		switch {
		case a >= 1.5:
			assert.Equal(t, MoodHot, mood)
		case a >= 0.5:
			assert.Equal(t, MoodWarm, mood)
		case a >= 0:
			assert.Equal(t, MoodStable, mood)
		default:
			assert.Equal(t, MoodCold, mood)
		}
	}
}

func TestMoodColor(t *testing.T) {
	assert.Equal(t, "#FF4444", MoodHot.Color())
	assert.Equal(t, "#FF8800", MoodWarm.Color())
	assert.Equal(t, "#44AA44", MoodStable.Color())
	assert.Equal(t, "#4488FF", MoodCold.Color())
	assert.Equal(t, "#999999", Mood("Tepid").Color())
}

func TestAllMoods(t *testing.T) {
	assert.Equal(t, []Mood{MoodHot, MoodWarm, MoodStable, MoodCold}, AllMoods())
}

func TestParseMood(t *testing.T) {
	t.Run("exact", func(t *testing.T) {
		mood, err := ParseMood("Hot")
		require.NoError(t, err)
		assert.Equal(t, MoodHot, mood)
	})

	t.Run("case insensitive", func(t *testing.T) {
		mood, err := ParseMood("stable")
		require.NoError(t, err)
		assert.Equal(t, MoodStable, mood)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseMood("lukewarm")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown mood")
	})
}
