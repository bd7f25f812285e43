package domain

import (
	"fmt"
	"math"
	"strings"
)

// Mood is the categorical label for an anomaly band.
type Mood string

const (
	MoodHot    Mood = "Hot"
	MoodWarm   Mood = "Warm"
	MoodStable Mood = "Stable"
	MoodCold   Mood = "Cold"
)

// moodBand maps the lowest anomaly of a band (inclusive) to its label.
type moodBand struct {
	min  float64
	mood Mood
}

// moodBands is ordered hottest first and evaluated first-match-wins, so the
// bands partition the real line: [1.5,∞) Hot, [0.5,1.5) Warm, [0,0.5) Stable,
// (-∞,0) Cold. Thresholds are data, not branching logic.
var moodBands = []moodBand{
	{min: 1.5, mood: MoodHot},
	{min: 0.5, mood: MoodWarm},
	{min: 0, mood: MoodStable},
	{min: math.Inf(-1), mood: MoodCold},
}

// moodColors is the display palette, keyed by mood.
var moodColors = map[Mood]string{
	MoodHot:    "#FF4444",
	MoodWarm:   "#FF8800",
	MoodStable: "#44AA44",
	MoodCold:   "#4488FF",
}

// MoodFor classifies an anomaly into exactly one mood band.
func MoodFor(anomaly float64) Mood {
	for _, band := range moodBands {
		if anomaly >= band.min {
			return band.mood
		}
	}
	return MoodCold
}

// Color returns the display color for the mood, or a neutral grey for an
// unknown label.
func (m Mood) Color() string {
	if c, ok := moodColors[m]; ok {
		return c
	}
	return "#999999"
}

// AllMoods lists every mood, hottest first (band order).
func AllMoods() []Mood {
	moods := make([]Mood, len(moodBands))
	for i, band := range moodBands {
		moods[i] = band.mood
	}
	return moods
}

// ParseMood converts a case-insensitive label into a Mood.
func ParseMood(s string) (Mood, error) {
	for _, band := range moodBands {
		if strings.EqualFold(s, string(band.mood)) {
			return band.mood, nil
		}
	}
	return "", fmt.Errorf("unknown mood %q", s)
}
