package view

import (
	"time"

	"github.com/couchcryptid/climate-mood/internal/domain"
)

// Filter is the transient per-render selection. It is owned by the caller,
// re-applied on every render, and never persisted.
type Filter struct {
	// Start and End bound the date range inclusively; a zero time leaves
	// that side unbounded.
	Start time.Time
	End   time.Time

	// Moods is the selected mood set. An empty set matches nothing, so
	// callers wanting "no mood filter" must pass every mood.
	Moods []domain.Mood

	// Year1 and Year2 select the comparison years; 0 picks the defaults
	// (1950 when observed, else the earliest year; and the latest year).
	Year1 int
	Year2 int
}

// AllMoodsFilter returns a filter selecting every mood with no date bounds.
func AllMoodsFilter() Filter {
	return Filter{Moods: domain.AllMoods()}
}

// Apply returns the sub-sequence of observations inside the date range whose
// mood is in the selected set. Order is preserved. An empty mood set or an
// inverted date range yields an empty result, never an error.
func (f Filter) Apply(obs []domain.Observation) []domain.Observation {
	selected := make(map[domain.Mood]bool, len(f.Moods))
	for _, m := range f.Moods {
		selected[m] = true
	}
	if len(selected) == 0 {
		return nil
	}

	var out []domain.Observation
	for _, o := range obs {
		if !f.Start.IsZero() && o.Date.Before(f.Start) {
			continue
		}
		if !f.End.IsZero() && o.Date.After(f.End) {
			continue
		}
		if !selected[domain.MoodFor(o.Anomaly)] {
			continue
		}
		out = append(out, o)
	}
	return out
}
