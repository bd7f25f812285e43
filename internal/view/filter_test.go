package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/climate-mood/internal/domain"
)

func obsAt(year, month int, anomaly float64) domain.Observation {
	return domain.Observation{
		Date:    time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
		Year:    year,
		Month:   month,
		Anomaly: anomaly,
	}
}

func TestFilter_Apply(t *testing.T) {
	obs := []domain.Observation{
		obsAt(1950, 1, -0.3), // Cold
		obsAt(1980, 6, 0.2),  // Stable
		obsAt(2000, 3, 0.7),  // Warm
		obsAt(2024, 12, 1.6), // Hot
	}

	t.Run("all moods no date bounds keeps everything", func(t *testing.T) {
		got := AllMoodsFilter().Apply(obs)
		assert.Equal(t, obs, got)
	})

	t.Run("empty mood set returns nothing regardless of dates", func(t *testing.T) {
		f := Filter{Start: obs[0].Date, End: obs[3].Date}
		assert.Empty(t, f.Apply(obs))
	})

	t.Run("mood subset", func(t *testing.T) {
		f := Filter{Moods: []domain.Mood{domain.MoodHot, domain.MoodCold}}
		got := f.Apply(obs)
		require.Len(t, got, 2)
		assert.Equal(t, -0.3, got[0].Anomaly)
		assert.Equal(t, 1.6, got[1].Anomaly)
	})

	t.Run("date range is inclusive", func(t *testing.T) {
		f := AllMoodsFilter()
		f.Start = time.Date(1980, 6, 1, 0, 0, 0, 0, time.UTC)
		f.End = time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)
		got := f.Apply(obs)
		require.Len(t, got, 2)
		assert.Equal(t, 1980, got[0].Year)
		assert.Equal(t, 2000, got[1].Year)
	})

	t.Run("inverted date range yields empty view", func(t *testing.T) {
		f := AllMoodsFilter()
		f.Start = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		f.End = time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.Empty(t, f.Apply(obs))
	})

	t.Run("order is preserved", func(t *testing.T) {
		f := Filter{Moods: domain.AllMoods()}
		got := f.Apply(obs)
		for i := 1; i < len(got); i++ {
			assert.True(t, got[i-1].Date.Before(got[i].Date))
		}
	})
}
