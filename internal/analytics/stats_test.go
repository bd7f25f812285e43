package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/climate-mood/internal/domain"
)

// monthlyObs builds consecutive monthly observations starting at startYear
// January, one per anomaly value.
func monthlyObs(startYear int, anomalies ...float64) []domain.Observation {
	obs := make([]domain.Observation, len(anomalies))
	date := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i, a := range anomalies {
		obs[i] = domain.Observation{
			Date:    date,
			Year:    date.Year(),
			Month:   int(date.Month()),
			Anomaly: a,
		}
		date = date.AddDate(0, 1, 0)
	}
	return obs
}

// januaryObs builds one January observation per year, starting at startYear.
func januaryObs(startYear int, anomalies ...float64) []domain.Observation {
	obs := make([]domain.Observation, len(anomalies))
	for i, a := range anomalies {
		year := startYear + i
		obs[i] = domain.Observation{
			Date:    time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
			Year:    year,
			Month:   1,
			Anomaly: a,
		}
	}
	return obs
}

func TestRollingMean(t *testing.T) {
	t.Run("shorter than min periods yields all nil", func(t *testing.T) {
		out := RollingMean([]float64{0.1, 0.2, 0.3}, 120, 30)

		require.Len(t, out, 3)
		for i, v := range out {
			assert.Nil(t, v, "position %d", i)
		}
	})

	t.Run("defined once min periods reached", func(t *testing.T) {
		values := []float64{1, 2, 3, 4}
		out := RollingMean(values, 3, 2)

		require.Len(t, out, 4)
		assert.Nil(t, out[0])
		require.NotNil(t, out[1])
		assert.InDelta(t, 1.5, *out[1], 1e-9)
		require.NotNil(t, out[2])
		assert.InDelta(t, 2.0, *out[2], 1e-9)
		// Window slides: mean of {2,3,4}, not of all four.
		require.NotNil(t, out[3])
		assert.InDelta(t, 3.0, *out[3], 1e-9)
	})

	t.Run("constant input stays constant", func(t *testing.T) {
		values := make([]float64, 50)
		for i := range values {
			values[i] = 0.7
		}
		out := RollingMean(values, 10, 5)
		for i := 4; i < len(out); i++ {
			require.NotNil(t, out[i])
			assert.InDelta(t, 0.7, *out[i], 1e-9)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, RollingMean(nil, 120, 30))
	})
}

func TestRecentTrend(t *testing.T) {
	t.Run("fewer than two points returns zero", func(t *testing.T) {
		assert.Zero(t, RecentTrend(nil, 10))
		assert.Zero(t, RecentTrend(monthlyObs(2000, 0.5), 10))
	})

	t.Run("steady monthly increase scales to per-year rate", func(t *testing.T) {
		// +0.01°C per month over 24 months → 0.12°C per year.
		anomalies := make([]float64, 24)
		for i := range anomalies {
			anomalies[i] = 0.01 * float64(i)
		}
		trend := RecentTrend(monthlyObs(2000, anomalies...), 10)
		assert.InDelta(t, 0.12, trend, 1e-9)
	})

	t.Run("only the trailing window is fitted", func(t *testing.T) {
		// 12 years of flat data followed by a warming decade: with a 1-year
		// window on the warming tail, the older flat stretch is ignored.
		anomalies := make([]float64, 0, 24)
		for i := 0; i < 12; i++ {
			anomalies = append(anomalies, 0)
		}
		for i := 0; i < 12; i++ {
			anomalies = append(anomalies, 0.1*float64(i))
		}
		trend := RecentTrend(monthlyObs(2000, anomalies...), 1)
		assert.InDelta(t, 1.2, trend, 1e-9)
	})

	t.Run("constant anomalies give zero trend", func(t *testing.T) {
		anomalies := make([]float64, 36)
		for i := range anomalies {
			anomalies[i] = 0.42
		}
		assert.InDelta(t, 0, RecentTrend(monthlyObs(2000, anomalies...), 10), 1e-12)
	})
}

func TestCorrelation(t *testing.T) {
	t.Run("perfectly increasing january series", func(t *testing.T) {
		obs := januaryObs(2000, 0.1, 0.2, 0.3)
		assert.InDelta(t, 1.0, Correlation(obs), 1e-9)
	})

	t.Run("perfectly decreasing series", func(t *testing.T) {
		obs := januaryObs(2000, 0.3, 0.2, 0.1)
		assert.InDelta(t, -1.0, Correlation(obs), 1e-9)
	})

	t.Run("fewer than two points", func(t *testing.T) {
		assert.Zero(t, Correlation(nil))
		assert.Zero(t, Correlation(januaryObs(2000, 0.5)))
	})

	t.Run("zero anomaly variance", func(t *testing.T) {
		assert.Zero(t, Correlation(januaryObs(2000, 0.2, 0.2, 0.2)))
	})

	t.Run("single year zero x variance", func(t *testing.T) {
		obs := monthlyObs(2000, 0.1, 0.9) // same year, two months
		assert.Zero(t, Correlation(obs))
	})
}

func TestPredict(t *testing.T) {
	t.Run("constant anomaly predicts that constant anywhere", func(t *testing.T) {
		obs := januaryObs(2000, 0.8, 0.8, 0.8)
		assert.InDelta(t, 0.8, Predict(obs, 2001), 1e-9)
		assert.InDelta(t, 0.8, Predict(obs, 2050), 1e-9)
	})

	t.Run("linear series extrapolates exactly", func(t *testing.T) {
		// anomaly = 0.1 * (year - 2000)
		obs := januaryObs(2000, 0.0, 0.1, 0.2, 0.3)
		assert.InDelta(t, 3.0, Predict(obs, 2030), 1e-9)
		assert.InDelta(t, 5.0, Predict(obs, 2050), 1e-9)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Zero(t, Predict(nil, 2030))
	})

	t.Run("single distinct year falls back to mean", func(t *testing.T) {
		obs := monthlyObs(2000, 0.2, 0.4)
		assert.InDelta(t, 0.3, Predict(obs, 2050), 1e-9)
	})
}

func TestSummarize(t *testing.T) {
	obs := januaryObs(2000, 0.0, 0.1, 0.2, 0.3)

	s := Summarize(obs, DefaultTrendYears, []int{2030, 2050})

	assert.InDelta(t, 1.0, s.Correlation, 1e-9)
	require.Len(t, s.Predictions, 2)
	assert.Equal(t, 2030, s.Predictions[0].Year)
	assert.InDelta(t, 3.0, s.Predictions[0].Anomaly, 1e-9)
	assert.Equal(t, 2050, s.Predictions[1].Year)
	assert.InDelta(t, 5.0, s.Predictions[1].Anomaly, 1e-9)
	// January-only records are still a rising series under the index fit.
	assert.Greater(t, s.SlopePerYear, 0.0)
}
