// Package analytics derives descriptive statistics from anomaly observations.
// Every function is pure and deterministic; degenerate inputs produce defined
// fallbacks instead of errors (see the individual functions).
package analytics

import (
	"math"

	"github.com/couchcryptid/climate-mood/internal/domain"
)

// Default statistic parameters, matching the dashboard's 10-year framing of
// monthly data.
const (
	DefaultRollingWindow     = 120
	DefaultRollingMinPeriods = 30
	DefaultTrendYears        = 10
)

// Prediction is a linear extrapolation of the mean anomaly at a target year.
type Prediction struct {
	Year    int     `json:"year"`
	Anomaly float64 `json:"anomaly"`
}

// Summary holds the statistics derived once per full dataset, independent of
// any filtered view.
type Summary struct {
	SlopePerYear float64      `json:"slope_per_year"`
	Correlation  float64      `json:"correlation"`
	Predictions  []Prediction `json:"predictions"`
}

// Summarize computes the full-dataset statistics: the recent trend over
// trendYears, the year/anomaly correlation, and one linear prediction per
// target year.
func Summarize(obs []domain.Observation, trendYears int, targetYears []int) Summary {
	s := Summary{
		SlopePerYear: RecentTrend(obs, trendYears),
		Correlation:  Correlation(obs),
		Predictions:  make([]Prediction, 0, len(targetYears)),
	}
	for _, year := range targetYears {
		s.Predictions = append(s.Predictions, Prediction{Year: year, Anomaly: Predict(obs, year)})
	}
	return s
}

// RollingMean computes the trailing mean over the last window values, aligned
// one-to-one with the input. Positions where fewer than minPeriods values
// have been seen yield nil. A minPeriods below 1 is treated as 1.
func RollingMean(values []float64, window, minPeriods int) []*float64 {
	if minPeriods < 1 {
		minPeriods = 1
	}

	out := make([]*float64, len(values))
	if window < 1 {
		return out
	}

	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}

		count := i + 1
		if count > window {
			count = window
		}
		if count >= minPeriods {
			mean := sum / float64(count)
			out[i] = &mean
		}
	}
	return out
}

// RecentTrend fits anomaly against a 0-based monthly index over the last
// years*12 observations (or all of them if fewer) and returns the slope
// scaled to a per-year rate. Fewer than 2 points yields 0.
func RecentTrend(obs []domain.Observation, years int) float64 {
	n := years * domain.MonthsPerYear
	if n > len(obs) {
		n = len(obs)
	}
	recent := obs[len(obs)-n:]
	if len(recent) < 2 {
		return 0
	}

	xs := make([]float64, len(recent))
	for i := range recent {
		xs[i] = float64(i)
	}
	slope, _, ok := linearFit(xs, domain.Anomalies(recent))
	if !ok {
		return 0
	}
	return slope * domain.MonthsPerYear
}

// Correlation returns the Pearson correlation between year and anomaly over
// the full dataset. Fewer than 2 points, or zero variance on either axis,
// yields 0.
func Correlation(obs []domain.Observation) float64 {
	if len(obs) < 2 {
		return 0
	}

	var sumX, sumY float64
	for _, o := range obs {
		sumX += float64(o.Year)
		sumY += o.Anomaly
	}
	n := float64(len(obs))
	meanX, meanY := sumX/n, sumY/n

	var covXY, varX, varY float64
	for _, o := range obs {
		dx := float64(o.Year) - meanX
		dy := o.Anomaly - meanY
		covXY += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return covXY / math.Sqrt(varX*varY)
}

// Predict fits a first-degree polynomial of anomaly against year over the
// full dataset and evaluates it at targetYear. With no observations it
// yields 0; with fewer than 2 distinct years the fit is degenerate and the
// mean anomaly is returned instead.
func Predict(obs []domain.Observation, targetYear int) float64 {
	if len(obs) == 0 {
		return 0
	}

	xs := make([]float64, len(obs))
	ys := make([]float64, len(obs))
	for i, o := range obs {
		xs[i] = float64(o.Year)
		ys[i] = o.Anomaly
	}

	slope, intercept, ok := linearFit(xs, ys)
	if !ok {
		return mean(ys)
	}
	return slope*float64(targetYear) + intercept
}

// linearFit computes the ordinary-least-squares line y = slope*x + intercept.
// ok is false when fewer than 2 points are given or x has zero variance.
func linearFit(xs, ys []float64) (slope, intercept float64, ok bool) {
	if len(xs) < 2 || len(xs) != len(ys) {
		return 0, 0, false
	}

	meanX, meanY := mean(xs), mean(ys)

	var covXY, varX float64
	for i := range xs {
		dx := xs[i] - meanX
		covXY += dx * (ys[i] - meanY)
		varX += dx * dx
	}
	if varX == 0 {
		return 0, 0, false
	}

	slope = covXY / varX
	intercept = meanY - slope*meanX
	return slope, intercept, true
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
