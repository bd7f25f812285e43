package view

import (
	"fmt"
	"sort"

	"github.com/couchcryptid/climate-mood/internal/analytics"
	"github.com/couchcryptid/climate-mood/internal/domain"
)

const (
	histogramBins = 40

	// densityDivisor scales the heuristic ramp drawn over the histogram.
	// It is a presentation flourish carried over from the original
	// dashboard, not a density estimate.
	densityDivisor = 5.5

	// defaultCompareYear1 is the first comparison year when the caller
	// leaves it unset and the year is observed.
	defaultCompareYear1 = 1950

	dateLabel = "2006-01"
)

// Build assembles the dashboard model from the full observation sequence,
// its rolling mean (aligned one-to-one with obs), the full-dataset summary,
// and the caller's filter. With no observations it returns an empty model.
func Build(obs []domain.Observation, rolling []*float64, summary analytics.Summary, f Filter) Model {
	if len(obs) == 0 {
		return Model{Bounds: Bounds{Moods: moodOptions()}}
	}

	filtered := f.Apply(obs)
	latest := obs[len(obs)-1]

	m := Model{
		Metrics: Metrics{
			LatestMood:     domain.MoodFor(latest.Anomaly),
			LatestAnomaly:  latest.Anomaly,
			TrendPerYear:   summary.SlopePerYear,
			TrendDirection: trendDirection(summary.SlopePerYear),
			Correlation:    summary.Correlation,
			Predictions:    summary.Predictions,
		},
		TimeSeries:    timeSeriesChart(obs, rolling, filtered, f.Moods),
		Histogram:     histogramChart(filtered),
		MoodFrequency: moodFrequencyChart(filtered),
		Comparison:    compareYears(obs, f.Year1, f.Year2),
		Bounds: Bounds{
			MinDate: obs[0].Date,
			MaxDate: latest.Date,
			MinYear: obs[0].Year,
			MaxYear: latest.Year,
			Moods:   moodOptions(),
		},
		FilteredCount: len(filtered),
	}
	return m
}

func trendDirection(slope float64) string {
	if slope > 0 {
		return "Warming"
	}
	return "Cooling"
}

func moodOptions() []MoodOption {
	moods := domain.AllMoods()
	opts := make([]MoodOption, len(moods))
	for i, m := range moods {
		opts[i] = MoodOption{Label: m, Color: m.Color()}
	}
	return opts
}

// timeSeriesChart is the main climate journey plot: the filtered anomaly
// line, the full-dataset rolling mean, one marker series per selected mood,
// and the zero baseline.
func timeSeriesChart(obs []domain.Observation, rolling []*float64, filtered []domain.Observation, moods []domain.Mood) ChartConfig {
	series := make([]Series, 0, len(moods)+2)

	anomalyLine := Series{Name: "Temperature Anomaly", Mode: "lines", Color: "#FFFFFF"}
	for _, o := range filtered {
		anomalyLine.Points = append(anomalyLine.Points, Point{Label: o.Date.Format(dateLabel), Value: o.Anomaly})
	}
	series = append(series, anomalyLine)

	rollingLine := Series{Name: "10-Year Rolling Mean", Mode: "lines", Color: "#FFAA33", Dashed: true}
	for i, o := range obs {
		if i >= len(rolling) || rolling[i] == nil {
			continue
		}
		rollingLine.Points = append(rollingLine.Points, Point{Label: o.Date.Format(dateLabel), Value: *rolling[i]})
	}
	series = append(series, rollingLine)

	for _, mood := range moods {
		markers := Series{Name: string(mood), Mode: "markers", Color: mood.Color()}
		for _, o := range filtered {
			if domain.MoodFor(o.Anomaly) == mood {
				markers.Points = append(markers.Points, Point{Label: o.Date.Format(dateLabel), Value: o.Anomaly})
			}
		}
		if len(markers.Points) > 0 {
			series = append(series, markers)
		}
	}

	baseline := 0.0
	return ChartConfig{
		ChartType:     "line",
		Title:         "Global Temperature Anomalies",
		XAxis:         "Year",
		YAxis:         "Temperature Anomaly (°C)",
		Series:        series,
		Baseline:      &baseline,
		BaselineLabel: "Baseline (0°C)",
	}
}

// histogramChart bins the filtered anomalies and overlays the heuristic
// density ramp: anomalies sorted ascending against a linear ramp from 0 to
// count/5.5.
func histogramChart(filtered []domain.Observation) ChartConfig {
	baseline := 0.0
	chart := ChartConfig{
		ChartType:     "histogram",
		Title:         "Temperature Distribution",
		XAxis:         "Temperature Anomaly (°C)",
		YAxis:         "Number of Months",
		Baseline:      &baseline,
		BaselineLabel: "Baseline (0°C)",
	}

	if len(filtered) == 0 {
		chart.Series = []Series{{Name: "Months", Points: []Point{}}}
		return chart
	}

	values := domain.Anomalies(filtered)
	sort.Float64s(values)
	lo, hi := values[0], values[len(values)-1]

	bins := Series{Name: "Months", Color: "#00BFFF"}
	if hi == lo {
		bins.Points = []Point{{Label: anomalyLabel(lo), Value: float64(len(values))}}
	} else {
		counts := make([]int, histogramBins)
		width := (hi - lo) / histogramBins
		for _, v := range values {
			idx := int((v - lo) / width)
			if idx >= histogramBins {
				idx = histogramBins - 1
			}
			counts[idx]++
		}
		bins.Points = make([]Point, histogramBins)
		for i, count := range counts {
			center := lo + width*(float64(i)+0.5)
			bins.Points[i] = Point{Label: anomalyLabel(center), Value: float64(count)}
		}
	}

	ramp := Series{Name: "Approx. density trend", Mode: "lines", Color: "#FF8C00", Dashed: true}
	top := float64(len(values)) / densityDivisor
	for i, v := range values {
		y := 0.0
		if len(values) > 1 {
			y = top * float64(i) / float64(len(values)-1)
		}
		ramp.Points = append(ramp.Points, Point{Label: anomalyLabel(v), Value: y})
	}

	chart.Series = []Series{bins, ramp}
	return chart
}

// moodFrequencyChart counts filtered observations per mood, band order,
// omitting moods with no occurrences.
func moodFrequencyChart(filtered []domain.Observation) ChartConfig {
	counts := make(map[domain.Mood]int, 4)
	for _, o := range filtered {
		counts[domain.MoodFor(o.Anomaly)]++
	}

	slices := Series{Name: "Mood Distribution"}
	for _, mood := range domain.AllMoods() {
		if counts[mood] == 0 {
			continue
		}
		slices.Points = append(slices.Points, Point{Label: string(mood), Value: float64(counts[mood])})
	}
	if slices.Points == nil {
		slices.Points = []Point{}
	}

	return ChartConfig{
		ChartType: "pie",
		Title:     "Earth's Mood Distribution",
		Series:    []Series{slices},
	}
}

// compareYears computes the mean anomaly of two selected years over the full
// dataset. Unset years fall back to defaults; a year with no observations
// makes the whole comparison absent.
func compareYears(obs []domain.Observation, year1, year2 int) *Comparison {
	minYear, maxYear := obs[0].Year, obs[len(obs)-1].Year
	if year1 == 0 {
		year1 = defaultCompareYear1
		if year1 < minYear || year1 > maxYear {
			year1 = minYear
		}
	}
	if year2 == 0 {
		year2 = maxYear
	}

	mean1, ok1 := yearMean(obs, year1)
	mean2, ok2 := yearMean(obs, year2)
	if !ok1 || !ok2 {
		return nil
	}

	delta := mean2 - mean1
	return &Comparison{
		Year1: year1,
		Mean1: mean1,
		Year2: year2,
		Mean2: mean2,
		Delta: delta,
		Narrative: fmt.Sprintf("In %d, Earth averaged %.2f°C, compared to %.2f°C in %d, a change of %+.2f°C.",
			year1, mean1, mean2, year2, delta),
	}
}

func yearMean(obs []domain.Observation, year int) (float64, bool) {
	var sum float64
	var n int
	for _, o := range obs {
		if o.Year == year {
			sum += o.Anomaly
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func anomalyLabel(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
