// Package view builds the render-ready dashboard view model. Build is a pure
// function of the observation sequence, the derived statistics, and the
// caller's filter; it holds no state between renders. The chart shapes are a
// presentation contract for the browser front-end, which owns the widgets
// and re-requests the model on every interaction.
package view

import (
	"time"

	"github.com/couchcryptid/climate-mood/internal/analytics"
	"github.com/couchcryptid/climate-mood/internal/domain"
)

// Model is the complete dashboard payload for one render pass.
type Model struct {
	Metrics       Metrics     `json:"metrics"`
	TimeSeries    ChartConfig `json:"time_series"`
	Histogram     ChartConfig `json:"histogram"`
	MoodFrequency ChartConfig `json:"mood_frequency"`
	Comparison    *Comparison `json:"comparison,omitempty"`
	Bounds        Bounds      `json:"bounds"`
	FilteredCount int         `json:"filtered_count"`
}

// Metrics are the five scalar summary displays. Latest* and the statistics
// come from the full dataset, never the filtered view.
type Metrics struct {
	LatestMood     domain.Mood            `json:"latest_mood"`
	LatestAnomaly  float64                `json:"latest_anomaly"`
	TrendPerYear   float64                `json:"trend_per_year"`
	TrendDirection string                 `json:"trend_direction"` // "Warming" or "Cooling"
	Correlation    float64                `json:"correlation"`
	Predictions    []analytics.Prediction `json:"predictions"`
}

// Bounds tells the front-end how to configure its pickers.
type Bounds struct {
	MinDate time.Time    `json:"min_date"`
	MaxDate time.Time    `json:"max_date"`
	MinYear int          `json:"min_year"`
	MaxYear int          `json:"max_year"`
	Moods   []MoodOption `json:"moods"`
}

// MoodOption is one selectable mood with its display color.
type MoodOption struct {
	Label domain.Mood `json:"label"`
	Color string      `json:"color"`
}

// ChartConfig defines how to render one chart.
type ChartConfig struct {
	ChartType     string   `json:"chart_type"` // "line", "histogram", "pie"
	Title         string   `json:"title"`
	XAxis         string   `json:"x_axis,omitempty"`
	YAxis         string   `json:"y_axis,omitempty"`
	Series        []Series `json:"series"`
	Baseline      *float64 `json:"baseline,omitempty"`
	BaselineLabel string   `json:"baseline_label,omitempty"`
}

// Series is one data series in a chart.
type Series struct {
	Name   string  `json:"name"`
	Mode   string  `json:"mode,omitempty"` // "lines" or "markers"
	Color  string  `json:"color,omitempty"`
	Dashed bool    `json:"dashed,omitempty"`
	Points []Point `json:"points"`
}

// Point is a single labeled value.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Comparison is the two-year mean anomaly comparison.
type Comparison struct {
	Year1     int     `json:"year1"`
	Mean1     float64 `json:"mean1"`
	Year2     int     `json:"year2"`
	Mean2     float64 `json:"mean2"`
	Delta     float64 `json:"delta"`
	Narrative string  `json:"narrative"`
}
