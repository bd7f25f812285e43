package domain

import "time"

// MonthsPerYear is the number of month columns in the GISTEMP table.
const MonthsPerYear = 12

// MonthColumns are the canonical GISTEMP month column labels, in calendar
// order. Aggregate columns (J-D, D-N, DJF, MAM, JJA, SON) are not listed and
// never become observations.
var MonthColumns = [MonthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// YearRow is one wide-format row of the GISTEMP table: a year and up to
// twelve monthly anomalies. A nil cell is a missing value (the upstream
// asterisk sentinel or an unparseable cell).
type YearRow struct {
	Year      int
	Anomalies [MonthsPerYear]*float64 // index 0 = Jan
}

// RawTable is the parsed wide-format GISTEMP table, one row per year.
type RawTable struct {
	Rows []YearRow
}

// Observation is a single monthly anomaly reading in long format. Records
// are immutable once derived; Date is always the first of the month in UTC.
type Observation struct {
	Date    time.Time `json:"date"`
	Year    int       `json:"year"`
	Month   int       `json:"month"` // 1 = January
	Anomaly float64   `json:"anomaly"`
}

// Anomalies extracts the anomaly values from a sequence of observations,
// preserving order.
func Anomalies(obs []Observation) []float64 {
	values := make([]float64, len(obs))
	for i, o := range obs {
		values[i] = o.Anomaly
	}
	return values
}
