package domain

import (
	"sort"
	"time"
)

// Reshape pivots the wide year×month table into a long sequence of
// observations. Missing cells are dropped, duplicate year rows keep their
// first occurrence, and the result is sorted ascending by date. Dates are
// unique per record, so no further ordering is needed.
func Reshape(table RawTable) []Observation {
	obs := make([]Observation, 0, len(table.Rows)*MonthsPerYear)
	seen := make(map[int]bool, len(table.Rows))

	for _, row := range table.Rows {
		if seen[row.Year] {
			continue
		}
		seen[row.Year] = true

		for i, anomaly := range row.Anomalies {
			if anomaly == nil {
				continue
			}
			month := i + 1
			obs = append(obs, Observation{
				Date:    time.Date(row.Year, time.Month(month), 1, 0, 0, 0, 0, time.UTC),
				Year:    row.Year,
				Month:   month,
				Anomaly: *anomaly,
			})
		}
	}

	sort.Slice(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
	return obs
}
