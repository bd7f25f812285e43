// Package domain models NASA GISTEMP global temperature anomaly data.
//
// # Data Source
//
// Anomalies come from the NASA Goddard Institute for Space Studies (GISS)
// Surface Temperature Analysis (GISTEMP v4), published as a CSV table at
// https://data.giss.nasa.gov/gistemp/tabledata_v4/GLB.Ts+dSST.csv. Each value
// is the deviation, in degrees Celsius, of a month's global mean surface
// temperature from the 1951–1980 baseline average.
//
// # CSV Conventions
//
// Layout:
//
//	The file opens with a one-line title ("Land-Ocean: Global Means") before
//	the header row. The header columns are Year, the twelve month
//	abbreviations Jan..Dec, and six aggregate columns (J-D, D-N, DJF, MAM,
//	JJA, SON — annual and seasonal means). Only the twelve canonical month
//	columns are observations; the aggregates are derived upstream and are
//	excluded during reshaping.
//
// Missing values:
//
//	A run of asterisks ("*******") marks months not yet reported, typically
//	the tail of the current year. Any cell that fails numeric parsing is
//	likewise treated as missing rather than aborting the load.
//
// # Observations
//
// Reshaping pivots each (year, month) cell into one [Observation] dated the
// first of that month in UTC. The collection is sorted ascending by date and
// holds at most one record per calendar month. See [Reshape].
//
// # Mood Classification
//
// Each anomaly maps to one of four "Earth mood" bands, a project-specific
// simplification for user-facing displays:
//
//	anomaly ≥ 1.5   Hot
//	anomaly ≥ 0.5   Warm
//	anomaly ≥ 0     Stable
//	anomaly < 0     Cold
//
// Bands are held as an ordered table evaluated first-match-wins, so the four
// bands partition the real line with no gap or overlap. See [MoodFor].
package domain
