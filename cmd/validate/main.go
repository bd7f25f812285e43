// Command validate performs integrity checks on a GISTEMP anomaly CSV,
// either a local file or the live feed. It verifies the table shape, the
// reshaped observation invariants (ordering, uniqueness, month range),
// anomaly plausibility, and the sanity of the derived statistics.
//
// Usage:
//
//	go run ./cmd/validate -file testdata/gistemp_mock.csv
//	go run ./cmd/validate -url https://data.giss.nasa.gov/gistemp/tabledata_v4/GLB.Ts+dSST.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/couchcryptid/climate-mood/internal/adapter/gistemp"
	"github.com/couchcryptid/climate-mood/internal/analytics"
	"github.com/couchcryptid/climate-mood/internal/config"
	"github.com/couchcryptid/climate-mood/internal/domain"
	"github.com/couchcryptid/climate-mood/internal/observability"
)

// Anomalies outside this band have never occurred in the instrumental record
// and indicate a parse or upstream problem rather than climate.
const (
	minPlausibleAnomaly = -5.0
	maxPlausibleAnomaly = 5.0
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	file := flag.String("file", "", "path to a GISTEMP CSV file")
	url := flag.String("url", "", "URL of a GISTEMP CSV feed (default: the published GISTEMP v4 table)")
	timeout := flag.Duration("timeout", 30*time.Second, "fetch timeout when validating a URL")
	flag.Parse()

	if *file != "" && *url != "" {
		fmt.Fprintln(os.Stderr, "FATAL: -file and -url are mutually exclusive")
		os.Exit(1)
	}

	table, source, err := loadTable(*file, *url, *timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load table: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(table, source))
}

func loadTable(file, url string, timeout time.Duration) (domain.RawTable, string, error) {
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return domain.RawTable{}, "", err
		}
		defer f.Close()
		table, err := gistemp.ParseTable(f)
		return table, file, err
	}

	if url == "" {
		url = config.DefaultGistempURL
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := gistemp.NewClient(url, timeout, observability.NewMetrics(), logger)
	table, err := client.Load(context.Background())
	return table, url, err
}

func run(table domain.RawTable, source string) int {
	fmt.Println("=== GISTEMP Dataset Integrity Validation ===")
	fmt.Printf("source: %s\n", source)
	fmt.Println()

	obs := domain.Reshape(table)

	phases := []*phase{
		validateTableShape(table),
		validateObservations(obs),
		validatePlausibility(obs),
		validateStatistics(obs),
	}

	// ── Report results ──
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Rows: %d years, %d monthly observations\n", len(table.Rows), len(obs))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Table Shape ──
// Years must be unique, ascending, and inside the instrumental record.

func validateTableShape(table domain.RawTable) *phase {
	p := &phase{name: "Phase 1: Table Shape"}

	if len(table.Rows) == 0 {
		p.errorf("table has no year rows")
		return p
	}

	maxYear := time.Now().Year() + 1
	seen := make(map[int]bool, len(table.Rows))
	prev := 0
	for i, row := range table.Rows {
		if row.Year < 1850 || row.Year > maxYear {
			p.errorf("row %d: year %d outside the instrumental record", i, row.Year)
		}
		if seen[row.Year] {
			p.errorf("row %d: duplicate year %d", i, row.Year)
		}
		seen[row.Year] = true
		if i > 0 && row.Year <= prev {
			p.errorf("row %d: year %d not ascending after %d", i, row.Year, prev)
		}
		prev = row.Year
	}
	return p
}

// ── Phase 2: Observation Integrity ──
// The reshaped sequence must be sorted, duplicate-free, and month-valid.

func validateObservations(obs []domain.Observation) *phase {
	p := &phase{name: "Phase 2: Observation Integrity"}

	if len(obs) == 0 {
		p.errorf("no observations after reshape")
		return p
	}

	for i, o := range obs {
		if o.Month < 1 || o.Month > domain.MonthsPerYear {
			p.errorf("observation %d: month %d out of range", i, o.Month)
		}
		if o.Date.Day() != 1 {
			p.errorf("observation %d: date %s is not the first of the month", i, o.Date.Format("2006-01-02"))
		}
		if o.Date.Year() != o.Year || int(o.Date.Month()) != o.Month {
			p.errorf("observation %d: date %s disagrees with year=%d month=%d", i, o.Date.Format("2006-01-02"), o.Year, o.Month)
		}
		if i > 0 && !obs[i-1].Date.Before(o.Date) {
			p.errorf("observation %d: date %s not strictly after %s", i, o.Date.Format("2006-01"), obs[i-1].Date.Format("2006-01"))
		}
	}
	return p
}

// ── Phase 3: Anomaly Plausibility ──

func validatePlausibility(obs []domain.Observation) *phase {
	p := &phase{name: "Phase 3: Anomaly Plausibility"}

	for i, o := range obs {
		if math.IsNaN(o.Anomaly) || math.IsInf(o.Anomaly, 0) {
			p.errorf("observation %d (%s): anomaly is not finite", i, o.Date.Format("2006-01"))
			continue
		}
		if o.Anomaly < minPlausibleAnomaly || o.Anomaly > maxPlausibleAnomaly {
			p.errorf("observation %d (%s): anomaly %.2f outside [%.1f, %.1f]",
				i, o.Date.Format("2006-01"), o.Anomaly, minPlausibleAnomaly, maxPlausibleAnomaly)
		}
	}
	return p
}

// ── Phase 4: Statistics Sanity ──
// The derived numbers must be finite and within their defined ranges.

func validateStatistics(obs []domain.Observation) *phase {
	p := &phase{name: "Phase 4: Statistics Sanity"}

	r := analytics.Correlation(obs)
	if math.IsNaN(r) || r < -1 || r > 1 {
		p.errorf("correlation %v outside [-1, 1]", r)
	}

	trend := analytics.RecentTrend(obs, analytics.DefaultTrendYears)
	if math.IsNaN(trend) || math.IsInf(trend, 0) {
		p.errorf("recent trend is not finite: %v", trend)
	}

	rolling := analytics.RollingMean(domain.Anomalies(obs), analytics.DefaultRollingWindow, analytics.DefaultRollingMinPeriods)
	if len(rolling) != len(obs) {
		p.errorf("rolling mean length %d does not match %d observations", len(rolling), len(obs))
	}
	for i, v := range rolling {
		if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
			p.errorf("rolling mean position %d is not finite", i)
		}
	}

	for _, year := range []int{2030, 2050} {
		pred := analytics.Predict(obs, year)
		if math.IsNaN(pred) || math.IsInf(pred, 0) {
			p.errorf("prediction for %d is not finite: %v", year, pred)
		}
	}
	return p
}
