// Command genmock generates a synthetic GISTEMP-style anomaly CSV for local
// development and offline testing. The series is deterministic (fixed warming
// trend, seasonal wiggle, seeded noise), and the tail of the final year is
// filled with the asterisk sentinel the way the live feed marks months not
// yet reported. It reshapes its own output through the actual domain package
// so the printed stats match real pipeline behavior.
//
// Usage:
//
//	go run ./cmd/genmock -out testdata/gistemp_mock.csv \
//	  -start-year 1880 -end-year 2025 -reported-months 9
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/climate-mood/internal/analytics"
	"github.com/couchcryptid/climate-mood/internal/domain"
)

// noiseSeed keeps the generated series reproducible across runs.
const noiseSeed = 1880

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the generated CSV")
	startYear := flag.Int("start-year", 1880, "first year in the table")
	endYear := flag.Int("end-year", 2025, "last year in the table")
	reportedMonths := flag.Int("reported-months", 9, "months reported for the final year (the rest read as missing)")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}
	if *startYear > *endYear {
		return fmt.Errorf("start-year %d is after end-year %d", *startYear, *endYear)
	}
	if *reportedMonths < 0 || *reportedMonths > domain.MonthsPerYear {
		return fmt.Errorf("reported-months must be between 0 and %d", domain.MonthsPerYear)
	}

	table := generate(*startYear, *endYear, *reportedMonths)

	if err := writeCSV(*out, table); err != nil {
		return fmt.Errorf("writing fixture: %w", err)
	}
	log.Printf("wrote fixture: %s (%d years)", *out, len(table.Rows))

	printStats(table)
	return nil
}

// generate builds the wide table. Anomalies follow the rough shape of the
// real record: slightly below baseline through the early decades, then an
// accelerating rise, with a small seasonal wiggle and seeded noise on top.
func generate(startYear, endYear, reportedMonths int) domain.RawTable {
	rng := rand.New(rand.NewSource(noiseSeed))

	var table domain.RawTable
	for year := startYear; year <= endYear; year++ {
		row := domain.YearRow{Year: year}
		for m := 0; m < domain.MonthsPerYear; m++ {
			if year == endYear && m >= reportedMonths {
				continue // trailing months of the final year are unreported
			}
			a := anomalyAt(year, m, rng)
			row.Anomalies[m] = &a
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func anomalyAt(year, month int, rng *rand.Rand) float64 {
	t := float64(year-1880) / 100.0
	trend := -0.2 + 0.45*t*t // quadratic warming, ~1.2°C by the 2020s
	seasonal := 0.05 * math.Sin(2*math.Pi*float64(month)/domain.MonthsPerYear)
	noise := rng.NormFloat64() * 0.1
	return round2(trend + seasonal + noise)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// writeCSV emits the GISTEMP file layout: a one-line title, the header with
// the twelve months plus the J-D annual aggregate, then one row per year.
// Missing cells carry the asterisk sentinel.
func writeCSV(path string, table domain.RawTable) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("Land-Ocean: Global Means\n")
	b.WriteString("Year," + strings.Join(domain.MonthColumns[:], ",") + ",J-D\n")

	for _, row := range table.Rows {
		b.WriteString(fmt.Sprintf("%d", row.Year))
		var sum float64
		complete := true
		for _, a := range row.Anomalies {
			if a == nil {
				b.WriteString(",*******")
				complete = false
				continue
			}
			sum += *a
			b.WriteString(fmt.Sprintf(",%.2f", *a))
		}
		// The annual aggregate is only published once every month is in.
		if complete {
			b.WriteString(fmt.Sprintf(",%.2f", sum/domain.MonthsPerYear))
		} else {
			b.WriteString(",*******")
		}
		b.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(b.String()), 0o600)
}

// printStats reshapes the generated table and reports the same derived
// numbers the dashboard would serve, as a sanity check on the fixture.
func printStats(table domain.RawTable) {
	obs := domain.Reshape(table)
	if len(obs) == 0 {
		log.Print("observations: 0")
		return
	}
	summary := analytics.Summarize(obs, analytics.DefaultTrendYears, []int{2030, 2050})

	counts := map[domain.Mood]int{}
	for _, o := range obs {
		counts[domain.MoodFor(o.Anomaly)]++
	}

	log.Printf("observations: %d (%d to %d)", len(obs), obs[0].Year, obs[len(obs)-1].Year)
	for _, mood := range domain.AllMoods() {
		log.Printf("  %-6s %d", mood, counts[mood])
	}
	log.Printf("trend: %+.3f °C/year, correlation: %.3f", summary.SlopePerYear, summary.Correlation)
	for _, p := range summary.Predictions {
		log.Printf("predicted %d: %+.2f °C", p.Year, p.Anomaly)
	}
}
