// Package gistemp fetches and parses the NASA GISTEMP anomaly CSV.
package gistemp

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/climate-mood/internal/domain"
	"github.com/couchcryptid/climate-mood/internal/observability"
)

// Client implements domain.Loader against the GISTEMP CSV endpoint.
type Client struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a GISTEMP CSV client.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Load downloads and parses the anomaly table. Transport failures, non-200
// responses, and a malformed header are fatal; individual unparseable cells
// degrade to missing values.
func (c *Client) Load(ctx context.Context) (domain.RawTable, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("http_error").Inc()
		return domain.RawTable{}, fmt.Errorf("fetch gistemp csv: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FetchRequests.WithLabelValues("http_error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return domain.RawTable{}, fmt.Errorf("gistemp responded %d: %s", resp.StatusCode, body)
	}

	table, err := ParseTable(resp.Body)
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues("parse_error").Inc()
		return domain.RawTable{}, err
	}

	c.metrics.FetchRequests.WithLabelValues("success").Inc()
	c.metrics.FetchDuration.Observe(time.Since(start).Seconds())
	c.logger.Info("gistemp table loaded", "years", len(table.Rows), "duration", time.Since(start))
	return table, nil
}

// ParseTable reads the GISTEMP CSV: a one-line title, a header row, then one
// row per year. Month columns are located by header name, so aggregate
// columns (J-D, DJF, ...) are ignored wherever they appear.
func ParseTable(r io.Reader) (domain.RawTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the title line has no commas

	records, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("read gistemp csv: %w", err)
	}
	if len(records) < 2 {
		return domain.RawTable{}, fmt.Errorf("gistemp csv too short: %d lines", len(records))
	}

	// Skip the title line before the header.
	header := records[1]
	yearIdx, monthIdx, err := mapColumns(header)
	if err != nil {
		return domain.RawTable{}, err
	}

	var table domain.RawTable
	for _, record := range records[2:] {
		year, err := strconv.Atoi(strings.TrimSpace(cell(record, yearIdx)))
		if err != nil {
			// Repeated header lines and footnotes appear in some GISS
			// exports; rows without a numeric year are not observations.
			continue
		}

		row := domain.YearRow{Year: year}
		for m, idx := range monthIdx {
			if v, ok := parseCell(cell(record, idx)); ok {
				row.Anomalies[m] = &v
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// mapColumns locates the Year column and the twelve month columns by name.
func mapColumns(header []string) (int, [domain.MonthsPerYear]int, error) {
	var monthIdx [domain.MonthsPerYear]int
	byName := make(map[string]int, len(header))
	for i, name := range header {
		byName[strings.TrimSpace(name)] = i
	}

	yearIdx, ok := byName["Year"]
	if !ok {
		return 0, monthIdx, fmt.Errorf("gistemp header missing Year column: %v", header)
	}
	for m, name := range domain.MonthColumns {
		idx, ok := byName[name]
		if !ok {
			return 0, monthIdx, fmt.Errorf("gistemp header missing %s column: %v", name, header)
		}
		monthIdx[m] = idx
	}
	return yearIdx, monthIdx, nil
}

// parseCell coerces one table cell to a float. The asterisk sentinel, empty
// cells, and unparseable values all read as missing.
func parseCell(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Trim(s, "*") == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}
