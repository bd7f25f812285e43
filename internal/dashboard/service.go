// Package dashboard orchestrates one render pass: load the cached dataset,
// reshape it, derive statistics, and build the view model. Every user
// interaction is one synchronous pass; there is no state between renders
// beyond the loader's cache and the readiness flag.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/climate-mood/internal/analytics"
	"github.com/couchcryptid/climate-mood/internal/domain"
	"github.com/couchcryptid/climate-mood/internal/observability"
	"github.com/couchcryptid/climate-mood/internal/view"
)

// Params are the statistic knobs for a service. Zero values take the
// analytics defaults (120-month window, 30 min periods, 10-year trend,
// 2030/2050 predictions).
type Params struct {
	RollingWindow     int
	RollingMinPeriods int
	TrendYears        int
	PredictionYears   []int
}

func (p Params) withDefaults() Params {
	if p.RollingWindow == 0 {
		p.RollingWindow = analytics.DefaultRollingWindow
	}
	if p.RollingMinPeriods == 0 {
		p.RollingMinPeriods = analytics.DefaultRollingMinPeriods
	}
	if p.TrendYears == 0 {
		p.TrendYears = analytics.DefaultTrendYears
	}
	if len(p.PredictionYears) == 0 {
		p.PredictionYears = []int{2030, 2050}
	}
	return p
}

// Service renders dashboard view models from the loaded dataset.
type Service struct {
	loader  domain.Loader
	params  Params
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates a dashboard service over the given loader.
func New(loader domain.Loader, params Params, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		loader:  loader,
		params:  params.withDefaults(),
		metrics: metrics,
		logger:  logger,
	}
}

// Render executes one full pass. A loader failure aborts the render with an
// error; there is no partial-data fallback.
func (s *Service) Render(ctx context.Context, filter view.Filter) (view.Model, error) {
	start := time.Now()

	table, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.Renders.WithLabelValues("error").Inc()
		return view.Model{}, fmt.Errorf("load dataset: %w", err)
	}

	obs := domain.Reshape(table)
	rolling := analytics.RollingMean(domain.Anomalies(obs), s.params.RollingWindow, s.params.RollingMinPeriods)
	summary := analytics.Summarize(obs, s.params.TrendYears, s.params.PredictionYears)
	model := view.Build(obs, rolling, summary, filter)

	s.metrics.Renders.WithLabelValues("success").Inc()
	s.metrics.RenderDuration.Observe(time.Since(start).Seconds())
	s.metrics.ObservationCount.Set(float64(len(obs)))
	if s.ready.CompareAndSwap(false, true) {
		s.metrics.ServiceReady.Set(1)
		s.logger.Info("first dataset load complete", "observations", len(obs))
	}

	s.logger.Debug("render pass complete",
		"observations", len(obs),
		"filtered", model.FilteredCount,
		"duration", time.Since(start),
	)
	return model, nil
}

// CheckReadiness returns nil once at least one render has completed with a
// successfully loaded dataset.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no dataset loaded yet")
	}
	return nil
}
