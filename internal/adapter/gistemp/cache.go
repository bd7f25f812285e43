package gistemp

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/couchcryptid/climate-mood/internal/domain"
	"github.com/couchcryptid/climate-mood/internal/observability"
)

// CachedLoader wraps a domain.Loader with time-to-live memoization. Within
// the TTL every caller receives the cached table; after expiry the next
// lookup repopulates it. Concurrent callers of an expired cache share one
// upstream fetch via singleflight. There is no explicit invalidation API,
// and a failed fetch is never cached.
type CachedLoader struct {
	inner   domain.Loader
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
	group   singleflight.Group

	mu        sync.RWMutex
	table     domain.RawTable
	fetchedAt time.Time
	populated bool
}

// NewCachedLoader creates a TTL cache decorator around a loader. Pass a nil
// clock to use real time; tests inject a fake for deterministic expiry.
func NewCachedLoader(inner domain.Loader, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedLoader {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedLoader{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}
}

// Load returns the cached table when fresh, otherwise fetches upstream.
func (c *CachedLoader) Load(ctx context.Context) (domain.RawTable, error) {
	c.mu.RLock()
	if !c.needsRefresh(c.clock.Now()) {
		table := c.table
		c.mu.RUnlock()
		c.metrics.CacheLookups.WithLabelValues("hit").Inc()
		return table, nil
	}
	c.mu.RUnlock()
	c.metrics.CacheLookups.WithLabelValues("miss").Inc()

	v, err, _ := c.group.Do("gistemp", func() (any, error) {
		// Another flight may have repopulated while this caller waited.
		c.mu.RLock()
		if !c.needsRefresh(c.clock.Now()) {
			table := c.table
			c.mu.RUnlock()
			return table, nil
		}
		c.mu.RUnlock()

		table, err := c.inner.Load(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.table = table
		c.fetchedAt = c.clock.Now()
		c.populated = true
		c.mu.Unlock()
		return table, nil
	})
	if err != nil {
		return domain.RawTable{}, err
	}
	return v.(domain.RawTable), nil
}

// needsRefresh reports whether the cached value is absent or older than the
// TTL. Callers must hold at least a read lock.
func (c *CachedLoader) needsRefresh(now time.Time) bool {
	return !c.populated || now.Sub(c.fetchedAt) >= c.ttl
}
