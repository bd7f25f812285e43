package gistemp

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/climate-mood/internal/domain"
)

// --- mocks for cache tests ---

type countingLoader struct {
	calls   atomic.Int64
	table   domain.RawTable
	err     error
	release chan struct{} // when set, Load blocks until closed
}

func (m *countingLoader) Load(_ context.Context) (domain.RawTable, error) {
	m.calls.Add(1)
	if m.release != nil {
		<-m.release
	}
	if m.err != nil {
		return domain.RawTable{}, m.err
	}
	return m.table, nil
}

func tableWithYear(year int) domain.RawTable {
	a := 0.5
	return domain.RawTable{Rows: []domain.YearRow{
		{Year: year, Anomalies: [domain.MonthsPerYear]*float64{&a}},
	}}
}

// --- CachedLoader tests ---

func TestCachedLoader_HitWithinTTL(t *testing.T) {
	inner := &countingLoader{table: tableWithYear(2000)}
	clock := clockwork.NewFakeClock()
	cached := NewCachedLoader(inner, time.Hour, clock, testMetrics())

	t1, err := cached.Load(context.Background())
	require.NoError(t, err)
	t2, err := cached.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, t1, t2)
	assert.Equal(t, int64(1), inner.calls.Load(), "should only fetch upstream once")
}

func TestCachedLoader_RefreshAfterExpiry(t *testing.T) {
	inner := &countingLoader{table: tableWithYear(2000)}
	clock := clockwork.NewFakeClock()
	cached := NewCachedLoader(inner, time.Hour, clock, testMetrics())

	_, err := cached.Load(context.Background())
	require.NoError(t, err)

	// Still fresh one minute before expiry.
	clock.Advance(59 * time.Minute)
	_, err = cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), inner.calls.Load())

	// TTL boundary is inclusive: exactly one hour old means stale.
	inner.table = tableWithYear(2001)
	clock.Advance(time.Minute)
	table, err := cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), inner.calls.Load())
	assert.Equal(t, 2001, table.Rows[0].Year)
}

func TestCachedLoader_FailedFetchNotCached(t *testing.T) {
	inner := &countingLoader{err: errors.New("gistemp unreachable")}
	clock := clockwork.NewFakeClock()
	cached := NewCachedLoader(inner, time.Hour, clock, testMetrics())

	_, err := cached.Load(context.Background())
	require.Error(t, err)

	// The failure must not satisfy later lookups.
	inner.err = nil
	inner.table = tableWithYear(2000)
	table, err := cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2000, table.Rows[0].Year)
	assert.Equal(t, int64(2), inner.calls.Load())
}

func TestCachedLoader_ConcurrentCallersShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	inner := &countingLoader{table: tableWithYear(2000), release: release}
	cached := NewCachedLoader(inner, time.Hour, clockwork.NewFakeClock(), testMetrics())

	const callers = 8
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = cached.Load(context.Background())
		}(i)
	}

	// Let the goroutines pile up on the in-flight fetch, then release it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "caller %d", i)
	}
	assert.LessOrEqual(t, inner.calls.Load(), int64(2),
		"concurrent callers must not each trigger an upstream fetch")
}

func TestCachedLoader_NilClockUsesRealTime(t *testing.T) {
	inner := &countingLoader{table: tableWithYear(2000)}
	cached := NewCachedLoader(inner, time.Hour, nil, testMetrics())

	_, err := cached.Load(context.Background())
	require.NoError(t, err)
	_, err = cached.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), inner.calls.Load())
}
