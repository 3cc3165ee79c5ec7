package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Big-Happy-Holding-Company/sfmc-sub001/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func records(ids ...string) []domain.PuzzleRecord {
	out := make([]domain.PuzzleRecord, len(ids))
	for i, id := range ids {
		out[i] = domain.PuzzleRecord{ID: id}
	}
	return out
}

func TestGetOrFetchCachesWithinTTL(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := New(5*time.Minute, WithClock(clock.Now))

	var calls int
	fetch := func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		calls++
		return records("ARC-TR-007bbfb7"), nil
	}

	first, err := c.GetOrFetch(context.Background(), "training-batch1", fetch)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, calls)

	clock.Advance(4 * time.Minute)
	second, err := c.GetOrFetch(context.Background(), "training-batch1", fetch)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls, "fresh hit must not refetch")
}

func TestGetOrFetchRefetchesAfterTTL(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := New(5*time.Minute, WithClock(clock.Now))

	var calls int
	fetch := func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		calls++
		return records("11852cab"), nil
	}

	_, err := c.GetOrFetch(context.Background(), "k", fetch)
	require.NoError(t, err)
	clock.Advance(5 * time.Minute)
	_, err = c.GetOrFetch(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "entry at exactly TTL age is stale")
}

func TestGetOrFetchPropagatesErrors(t *testing.T) {
	c := New(time.Minute)
	boom := errors.New("backend down")

	_, err := c.GetOrFetch(context.Background(), "k", func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len(), "failed fetches are not stored")

	// A later successful fetch fills the entry normally.
	got, err := c.GetOrFetch(context.Background(), "k", func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		return records("007bbfb7"), nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClear(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	c := New(time.Hour, WithClock(clock.Now))

	var calls int
	fetch := func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		calls++
		return nil, nil
	}
	_, err := c.GetOrFetch(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())

	_, err = c.GetOrFetch(context.Background(), "k", fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestConcurrentMissesCollapseToOneFetch(t *testing.T) {
	c := New(time.Minute)

	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		calls.Add(1)
		<-release
		return records("007bbfb7"), nil
	}

	const n = 8
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			got, err := c.GetOrFetch(context.Background(), "k", fetch)
			assert.NoError(t, err)
			assert.Len(t, got, 1)
		}()
	}
	// Let the goroutines pile onto the flight group before releasing.
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "concurrent misses on one key share a fetch")
}

func TestDistinctKeysDoNotShareEntries(t *testing.T) {
	c := New(time.Minute)
	a, err := c.GetOrFetch(context.Background(), "a", func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		return records("007bbfb7"), nil
	})
	require.NoError(t, err)
	b, err := c.GetOrFetch(context.Background(), "b", func(ctx context.Context) ([]domain.PuzzleRecord, error) {
		return records("11852cab"), nil
	})
	require.NoError(t, err)
	assert.NotEqual(t, a[0].ID, b[0].ID)
	assert.Equal(t, 2, c.Len())
}
