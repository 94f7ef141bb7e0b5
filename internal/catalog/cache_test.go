package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	entries []Entry
	err     error
	calls   int
}

func (p *countingProvider) Entries(context.Context) ([]Entry, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.entries, nil
}

func TestCachedServesWithinTTL(t *testing.T) {
	upstream := &countingProvider{entries: []Entry{{ID: "1", Name: "squat"}}}
	cache := NewCached(upstream, time.Hour)

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	first, err := cache.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, upstream.calls)

	// A second read inside the TTL never touches upstream.
	now = now.Add(30 * time.Minute)
	second, err := cache.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, upstream.calls)

	// Past the TTL the next read refreshes.
	now = now.Add(31 * time.Minute)
	_, err = cache.Entries(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, upstream.calls)
}

func TestCachedServesStaleOnRefreshFailure(t *testing.T) {
	upstream := &countingProvider{entries: []Entry{{ID: "1", Name: "squat"}}}
	cache := NewCached(upstream, time.Hour)

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_, err := cache.Entries(context.Background())
	require.NoError(t, err)

	upstream.err = errors.New("upstream down")
	now = now.Add(2 * time.Hour)

	entries, err := cache.Entries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestCachedFailsWithoutAnyEntries(t *testing.T) {
	upstream := &countingProvider{err: errors.New("upstream down")}
	cache := NewCached(upstream, time.Hour)

	_, err := cache.Entries(context.Background())
	require.Error(t, err)
}

func TestInvalidateForcesRefresh(t *testing.T) {
	upstream := &countingProvider{entries: []Entry{{ID: "1", Name: "squat"}}}
	cache := NewCached(upstream, time.Hour)

	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_, err := cache.Entries(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, upstream.calls)

	cache.Invalidate()

	_, err = cache.Entries(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, upstream.calls)
}

func TestCachedReturnsCopies(t *testing.T) {
	upstream := &countingProvider{entries: []Entry{{ID: "1", Name: "squat"}}}
	cache := NewCached(upstream, time.Hour)

	first, err := cache.Entries(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := cache.Entries(context.Background())
	require.NoError(t, err)
	require.Equal(t, "squat", second[0].Name)
}
