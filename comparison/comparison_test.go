package comparison

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uniscope/uniscope-api/model"
	"github.com/uniscope/uniscope-api/utils/cache"
)

func testUniversity(id string, rating int, tuition float64, intl float64) model.University {
	return model.University{
		ID:                           id,
		Slug:                         "u-" + id,
		Name:                         "University " + id,
		Rating:                       rating,
		TuitionAnnualUSD:             tuition,
		InternationalStudentsPercent: intl,
	}
}

func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(cache.NewRedisCacheFromClient(client), StorageKey, 0)
}

func TestSelectorAddDedupAndCap(t *testing.T) {
	ctx := context.Background()
	sel, err := NewSelector(ctx, NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, sel.Add(ctx, testUniversity("1", 1, 50000, 20)))
	assert.ErrorIs(t, sel.Add(ctx, testUniversity("1", 1, 50000, 20)), ErrAlreadyAdded)

	require.NoError(t, sel.Add(ctx, testUniversity("2", 2, 40000, 25)))
	require.NoError(t, sel.Add(ctx, testUniversity("3", 3, 30000, 30)))
	require.NoError(t, sel.Add(ctx, testUniversity("4", 4, 20000, 35)))
	assert.ErrorIs(t, sel.Add(ctx, testUniversity("5", 5, 10000, 40)), ErrLimitReached)
	assert.Equal(t, MaxEntries, sel.Len())
}

func TestSelectorRemove(t *testing.T) {
	ctx := context.Background()
	sel, err := NewSelector(ctx, NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, sel.Add(ctx, testUniversity("1", 1, 50000, 20)))
	require.NoError(t, sel.Add(ctx, testUniversity("2", 2, 40000, 25)))

	require.NoError(t, sel.Remove(ctx, "1"))
	assert.False(t, sel.Contains("1"))
	assert.True(t, sel.Contains("2"))

	// Removing an absent id is a no-op.
	require.NoError(t, sel.Remove(ctx, "absent"))
	assert.Equal(t, 1, sel.Len())
}

func TestSelectorClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	sel, err := NewSelector(ctx, store)
	require.NoError(t, err)

	require.NoError(t, sel.Add(ctx, testUniversity("1", 1, 50000, 20)))
	require.NoError(t, sel.Clear(ctx))
	assert.Equal(t, 0, sel.Len())

	persisted, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestSelectorPersistsThroughRedis(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	sel, err := NewSelector(ctx, store)
	require.NoError(t, err)
	require.NoError(t, sel.Add(ctx, testUniversity("1", 1, 50000, 20)))
	require.NoError(t, sel.Add(ctx, testUniversity("2", 2, 40000, 25)))

	// A fresh selector over the same store sees the saved selection.
	rehydrated, err := NewSelector(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 2, rehydrated.Len())
	assert.True(t, rehydrated.Contains("1"))
	assert.True(t, rehydrated.Contains("2"))
}

func TestRedisStoreMissingKeyIsEmpty(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t)

	entries, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSelectorTruncatesOversizedPersistedSelection(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	oversized := []model.University{
		testUniversity("1", 1, 1, 1),
		testUniversity("2", 2, 2, 2),
		testUniversity("3", 3, 3, 3),
		testUniversity("4", 4, 4, 4),
		testUniversity("5", 5, 5, 5),
	}
	require.NoError(t, store.Save(ctx, oversized))

	sel, err := NewSelector(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, MaxEntries, sel.Len())
	assert.False(t, sel.Contains("5"))
}

func TestBestValues(t *testing.T) {
	ctx := context.Background()
	sel, err := NewSelector(ctx, NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, sel.Add(ctx, testUniversity("1", 5, 60000, 40)))
	require.NoError(t, sel.Add(ctx, testUniversity("2", 1, 55000, 20)))
	require.NoError(t, sel.Add(ctx, testUniversity("3", 30, 300, 25)))

	best := sel.BestValues()
	assert.Equal(t, "2", best.BestRankID)
	assert.Equal(t, "3", best.LowestTuitionID)
	assert.Equal(t, "1", best.HighestIntlID)
}

func TestBestValuesEmptySelection(t *testing.T) {
	ctx := context.Background()
	sel, err := NewSelector(ctx, NewMemoryStore())
	require.NoError(t, err)

	assert.Equal(t, BestValues{}, sel.BestValues())
}

func TestBestValuesTieGoesToEarlierEntry(t *testing.T) {
	ctx := context.Background()
	sel, err := NewSelector(ctx, NewMemoryStore())
	require.NoError(t, err)

	require.NoError(t, sel.Add(ctx, testUniversity("1", 5, 50000, 20)))
	require.NoError(t, sel.Add(ctx, testUniversity("2", 5, 50000, 20)))

	best := sel.BestValues()
	assert.Equal(t, "1", best.BestRankID)
	assert.Equal(t, "1", best.LowestTuitionID)
	assert.Equal(t, "1", best.HighestIntlID)
}

func TestNewClientKeyUsesFixedPrefix(t *testing.T) {
	key := NewClientKey()
	assert.Contains(t, key, StorageKey+":")
	assert.NotEqual(t, key, NewClientKey())
}
