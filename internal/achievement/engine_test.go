package achievement_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/gamification/internal/achievement"
	"example.com/gamification/internal/memstore"
	"example.com/gamification/internal/metrics"
)

func testEngine(t *testing.T, activities *memstore.ActivityStore) (*achievement.Engine, *memstore.ProgressStore) {
	t.Helper()
	if activities == nil {
		activities = &memstore.ActivityStore{}
	}
	store := memstore.NewProgressStore()
	engine := achievement.NewEngine(store, metrics.NewAggregator(activities, store))
	return engine, store
}

func recordByID(t *testing.T, records []achievement.ProgressRecord, id string) achievement.ProgressRecord {
	t.Helper()
	for _, rec := range records {
		if rec.AchievementID == id {
			return rec
		}
	}
	t.Fatalf("record %s not found", id)
	return achievement.ProgressRecord{}
}

func TestEvaluateAllZeroHistory(t *testing.T) {
	engine, store := testEngine(t, nil)

	unlocked, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, unlocked)

	records, err := store.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, records, len(achievement.Catalog()))
	for _, rec := range records {
		require.Zerof(t, rec.Progress, "achievement %s", rec.AchievementID)
		require.Nil(t, rec.UnlockedAt)
	}
}

func TestEvaluateAllVolumeProgress(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sets: []metrics.SetActual{
			// 50,000 kg of volume: halfway to volume_100k.
			{ExerciseName: "deadlift", Reps: 100, Weight: 500},
		},
	}
	engine, store := testEngine(t, activities)

	_, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)

	records, err := store.List(context.Background(), "u1")
	require.NoError(t, err)

	require.Equal(t, 100.0, recordByID(t, records, "volume_10k").Progress)
	require.Equal(t, 50.0, recordByID(t, records, "volume_100k").Progress)
	require.Equal(t, 10.0, recordByID(t, records, "volume_500k").Progress)
}

func TestEvaluateAllClampsProgress(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sets: []metrics.SetActual{
			// 150,000 kg: past the 100k target but progress caps at 100.
			{ExerciseName: "deadlift", Reps: 300, Weight: 500},
		},
	}
	engine, store := testEngine(t, activities)

	unlocked, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Contains(t, unlocked, "volume_100k")

	records, err := store.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, 100.0, recordByID(t, records, "volume_100k").Progress)
}

func TestEvaluateAllStickyUnlockOnRegression(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 30},
		},
	}
	engine, store := testEngine(t, activities)

	unlocked, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Contains(t, unlocked, "first_workout")

	// History disappears; the unlock must survive the regressed progress.
	activities.Sessions = nil

	unlocked, err = engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, unlocked)

	records, err := store.List(context.Background(), "u1")
	require.NoError(t, err)
	rec := recordByID(t, records, "first_workout")
	require.Zero(t, rec.Progress)
	require.NotNil(t, rec.UnlockedAt)
}

func TestEvaluateAllIsIdempotent(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 30},
		},
	}
	engine, _ := testEngine(t, activities)

	first, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Empty(t, second)
}

func TestEvaluateAllIsolatesRecordFailures(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 30},
		},
	}
	store := memstore.NewProgressStore()
	store.FailUpsertFor = map[string]error{"workouts_10": errors.New("write failed")}
	engine := achievement.NewEngine(store, metrics.NewAggregator(activities, store))

	unlocked, err := engine.EvaluateAll(context.Background(), "u1")
	require.Error(t, err)
	require.Contains(t, unlocked, "first_workout")

	records, listErr := store.List(context.Background(), "u1")
	require.NoError(t, listErr)
	// Every record but the injected failure was written.
	require.Len(t, records, len(achievement.Catalog())-1)
}

func TestEvaluateAllRunsOnDegradedMetrics(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 30},
		},
		SetsErr: errors.New("sets unavailable"),
	}
	engine, _ := testEngine(t, activities)

	// The degraded volume category zeroes out but the evaluation proceeds
	// and still unlocks from the healthy categories.
	unlocked, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)
	require.Contains(t, unlocked, "first_workout")
}

func TestInitializeSeedsWithoutClearingUnlocks(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 30},
		},
	}
	engine, store := testEngine(t, activities)

	_, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)

	require.NoError(t, engine.Initialize(context.Background(), "u1"))

	records, err := store.List(context.Background(), "u1")
	require.NoError(t, err)
	rec := recordByID(t, records, "first_workout")
	require.Zero(t, rec.Progress)
	require.NotNil(t, rec.UnlockedAt)
}

func TestStatsFor(t *testing.T) {
	activities := &memstore.ActivityStore{
		Sessions: []metrics.Session{
			{ID: "s1", UserID: "u1", StartedAt: time.Now().Add(-time.Hour), DurationMin: 30},
		},
	}
	engine, _ := testEngine(t, activities)

	_, err := engine.EvaluateAll(context.Background(), "u1")
	require.NoError(t, err)

	stats, err := engine.StatsFor(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, len(achievement.Catalog()), stats.Total)
	require.Equal(t, 1, stats.Completed)
	require.Greater(t, stats.InProgress, 0)
	require.InDelta(t, 100.0/float64(len(achievement.Catalog())), stats.CompletionPercentage, 0.01)
}

func TestMergeStickyUnlock(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	old := &achievement.ProgressRecord{AchievementID: "first_workout", Progress: 100, UnlockedAt: &earlier}
	merged := achievement.Merge(old, "first_workout", 30, now)
	require.Equal(t, 30.0, merged.Progress)
	require.Equal(t, &earlier, merged.UnlockedAt)

	fresh := achievement.Merge(nil, "first_workout", 100, now)
	require.NotNil(t, fresh.UnlockedAt)
	require.Equal(t, now, *fresh.UnlockedAt)

	partial := achievement.Merge(nil, "first_workout", 99.9, now)
	require.Nil(t, partial.UnlockedAt)
}

func TestCoinRewardFor(t *testing.T) {
	require.Equal(t, 0, achievement.CoinRewardFor(nil))
	require.Equal(t, 25, achievement.CoinRewardFor([]string{"first_workout"}))
	require.Equal(t, 75, achievement.CoinRewardFor([]string{"first_workout", "workouts_10"}))
	require.Equal(t, 25, achievement.CoinRewardFor([]string{"first_workout", "unknown_id"}))
}
