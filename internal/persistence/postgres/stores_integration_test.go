//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"example.com/gamification/internal/achievement"
	"example.com/gamification/internal/coins"
	"example.com/gamification/internal/planner"
)

func TestProgressStoreStickyUnlock(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	store := NewProgressStore(pool)
	unlockedAt := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, store.Upsert(ctx, "u1", achievement.ProgressRecord{
		AchievementID: "first_workout",
		Progress:      100,
		UnlockedAt:    &unlockedAt,
	}))

	// A later write with regressed progress and no unlock must not clear the
	// stored unlock timestamp.
	require.NoError(t, store.Upsert(ctx, "u1", achievement.ProgressRecord{
		AchievementID: "first_workout",
		Progress:      40,
	}))

	records, err := store.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 40.0, records[0].Progress)
	require.NotNil(t, records[0].UnlockedAt)
	require.WithinDuration(t, unlockedAt, *records[0].UnlockedAt, time.Second)

	count, err := store.CompletedCount(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	users, err := store.Users(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, users)
}

func TestWalletStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	store := NewWalletStore(pool)
	now := time.Now().UTC().Truncate(time.Second)

	wallet := coins.Wallet{
		Balance: 120,
		Boosts: []coins.Boost{{
			Type:       coins.BoostTypeDoubleCoins,
			StartTime:  now,
			EndTime:    now.Add(24 * time.Hour),
			Multiplier: 2,
		}},
		Savers: []coins.StreakSaver{{PurchasedAt: now}},
	}
	require.NoError(t, store.Save(ctx, "u1", wallet))

	loaded, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, 120, loaded.Balance)
	require.Len(t, loaded.Boosts, 1)
	require.Equal(t, coins.BoostTypeDoubleCoins, loaded.Boosts[0].Type)
	require.Len(t, loaded.Savers, 1)
	require.NotEmpty(t, loaded.Savers[0].ID)
	require.False(t, loaded.Savers[0].Used)
}

func TestWalletStoreMissingWalletIsEmpty(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	store := NewWalletStore(pool)

	wallet, err := store.Load(ctx, "nobody")
	require.NoError(t, err)
	require.Zero(t, wallet.Balance)
	require.Empty(t, wallet.Boosts)
	require.Empty(t, wallet.Savers)
}

func TestPlanStoreWritesAllDaysAtomically(t *testing.T) {
	ctx := context.Background()
	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	store := NewPlanStore(pool)

	plan := planner.GeneratedPlan{
		Days: []planner.WorkoutDay{
			{
				Label: "Day 1: Full Body A",
				Focus: "full body",
				Exercises: []planner.GeneratedExercise{
					{Name: "barbell squat", BodyPart: "upper legs", Target: "quads", Equipment: "barbell", Sets: 3, RepRange: "8-12", RestSeconds: 90},
					{Name: "barbell bench press", BodyPart: "chest", Target: "pectorals", Equipment: "barbell", Sets: 3, RepRange: "8-12", RestSeconds: 90},
				},
			},
			{
				Label: "Day 2: Full Body B",
				Focus: "full body",
				Exercises: []planner.GeneratedExercise{
					{Name: "deadlift", BodyPart: "back", Target: "spinal erectors", Equipment: "barbell", Sets: 3, RepRange: "8-12", RestSeconds: 90},
				},
			},
		},
	}

	ids, err := store.SavePlan(ctx, "u1", plan)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	var workoutCount, setCount int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM workouts WHERE user_id='u1'`).Scan(&workoutCount))
	require.Equal(t, 2, workoutCount)
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM workout_plan_sets`).Scan(&setCount))
	// 2 exercises * 3 sets on day one, 1 exercise * 3 sets on day two.
	require.Equal(t, 9, setCount)

	// set_order encodes exercise index * 100 + set index.
	var maxOrder int
	require.NoError(t, pool.QueryRow(ctx,
		`SELECT max(set_order) FROM workout_plan_sets WHERE workout_id=$1`, ids[0]).Scan(&maxOrder))
	require.Equal(t, 102, maxOrder)
}

func setupPostgres(t *testing.T, ctx context.Context) (*pgxpool.Pool, func()) {
	t.Helper()

	pg, err := postgrescontainer.RunContainer(ctx,
		postgrescontainer.WithDatabase("gamification"),
		postgrescontainer.WithUsername("platform"),
		postgrescontainer.WithPassword("platform"),
	)
	require.NoError(t, err)

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, Schema)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		_ = pg.Terminate(ctx)
	}
	return pool, cleanup
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}
