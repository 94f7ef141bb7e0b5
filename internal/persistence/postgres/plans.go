package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/gamification/internal/planner"
)

// PlanStore persists generated workout plans: one workout row per day, one
// row per individual set. The whole run is a single transaction, so a failed
// day rolls back every previously written day and no partial plan remains.
type PlanStore struct {
	pool *pgxpool.Pool
}

// NewPlanStore constructs a PlanStore.
func NewPlanStore(pool *pgxpool.Pool) *PlanStore {
	return &PlanStore{pool: pool}
}

var _ planner.PlanStore = (*PlanStore)(nil)

// SavePlan implements planner.PlanStore and returns the stored workout IDs.
func (s *PlanStore) SavePlan(ctx context.Context, userID string, plan planner.GeneratedPlan) ([]string, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	workoutIDs := make([]string, 0, len(plan.Days))

	for _, day := range plan.Days {
		workoutID := uuid.NewString()

		const insertWorkout = `INSERT INTO workouts (workout_id, user_id, label, focus, created_at)
            VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.Exec(ctx, insertWorkout, workoutID, userID, day.Label, day.Focus, now); err != nil {
			return nil, fmt.Errorf("insert workout %q: %w", day.Label, err)
		}

		for exerciseIdx, exercise := range day.Exercises {
			for setIdx := 0; setIdx < exercise.Sets; setIdx++ {
				setOrder := exerciseIdx*100 + setIdx

				const insertSet = `INSERT INTO workout_plan_sets
                    (workout_id, set_order, exercise_name, body_part, target, equipment, rep_range, rest_seconds, catalog_id)
                    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
				_, err := tx.Exec(ctx, insertSet,
					workoutID,
					setOrder,
					exercise.Name,
					exercise.BodyPart,
					exercise.Target,
					exercise.Equipment,
					exercise.RepRange,
					exercise.RestSeconds,
					nullIfEmpty(exercise.CatalogID),
				)
				if err != nil {
					return nil, fmt.Errorf("insert set %d of %q: %w", setOrder, exercise.Name, err)
				}
			}
		}
		workoutIDs = append(workoutIDs, workoutID)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return workoutIDs, nil
}

func nullIfEmpty(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
