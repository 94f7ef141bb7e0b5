// Package postgres provides pgx-backed stores for the gamification service.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/gamification/internal/metrics"
)

// ActivityStore reads raw activity history for metrics aggregation.
type ActivityStore struct {
	pool *pgxpool.Pool
}

// NewActivityStore constructs an ActivityStore.
func NewActivityStore(pool *pgxpool.Pool) *ActivityStore {
	return &ActivityStore{pool: pool}
}

var _ metrics.ActivityStore = (*ActivityStore)(nil)

// CompletedSessions implements metrics.ActivityStore.
func (s *ActivityStore) CompletedSessions(ctx context.Context, userID string) ([]metrics.Session, error) {
	const query = `SELECT session_id, user_id, started_at, duration_min
        FROM workout_sessions WHERE user_id=$1 AND completed ORDER BY started_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []metrics.Session
	for rows.Next() {
		var sess metrics.Session
		if err := rows.Scan(&sess.ID, &sess.UserID, &sess.StartedAt, &sess.DurationMin); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// SetActuals implements metrics.ActivityStore.
func (s *ActivityStore) SetActuals(ctx context.Context, userID string) ([]metrics.SetActual, error) {
	const query = `SELECT exercise_name, reps, weight FROM session_sets WHERE user_id=$1`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []metrics.SetActual
	for rows.Next() {
		var set metrics.SetActual
		if err := rows.Scan(&set.ExerciseName, &set.Reps, &set.Weight); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

// SocialCounters implements metrics.ActivityStore.
func (s *ActivityStore) SocialCounters(ctx context.Context, userID string) (metrics.SocialCounters, error) {
	const query = `SELECT
        (SELECT count(*) FROM posts WHERE user_id=$1),
        (SELECT count(*) FROM comments WHERE user_id=$1),
        (SELECT count(*) FROM stories WHERE user_id=$1),
        (SELECT count(*) FROM follows WHERE followee_id=$1),
        (SELECT count(*) FROM follows WHERE follower_id=$1),
        (SELECT coalesce(max(likes), 0) FROM posts WHERE user_id=$1),
        (SELECT count(*) FROM reactions WHERE user_id=$1),
        (SELECT count(*) FROM comments WHERE user_id=$1 AND emoji_only)`

	var counters metrics.SocialCounters
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&counters.Posts,
		&counters.Comments,
		&counters.Stories,
		&counters.Followers,
		&counters.Following,
		&counters.MaxPostLikes,
		&counters.Reactions,
		&counters.EmojiComments,
	)
	if err != nil {
		return metrics.SocialCounters{}, err
	}
	return counters, nil
}

// PersonalRecordCount implements metrics.ActivityStore.
func (s *ActivityStore) PersonalRecordCount(ctx context.Context, userID string) (int, error) {
	return s.count(ctx, `SELECT count(*) FROM personal_records WHERE user_id=$1`, userID)
}

// TemplateCount implements metrics.ActivityStore.
func (s *ActivityStore) TemplateCount(ctx context.Context, userID string) (int, error) {
	return s.count(ctx, `SELECT count(*) FROM workout_templates WHERE user_id=$1`, userID)
}

// ExperienceLevel implements metrics.ActivityStore. An unknown user reads as
// an empty level, not an error.
func (s *ActivityStore) ExperienceLevel(ctx context.Context, userID string) (string, error) {
	const query = `SELECT experience_level FROM users WHERE user_id=$1`

	var level string
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&level); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return level, nil
}

func (s *ActivityStore) count(ctx context.Context, query, userID string) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
