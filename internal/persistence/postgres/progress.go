package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/gamification/internal/achievement"
)

// ProgressStore persists achievement progress records. The sticky-unlock
// merge happens inside the upsert statement, so concurrent same-user
// evaluations cannot clear an unlock timestamp.
type ProgressStore struct {
	pool *pgxpool.Pool
}

// NewProgressStore constructs a ProgressStore.
func NewProgressStore(pool *pgxpool.Pool) *ProgressStore {
	return &ProgressStore{pool: pool}
}

var _ achievement.Store = (*ProgressStore)(nil)

// List implements achievement.Store.
func (s *ProgressStore) List(ctx context.Context, userID string) ([]achievement.ProgressRecord, error) {
	const query = `SELECT achievement_id, progress, unlocked_at
        FROM progress_records WHERE user_id=$1 ORDER BY achievement_id`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []achievement.ProgressRecord
	for rows.Next() {
		var rec achievement.ProgressRecord
		if err := rows.Scan(&rec.AchievementID, &rec.Progress, &rec.UnlockedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Upsert implements achievement.Store. COALESCE keeps an existing unlock
// timestamp over whatever the new record carries.
func (s *ProgressStore) Upsert(ctx context.Context, userID string, record achievement.ProgressRecord) error {
	const stmt = `INSERT INTO progress_records (user_id, achievement_id, progress, unlocked_at, updated_at)
        VALUES ($1, $2, $3, $4, now())
        ON CONFLICT (user_id, achievement_id) DO UPDATE SET
            progress = EXCLUDED.progress,
            unlocked_at = COALESCE(progress_records.unlocked_at, EXCLUDED.unlocked_at),
            updated_at = now()`

	_, err := s.pool.Exec(ctx, stmt, userID, record.AchievementID, record.Progress, record.UnlockedAt)
	return err
}

// CompletedCount implements achievement.Store.
func (s *ProgressStore) CompletedCount(ctx context.Context, userID string) (int, error) {
	const query = `SELECT count(*) FROM progress_records WHERE user_id=$1 AND unlocked_at IS NOT NULL`

	var count int
	if err := s.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Users implements achievement.Store.
func (s *ProgressStore) Users(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT user_id FROM progress_records ORDER BY user_id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, err
		}
		users = append(users, userID)
	}
	return users, rows.Err()
}
