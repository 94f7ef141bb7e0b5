package memstore

import (
	"context"
	"sort"
	"sync"

	"example.com/gamification/internal/achievement"
)

// ProgressStore is an in-memory achievement.Store. The sticky-unlock merge
// runs under the mutex, mirroring the atomic upsert the Postgres store does
// in SQL.
type ProgressStore struct {
	mu      sync.RWMutex
	records map[string]map[string]achievement.ProgressRecord

	// FailUpsertFor injects a write failure for specific achievement IDs.
	FailUpsertFor map[string]error
	ListErr       error
}

var _ achievement.Store = (*ProgressStore)(nil)

// NewProgressStore constructs an empty ProgressStore.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{records: make(map[string]map[string]achievement.ProgressRecord)}
}

// List implements achievement.Store.
func (s *ProgressStore) List(ctx context.Context, userID string) ([]achievement.ProgressRecord, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := s.records[userID]
	out := make([]achievement.ProgressRecord, 0, len(byID))
	for _, rec := range byID {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AchievementID < out[j].AchievementID })
	return out, nil
}

// Upsert implements achievement.Store. An already-stored unlock timestamp is
// never overwritten.
func (s *ProgressStore) Upsert(ctx context.Context, userID string, record achievement.ProgressRecord) error {
	if err := s.FailUpsertFor[record.AchievementID]; err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	byID := s.records[userID]
	if byID == nil {
		byID = make(map[string]achievement.ProgressRecord)
		s.records[userID] = byID
	}
	if existing, ok := byID[record.AchievementID]; ok && existing.UnlockedAt != nil {
		record.UnlockedAt = existing.UnlockedAt
	}
	byID[record.AchievementID] = record
	return nil
}

// CompletedCount implements achievement.Store.
func (s *ProgressStore) CompletedCount(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, rec := range s.records[userID] {
		if rec.UnlockedAt != nil {
			count++
		}
	}
	return count, nil
}

// Users implements achievement.Store.
func (s *ProgressStore) Users(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]string, 0, len(s.records))
	for userID := range s.records {
		users = append(users, userID)
	}
	sort.Strings(users)
	return users, nil
}
