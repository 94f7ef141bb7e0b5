package achievement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"example.com/gamification/internal/metrics"
	"example.com/gamification/internal/observability"
)

// ProgressRecord is the persisted per-user evaluation state for one
// achievement. UnlockedAt, once set, is never cleared: displayed progress
// may later drop below 100 while the unlock stands.
type ProgressRecord struct {
	AchievementID string     `json:"achievement_id"`
	Progress      float64    `json:"progress"`
	UnlockedAt    *time.Time `json:"unlocked_at,omitempty"`
}

// Unlocked reports whether the record carries an unlock timestamp.
func (r ProgressRecord) Unlocked() bool { return r.UnlockedAt != nil }

// Merge applies the sticky-unlock rule: an existing unlock timestamp always
// wins; otherwise a progress of 100 stamps the unlock at now. This must stay
// an explicit merge, a blind overwrite would clear unlocks on regression.
func Merge(old *ProgressRecord, id string, progress float64, now time.Time) ProgressRecord {
	merged := ProgressRecord{AchievementID: id, Progress: progress}
	switch {
	case old != nil && old.UnlockedAt != nil:
		merged.UnlockedAt = old.UnlockedAt
	case progress >= 100:
		ts := now
		merged.UnlockedAt = &ts
	}
	return merged
}

// Store persists progress records. Upsert must apply Merge semantics
// atomically (Postgres does it in SQL, the memory store under its mutex) so
// concurrent same-user evaluations cannot lose an unlock.
type Store interface {
	List(ctx context.Context, userID string) ([]ProgressRecord, error)
	Upsert(ctx context.Context, userID string, record ProgressRecord) error
	CompletedCount(ctx context.Context, userID string) (int, error)
	Users(ctx context.Context) ([]string, error)
}

// Stats summarises a user's stored records.
type Stats struct {
	Total                int     `json:"total"`
	Completed            int     `json:"completed"`
	InProgress           int     `json:"in_progress"`
	CompletionPercentage float64 `json:"completion_percentage"`
}

// Engine evaluates the full definitions catalog against fresh metrics.
type Engine struct {
	store      Store
	aggregator *metrics.Aggregator
	defs       []Definition
	now        func() time.Time
	logger     *log.Logger
}

// NewEngine constructs an Engine over the default catalog.
func NewEngine(store Store, aggregator *metrics.Aggregator) *Engine {
	return &Engine{
		store:      store,
		aggregator: aggregator,
		defs:       Catalog(),
		now:        time.Now,
		logger:     log.Default(),
	}
}

// EvaluateAll recomputes every achievement for the user from one metrics
// snapshot and persists the merged records. It returns the IDs that
// transitioned to unlocked in this call; with unchanged metrics a second
// call returns none. A single record's write failure is collected and does
// not block the remaining records.
func (e *Engine) EvaluateAll(ctx context.Context, userID string) ([]string, error) {
	snapshot, err := e.aggregator.Aggregate(ctx, userID)
	if err != nil {
		// Best-effort snapshot: the degraded categories are zeroed, the
		// evaluation still runs.
		e.logger.Printf("metrics degraded for user %s: %v", userID, err)
	}

	stored, err := e.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress records: %w", err)
	}
	existing := make(map[string]ProgressRecord, len(stored))
	for _, rec := range stored {
		existing[rec.AchievementID] = rec
	}

	now := e.now()
	var newlyUnlocked []string
	var failures []error
	for _, def := range e.defs {
		progress := clamp(def.Progress(snapshot))

		var old *ProgressRecord
		if rec, ok := existing[def.ID]; ok {
			old = &rec
		}
		merged := Merge(old, def.ID, progress, now)

		if err := e.store.Upsert(ctx, userID, merged); err != nil {
			failures = append(failures, fmt.Errorf("upsert %s: %w", def.ID, err))
			continue
		}
		if merged.Unlocked() && (old == nil || !old.Unlocked()) {
			newlyUnlocked = append(newlyUnlocked, def.ID)
			observability.RecordAchievementUnlocked(def.Category, now)
		}
	}

	observability.RecordEvaluation()
	return newlyUnlocked, errors.Join(failures...)
}

// Initialize seeds every definition at progress 0. Callers must guarantee a
// single run per user; re-running overwrites progress but keeps unlocks via
// the store's merge semantics.
func (e *Engine) Initialize(ctx context.Context, userID string) error {
	var failures []error
	for _, def := range e.defs {
		rec := ProgressRecord{AchievementID: def.ID, Progress: 0}
		if err := e.store.Upsert(ctx, userID, rec); err != nil {
			failures = append(failures, fmt.Errorf("seed %s: %w", def.ID, err))
		}
	}
	return errors.Join(failures...)
}

// Progress returns the stored records for the user.
func (e *Engine) Progress(ctx context.Context, userID string) ([]ProgressRecord, error) {
	return e.store.List(ctx, userID)
}

// StatsFor derives summary stats from the stored records.
func (e *Engine) StatsFor(ctx context.Context, userID string) (Stats, error) {
	records, err := e.store.List(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{Total: len(e.defs)}
	for _, rec := range records {
		if rec.Unlocked() {
			stats.Completed++
		} else if rec.Progress > 0 {
			stats.InProgress++
		}
	}
	if stats.Total > 0 {
		stats.CompletionPercentage = math.Round(float64(stats.Completed)/float64(stats.Total)*10000) / 100
	}
	return stats, nil
}

// CoinRewardFor sums the coin rewards for the given achievement IDs.
func CoinRewardFor(ids []string) int {
	total := 0
	for _, id := range ids {
		if def, ok := Lookup(id); ok {
			total += def.CoinReward
		}
	}
	return total
}

func clamp(progress float64) float64 {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
