// Package events defines cross-service event payloads.
package events

import "time"

// SessionCompleted is emitted by the activity pipeline when a workout
// session finishes. It triggers achievement re-evaluation.
type SessionCompleted struct {
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	StartedAt   time.Time `json:"started_at"`
	DurationMin int       `json:"duration_min"`
	Source      string    `json:"source"`
	Version     string    `json:"version"`
}

// AchievementUnlocked is published for every achievement that transitions to
// unlocked during an evaluation run.
type AchievementUnlocked struct {
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	Category      string    `json:"category"`
	CoinReward    int       `json:"coin_reward"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
