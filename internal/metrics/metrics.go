// Package metrics derives a per-user activity snapshot from raw history.
package metrics

import (
	"context"
	"time"
)

// Session is one completed workout session.
type Session struct {
	ID          string
	UserID      string
	StartedAt   time.Time
	DurationMin int
}

// SetActual is one performed set with its recorded actuals.
type SetActual struct {
	ExerciseName string
	Reps         int
	Weight       float64
}

// SocialCounters bundles the social-graph counts for one user.
type SocialCounters struct {
	Posts         int
	Comments      int
	Stories       int
	Followers     int
	Following     int
	MaxPostLikes  int
	Reactions     int
	EmojiComments int
}

// ActivityStore is the event-store query surface the aggregator reads from.
type ActivityStore interface {
	CompletedSessions(ctx context.Context, userID string) ([]Session, error)
	SetActuals(ctx context.Context, userID string) ([]SetActual, error)
	SocialCounters(ctx context.Context, userID string) (SocialCounters, error)
	PersonalRecordCount(ctx context.Context, userID string) (int, error)
	TemplateCount(ctx context.Context, userID string) (int, error)
	ExperienceLevel(ctx context.Context, userID string) (string, error)
}

// UserMetrics is an ephemeral snapshot recomputed on every call. It carries
// no identity and is never persisted.
type UserMetrics struct {
	TotalWorkouts     int
	TotalVolume       float64
	TotalMinutes      int
	CurrentStreak     int
	UniqueExercises   int
	PersonalRecords   int
	TemplatesCreated  int
	EarlyBirdWorkouts int
	NightOwlWorkouts  int
	WeekendWorkouts   int

	TotalPosts    int
	TotalComments int
	TotalStories  int
	Followers     int
	Following     int
	MaxPostLikes  int
	Reactions     int
	EmojiComments int

	CompletedAchievements int
	IsAdvanced            bool
}
