package metrics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Hour boundaries for the time-of-day workout buckets.
const (
	earlyBirdBefore = 9
	nightOwlFrom    = 21
)

// CompletedCounter reports how many achievements a user has unlocked. It is
// satisfied by the achievement store.
type CompletedCounter interface {
	CompletedCount(ctx context.Context, userID string) (int, error)
}

// Aggregator computes UserMetrics snapshots. Aggregation is best-effort: a
// failing sub-query zeroes its own category and is reported in the joined
// error, but never aborts the snapshot.
type Aggregator struct {
	activities ActivityStore
	completed  CompletedCounter
	now        func() time.Time
}

// NewAggregator constructs an Aggregator. completed may be nil when no
// achievement store is wired (the count stays zero).
func NewAggregator(activities ActivityStore, completed CompletedCounter) *Aggregator {
	return &Aggregator{activities: activities, completed: completed, now: time.Now}
}

// Aggregate builds a fresh snapshot for the user. The returned UserMetrics
// is always usable; the error, when non-nil, joins the per-category
// failures that degraded to zero values.
func (a *Aggregator) Aggregate(ctx context.Context, userID string) (UserMetrics, error) {
	var m UserMetrics
	var failures []error

	sessions, err := a.activities.CompletedSessions(ctx, userID)
	if err != nil {
		failures = append(failures, fmt.Errorf("sessions: %w", err))
	} else {
		m.TotalWorkouts = len(sessions)
		now := a.now()
		for _, s := range sessions {
			m.TotalMinutes += s.DurationMin
			local := s.StartedAt.In(now.Location())
			if local.Hour() < earlyBirdBefore {
				m.EarlyBirdWorkouts++
			}
			if local.Hour() >= nightOwlFrom {
				m.NightOwlWorkouts++
			}
			if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
				m.WeekendWorkouts++
			}
		}
		m.CurrentStreak = streakFrom(sessions, now)
	}

	sets, err := a.activities.SetActuals(ctx, userID)
	if err != nil {
		failures = append(failures, fmt.Errorf("sets: %w", err))
	} else {
		unique := make(map[string]struct{}, len(sets))
		for _, s := range sets {
			m.TotalVolume += float64(s.Reps) * s.Weight
			name := strings.ToLower(strings.TrimSpace(s.ExerciseName))
			if name != "" {
				unique[name] = struct{}{}
			}
		}
		m.UniqueExercises = len(unique)
	}

	social, err := a.activities.SocialCounters(ctx, userID)
	if err != nil {
		failures = append(failures, fmt.Errorf("social: %w", err))
	} else {
		m.TotalPosts = social.Posts
		m.TotalComments = social.Comments
		m.TotalStories = social.Stories
		m.Followers = social.Followers
		m.Following = social.Following
		m.MaxPostLikes = social.MaxPostLikes
		m.Reactions = social.Reactions
		m.EmojiComments = social.EmojiComments
	}

	if count, err := a.activities.PersonalRecordCount(ctx, userID); err != nil {
		failures = append(failures, fmt.Errorf("personal records: %w", err))
	} else {
		m.PersonalRecords = count
	}

	if count, err := a.activities.TemplateCount(ctx, userID); err != nil {
		failures = append(failures, fmt.Errorf("templates: %w", err))
	} else {
		m.TemplatesCreated = count
	}

	if level, err := a.activities.ExperienceLevel(ctx, userID); err != nil {
		failures = append(failures, fmt.Errorf("experience level: %w", err))
	} else {
		m.IsAdvanced = strings.EqualFold(level, "Advanced")
	}

	if a.completed != nil {
		if count, err := a.completed.CompletedCount(ctx, userID); err != nil {
			failures = append(failures, fmt.Errorf("completed achievements: %w", err))
		} else {
			m.CompletedAchievements = count
		}
	}

	return m, errors.Join(failures...)
}

// streakFrom walks distinct workout dates backwards from now. The walk is
// anchored at now, not at the last workout: a most-recent session two or
// more days old yields a streak of zero.
func streakFrom(sessions []Session, now time.Time) int {
	seen := make(map[time.Time]struct{}, len(sessions))
	for _, s := range sessions {
		if s.StartedAt.IsZero() {
			continue
		}
		seen[dateOf(s.StartedAt.In(now.Location()))] = struct{}{}
	}
	if len(seen) == 0 {
		return 0
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	// The cursor advances to each matched date, so a run only continues
	// through same-day or adjacent-day entries. Dates {today, yesterday,
	// three days ago} therefore count 2: the walk stops at the gap.
	streak := 0
	cursor := dateOf(now)
	for _, d := range dates {
		if daysBetween(d, cursor) > 1 {
			break
		}
		streak++
		cursor = d
	}
	return streak
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
