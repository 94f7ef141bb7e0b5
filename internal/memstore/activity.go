// Package memstore provides in-memory store implementations for local
// development and tests.
package memstore

import (
	"context"

	"example.com/gamification/internal/metrics"
)

// ActivityStore is a fixture-backed metrics.ActivityStore. Each category can
// be failure-injected independently to exercise best-effort aggregation.
type ActivityStore struct {
	Sessions []metrics.Session
	Sets     []metrics.SetActual
	Social   metrics.SocialCounters
	PRCount  int
	Tmpl     int
	Level    string

	SessionsErr error
	SetsErr     error
	SocialErr   error
	PRErr       error
	TmplErr     error
	LevelErr    error
}

var _ metrics.ActivityStore = (*ActivityStore)(nil)

// CompletedSessions implements metrics.ActivityStore.
func (s *ActivityStore) CompletedSessions(ctx context.Context, userID string) ([]metrics.Session, error) {
	if s.SessionsErr != nil {
		return nil, s.SessionsErr
	}
	out := make([]metrics.Session, 0, len(s.Sessions))
	for _, sess := range s.Sessions {
		if sess.UserID == "" || sess.UserID == userID {
			out = append(out, sess)
		}
	}
	return out, nil
}

// SetActuals implements metrics.ActivityStore.
func (s *ActivityStore) SetActuals(ctx context.Context, userID string) ([]metrics.SetActual, error) {
	if s.SetsErr != nil {
		return nil, s.SetsErr
	}
	out := make([]metrics.SetActual, len(s.Sets))
	copy(out, s.Sets)
	return out, nil
}

// SocialCounters implements metrics.ActivityStore.
func (s *ActivityStore) SocialCounters(ctx context.Context, userID string) (metrics.SocialCounters, error) {
	if s.SocialErr != nil {
		return metrics.SocialCounters{}, s.SocialErr
	}
	return s.Social, nil
}

// PersonalRecordCount implements metrics.ActivityStore.
func (s *ActivityStore) PersonalRecordCount(ctx context.Context, userID string) (int, error) {
	if s.PRErr != nil {
		return 0, s.PRErr
	}
	return s.PRCount, nil
}

// TemplateCount implements metrics.ActivityStore.
func (s *ActivityStore) TemplateCount(ctx context.Context, userID string) (int, error) {
	if s.TmplErr != nil {
		return 0, s.TmplErr
	}
	return s.Tmpl, nil
}

// ExperienceLevel implements metrics.ActivityStore.
func (s *ActivityStore) ExperienceLevel(ctx context.Context, userID string) (string, error) {
	if s.LevelErr != nil {
		return "", s.LevelErr
	}
	return s.Level, nil
}
