// Package scheduler runs the nightly achievement sweep.
package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron"

	"example.com/gamification/internal/achievement"
)

// UserSource lists the users known to the progress store.
type UserSource interface {
	Users(ctx context.Context) ([]string, error)
}

// Sweeper periodically re-evaluates every known user so time-driven
// achievements (streaks in particular) decay without requiring a fresh
// activity event.
type Sweeper struct {
	engine *achievement.Engine
	users  UserSource
	cron   *cron.Cron
	logger *log.Logger
}

// NewSweeper constructs a Sweeper.
func NewSweeper(engine *achievement.Engine, users UserSource) *Sweeper {
	return &Sweeper{
		engine: engine,
		users:  users,
		cron:   cron.New(),
		logger: log.New(log.Writer(), "[sweeper] ", log.LstdFlags),
	}
}

// Start schedules the sweep with the given cron spec and begins running it.
func (s *Sweeper) Start(spec string) error {
	if err := s.cron.AddFunc(spec, func() { s.Sweep(context.Background()) }); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule. A sweep in flight finishes on its own.
func (s *Sweeper) Stop() {
	s.cron.Stop()
}

// Sweep evaluates all users once. Per-user failures are logged and the sweep
// moves on.
func (s *Sweeper) Sweep(ctx context.Context) {
	users, err := s.users.Users(ctx)
	if err != nil {
		s.logger.Printf("list users: %v", err)
		return
	}

	swept := 0
	for _, userID := range users {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.engine.EvaluateAll(ctx, userID); err != nil {
			s.logger.Printf("sweep user %s: %v", userID, err)
			continue
		}
		swept++
	}
	s.logger.Printf("sweep complete: %d/%d users", swept, len(users))
}
