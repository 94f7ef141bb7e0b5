package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"example.com/gamification/internal/achievement"
	"example.com/gamification/internal/coins"
	"example.com/gamification/internal/events"
)

// Event types the handler reacts to. Anything else is acknowledged and
// dropped.
const (
	EventSessionCompleted = "session.completed"
	EventActivityCreated  = "activity.created"
)

// Publisher emits achievement unlock events for downstream consumers.
type Publisher interface {
	PublishUnlock(ctx context.Context, event events.AchievementUnlocked) error
}

// EvaluationHandler re-evaluates a user's achievements whenever an activity
// event lands, credits unlock rewards, and publishes one unlock event per
// newly unlocked achievement.
type EvaluationHandler struct {
	engine    *achievement.Engine
	ledger    *coins.Ledger
	publisher Publisher
	logger    *log.Logger
	now       func() time.Time
}

// NewEvaluationHandler constructs an EvaluationHandler. The publisher may be
// nil; unlocks are then only persisted, not announced.
func NewEvaluationHandler(engine *achievement.Engine, ledger *coins.Ledger, publisher Publisher) *EvaluationHandler {
	return &EvaluationHandler{
		engine:    engine,
		ledger:    ledger,
		publisher: publisher,
		logger:    log.New(log.Writer(), "[evaluation] ", log.LstdFlags),
		now:       time.Now,
	}
}

// Handle implements Handler.
func (h *EvaluationHandler) Handle(ctx context.Context, msg Message) error {
	switch msg.EventType {
	case EventSessionCompleted, EventActivityCreated:
	default:
		return nil
	}

	var payload events.SessionCompleted
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("decode %s payload: %w", msg.EventType, err)
	}
	if payload.UserID == "" {
		return fmt.Errorf("%s event without user_id", msg.EventType)
	}

	unlocked, err := h.engine.EvaluateAll(ctx, payload.UserID)
	if err != nil {
		// Partial persistence failures are logged, not retried: the next
		// event re-evaluates from scratch anyway.
		h.logger.Printf("evaluation degraded for user %s: %v", payload.UserID, err)
	}
	if len(unlocked) == 0 {
		return nil
	}

	if reward := achievement.CoinRewardFor(unlocked); reward > 0 {
		if _, err := h.ledger.AddCoins(ctx, payload.UserID, reward); err != nil {
			h.logger.Printf("credit %d coins to user %s: %v", reward, payload.UserID, err)
		}
	}

	if h.publisher != nil {
		now := h.now()
		for _, id := range unlocked {
			def, ok := achievement.Lookup(id)
			if !ok {
				continue
			}
			event := events.AchievementUnlocked{
				UserID:        payload.UserID,
				AchievementID: id,
				Category:      def.Category,
				CoinReward:    def.CoinReward,
				UnlockedAt:    now,
			}
			if err := h.publisher.PublishUnlock(ctx, event); err != nil {
				h.logger.Printf("publish unlock %s for user %s: %v", id, payload.UserID, err)
			}
		}
	}
	return nil
}
