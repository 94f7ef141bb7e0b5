package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"example.com/gamification/internal/events"
)

// UnlockTopic carries achievement unlock announcements.
const UnlockTopic = "gamification.achievement.unlocked"

// KafkaPublisher writes unlock events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher constructs a publisher writing to UnlockTopic on the
// given brokers.
func NewKafkaPublisher(brokers []string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        UnlockTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

var _ Publisher = (*KafkaPublisher)(nil)

// PublishUnlock implements Publisher. Events for one user share a key so
// they stay ordered within a partition.
func (p *KafkaPublisher) PublishUnlock(ctx context.Context, event events.AchievementUnlocked) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode unlock event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte("achievement.unlocked")},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
