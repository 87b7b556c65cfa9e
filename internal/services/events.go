package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/warblerhq/warbler/internal/logger"
)

// Event types published to Kafka.
const (
	EventMessageCreated = "message_created"
	EventMessageDeleted = "message_deleted"
	EventUserFollowed   = "user_followed"
	EventUserUnfollowed = "user_unfollowed"
	EventUserDeleted    = "user_deleted"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Event is the payload published for feed consumers.
type Event struct {
	Type       string    `json:"type"`
	ActorID    uuid.UUID `json:"actor_id"`
	SubjectID  uuid.UUID `json:"subject_id"` // message id or followed user id
	OccurredAt time.Time `json:"occurred_at"`
}

// publishEvent publishes an event, keyed by actor so a consumer sees
// one user's events in order. A nil writer means events are disabled;
// publish failures are logged, never surfaced to the request.
func publishEvent(ctx context.Context, w KafkaWriter, evt Event) {
	if w == nil {
		logger.Log.Debugw("kafka writer not configured, skipping publish", "type", evt.Type)
		return
	}

	payload, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal event", "type", evt.Type, "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.ActorID.String()),
		Value: payload,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish event", "type", evt.Type, "err", err)
		return
	}

	logger.Log.Infow("event published", "type", evt.Type, "actor_id", evt.ActorID)
}
