package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

// feedLimit caps the number of messages returned by Feed.
const feedLimit = 100

// MessageReader defines read-only operations for messages.
type MessageReader interface {
	GetByID(ctx context.Context, messageID uuid.UUID) (*models.MessageDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MessageDB, error)
	ListFeed(ctx context.Context, userID uuid.UUID, limit int) ([]models.MessageDB, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, msg *models.MessageDB) error
	Delete(ctx context.Context, messageID uuid.UUID) error
}

// MessageService handles message creation, deletion and reads, and
// publishes feed events to Kafka.
type MessageService struct {
	reader      MessageReader
	writer      MessageWriter
	kafkaWriter KafkaWriter
}

// NewMessageService creates a new MessageService. kafkaWriter may be
// nil, in which case no events are published.
func NewMessageService(reader MessageReader, writer MessageWriter, kafkaWriter KafkaWriter) *MessageService {
	return &MessageService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Create stores a new message owned by authorID. Text must be
// non-empty after trimming and at most models.MaxMessageLength runes.
func (svc *MessageService) Create(ctx context.Context, authorID uuid.UUID, text string) (*models.MessageDB, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrValidation
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, ErrValidation
	}

	msg := &models.MessageDB{
		UserID: authorID,
		Text:   text,
	}

	if err := svc.writer.Save(ctx, msg); err != nil {
		logger.Log.Errorw("failed to save message", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, Event{
		Type:       EventMessageCreated,
		ActorID:    authorID,
		SubjectID:  msg.MessageID,
		OccurredAt: time.Now(),
	})

	return msg, nil
}

// Delete removes a message. Only the owner may delete it; anyone else
// gets ErrUnauthorized and the message stays.
func (svc *MessageService) Delete(ctx context.Context, actorID, messageID uuid.UUID) error {
	msg, err := svc.reader.GetByID(ctx, messageID)
	if err != nil {
		return mapNotFound(err)
	}
	if msg.UserID != actorID {
		logger.Log.Errorw("message delete denied", "actor_id", actorID, "owner_id", msg.UserID)
		return ErrUnauthorized
	}

	if err := svc.writer.Delete(ctx, messageID); err != nil {
		logger.Log.Errorw("failed to delete message", "err", err)
		return mapNotFound(err)
	}

	publishEvent(ctx, svc.kafkaWriter, Event{
		Type:       EventMessageDeleted,
		ActorID:    actorID,
		SubjectID:  messageID,
		OccurredAt: time.Now(),
	})

	return nil
}

// GetByID returns a single message.
func (svc *MessageService) GetByID(ctx context.Context, messageID uuid.UUID) (*models.MessageDB, error) {
	msg, err := svc.reader.GetByID(ctx, messageID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return msg, nil
}

// Feed returns the newest messages from userID and everyone they
// follow.
func (svc *MessageService) Feed(ctx context.Context, userID uuid.UUID) ([]models.MessageDB, error) {
	return svc.reader.ListFeed(ctx, userID, feedLimit)
}
