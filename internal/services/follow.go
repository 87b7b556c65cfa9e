package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/repositories"
)

// FollowReader defines read-only operations on the follow graph.
type FollowReader interface {
	Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error)
	Followers(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
	Following(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
}

// FollowWriter defines write operations on the follow graph.
type FollowWriter interface {
	Save(ctx context.Context, followerID, followedID uuid.UUID) error
	Delete(ctx context.Context, followerID, followedID uuid.UUID) error
}

// FollowService manages the directed follow graph.
type FollowService struct {
	reader      FollowReader
	writer      FollowWriter
	users       UserReader
	kafkaWriter KafkaWriter
}

// NewFollowService creates a new FollowService. kafkaWriter may be nil.
func NewFollowService(reader FollowReader, writer FollowWriter, users UserReader, kafkaWriter KafkaWriter) *FollowService {
	return &FollowService{
		reader:      reader,
		writer:      writer,
		users:       users,
		kafkaWriter: kafkaWriter,
	}
}

// Follow adds a directed edge from follower to followed. Self-follows
// are rejected; a duplicate edge is an error, not a silent no-op, so a
// racing double-follow loses the same way a duplicate signup does.
func (svc *FollowService) Follow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if followerID == followedID {
		return ErrValidation
	}

	if _, err := svc.users.GetByID(ctx, followedID); err != nil {
		return mapNotFound(err)
	}

	if err := svc.writer.Save(ctx, followerID, followedID); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return ErrAlreadyFollowing
		}
		logger.Log.Errorw("failed to save follow edge", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, Event{
		Type:       EventUserFollowed,
		ActorID:    followerID,
		SubjectID:  followedID,
		OccurredAt: time.Now(),
	})

	return nil
}

// Unfollow removes the edge if present; removing an absent edge is a
// no-op.
func (svc *FollowService) Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, followerID, followedID); err != nil {
		logger.Log.Errorw("failed to delete follow edge", "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, Event{
		Type:       EventUserUnfollowed,
		ActorID:    followerID,
		SubjectID:  followedID,
		OccurredAt: time.Now(),
	})

	return nil
}

// IsFollowing reports whether follower follows followed.
func (svc *FollowService) IsFollowing(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	return svc.reader.Exists(ctx, followerID, followedID)
}

// IsFollowedBy reports whether userID is followed by otherID.
func (svc *FollowService) IsFollowedBy(ctx context.Context, userID, otherID uuid.UUID) (bool, error) {
	return svc.reader.Exists(ctx, otherID, userID)
}

// Followers lists the users following userID.
func (svc *FollowService) Followers(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	if _, err := svc.users.GetByID(ctx, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return svc.reader.Followers(ctx, userID)
}

// Following lists the users userID follows.
func (svc *FollowService) Following(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	if _, err := svc.users.GetByID(ctx, userID); err != nil {
		return nil, mapNotFound(err)
	}
	return svc.reader.Following(ctx, userID)
}
