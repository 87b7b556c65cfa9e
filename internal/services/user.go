package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdate carries the editable profile fields. Empty strings
// leave the current value in place, except Bio and Location which may
// be cleared deliberately via their Set flags.
type ProfileUpdate struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	SetBio         bool
	Location       string
	SetLocation    bool
}

// UserService handles profile reads, password-confirmed profile edits
// and account deletion.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	messages    MessageReader
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, messages MessageReader, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		messages:    messages,
		kafkaWriter: kafkaWriter,
	}
}

// Get returns a user's profile together with their messages, newest
// first.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.MessageDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, mapNotFound(err)
	}

	msgs, err := svc.messages.ListByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, msgs, nil
}

// UpdateProfile applies a profile edit after confirming the caller's
// current password. Wrong password yields ErrUnauthorized; a username
// or email collision yields ErrUserAlreadyExists.
func (svc *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, password string, upd ProfileUpdate) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrUnauthorized
	}

	if v := strings.TrimSpace(upd.Username); v != "" {
		user.Username = v
	}
	if v := strings.TrimSpace(upd.Email); v != "" {
		user.Email = v
	}
	if upd.ImageURL != "" {
		user.ImageURL = upd.ImageURL
	}
	if upd.HeaderImageURL != "" {
		user.HeaderImageURL = upd.HeaderImageURL
	}
	if upd.SetBio {
		user.Bio = upd.Bio
	}
	if upd.SetLocation {
		user.Location = upd.Location
	}

	if err := svc.writer.Update(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "err", err)
		return nil, mapNotFound(err)
	}

	return user, nil
}

// Delete removes the user's account. Owned messages and follow edges
// in both directions cascade away with the row.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "err", err)
		return mapNotFound(err)
	}

	publishEvent(ctx, svc.kafkaWriter, Event{
		Type:       EventUserDeleted,
		ActorID:    userID,
		SubjectID:  userID,
		OccurredAt: time.Now(),
	})

	return nil
}
