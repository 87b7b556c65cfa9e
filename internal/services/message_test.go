package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/repositories"
	"github.com/warblerhq/warbler/internal/services"
)

func TestMessageService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMessageReader(ctrl)
	mockWriter := services.NewMockMessageWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewMessageService(mockReader, mockWriter, mockKafka)

	authorID := uuid.New()

	tests := []struct {
		name      string
		text      string
		wantText  string
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful create",
			text:     "hello, warblers",
			wantText: "hello, warblers",
		},
		{
			name:     "text is trimmed",
			text:     "  spaced out  ",
			wantText: "spaced out",
		},
		{
			name:     "exactly 140 runes",
			text:     strings.Repeat("x", models.MaxMessageLength),
			wantText: strings.Repeat("x", models.MaxMessageLength),
		},
		{
			name:     "140 multibyte runes",
			text:     strings.Repeat("ы", models.MaxMessageLength),
			wantText: strings.Repeat("ы", models.MaxMessageLength),
		},
		{
			name:    "141 runes rejected",
			text:    strings.Repeat("x", models.MaxMessageLength+1),
			wantErr: services.ErrValidation,
		},
		{
			name:    "empty text",
			text:    "",
			wantErr: services.ErrValidation,
		},
		{
			name:    "whitespace only",
			text:    "   \t\n  ",
			wantErr: services.ErrValidation,
		},
		{
			name:      "writer error",
			text:      "hello",
			writerErr: errors.New("insert error"),
			wantErr:   errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == nil || tt.writerErr != nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, msg *models.MessageDB) error {
						if tt.writerErr != nil {
							return tt.writerErr
						}
						msg.MessageID = uuid.New()
						return nil
					})
			}
			if tt.wantErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			msg, err := svc.Create(context.Background(), authorID, tt.text)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, msg)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantText, msg.Text)
			assert.Equal(t, authorID, msg.UserID)
			assert.NotEqual(t, uuid.Nil, msg.MessageID)
		})
	}
}

func TestMessageService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMessageReader(ctrl)
	mockWriter := services.NewMockMessageWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewMessageService(mockReader, mockWriter, mockKafka)

	ownerID := uuid.New()
	strangerID := uuid.New()
	messageID := uuid.New()
	msg := &models.MessageDB{MessageID: messageID, UserID: ownerID, Text: "mine"}

	tests := []struct {
		name      string
		actorID   uuid.UUID
		readerErr error
		writerErr error
		wantErr   error
	}{
		{
			name:    "owner deletes",
			actorID: ownerID,
		},
		{
			name:    "stranger denied",
			actorID: strangerID,
			wantErr: services.ErrUnauthorized,
		},
		{
			name:      "message not found",
			actorID:   ownerID,
			readerErr: repositories.ErrNotFound,
			wantErr:   services.ErrNotFound,
		},
		{
			name:      "writer error",
			actorID:   ownerID,
			writerErr: errors.New("delete error"),
			wantErr:   errors.New("delete error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.readerErr != nil {
				mockReader.EXPECT().GetByID(gomock.Any(), messageID).Return(nil, tt.readerErr)
			} else {
				mockReader.EXPECT().GetByID(gomock.Any(), messageID).Return(msg, nil)
			}
			if tt.readerErr == nil && tt.actorID == ownerID {
				mockWriter.EXPECT().Delete(gomock.Any(), messageID).Return(tt.writerErr)
			}
			if tt.wantErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Delete(context.Background(), tt.actorID, messageID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessageService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMessageReader(ctrl)
	svc := services.NewMessageService(mockReader, nil, nil)

	messageID := uuid.New()
	msg := &models.MessageDB{MessageID: messageID, UserID: uuid.New(), Text: "hi"}

	mockReader.EXPECT().GetByID(gomock.Any(), messageID).Return(msg, nil)
	got, err := svc.GetByID(context.Background(), messageID)
	assert.NoError(t, err)
	assert.Equal(t, msg, got)

	mockReader.EXPECT().GetByID(gomock.Any(), messageID).Return(nil, repositories.ErrNotFound)
	got, err = svc.GetByID(context.Background(), messageID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, got)
}

func TestMessageService_Feed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockMessageReader(ctrl)
	svc := services.NewMessageService(mockReader, nil, nil)

	userID := uuid.New()
	msgs := []models.MessageDB{
		{MessageID: uuid.New(), UserID: userID, Text: "newest"},
		{MessageID: uuid.New(), UserID: uuid.New(), Text: "older"},
	}

	mockReader.EXPECT().ListFeed(gomock.Any(), userID, 100).Return(msgs, nil)

	got, err := svc.Feed(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, msgs, got)
}

// A publish failure must not fail the write itself.
func TestMessageService_CreateKafkaFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMessageWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewMessageService(nil, mockWriter, mockKafka)

	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	msg, err := svc.Create(context.Background(), uuid.New(), "still fine")
	assert.NoError(t, err)
	assert.Equal(t, "still fine", msg.Text)
}

// A nil Kafka writer disables publishing without disabling the service.
func TestMessageService_CreateNilKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockMessageWriter(ctrl)
	svc := services.NewMessageService(nil, mockWriter, nil)

	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), uuid.New(), "no events")
	assert.NoError(t, err)
}
