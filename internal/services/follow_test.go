package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/repositories"
	"github.com/warblerhq/warbler/internal/services"
)

func TestFollowService_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFollowReader(ctrl)
	mockWriter := services.NewMockFollowWriter(ctrl)
	mockUsers := services.NewMockUserReader(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewFollowService(mockReader, mockWriter, mockUsers, mockKafka)

	followerID := uuid.New()
	followedID := uuid.New()

	tests := []struct {
		name       string
		followedID uuid.UUID
		userErr    error
		writerErr  error
		wantErr    error
	}{
		{
			name:       "successful follow",
			followedID: followedID,
		},
		{
			name:       "self follow rejected",
			followedID: followerID,
			wantErr:    services.ErrValidation,
		},
		{
			name:       "followed user missing",
			followedID: followedID,
			userErr:    repositories.ErrNotFound,
			wantErr:    services.ErrNotFound,
		},
		{
			name:       "duplicate edge",
			followedID: followedID,
			writerErr:  repositories.ErrUniqueViolation,
			wantErr:    services.ErrAlreadyFollowing,
		},
		{
			name:       "writer error",
			followedID: followedID,
			writerErr:  errors.New("insert error"),
			wantErr:    errors.New("insert error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.followedID != followerID {
				if tt.userErr != nil {
					mockUsers.EXPECT().GetByID(gomock.Any(), tt.followedID).Return(nil, tt.userErr)
				} else {
					mockUsers.EXPECT().GetByID(gomock.Any(), tt.followedID).
						Return(&models.UserDB{UserID: tt.followedID}, nil)
					mockWriter.EXPECT().Save(gomock.Any(), followerID, tt.followedID).Return(tt.writerErr)
				}
			}
			if tt.wantErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Follow(context.Background(), followerID, tt.followedID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockFollowWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)
	svc := services.NewFollowService(nil, mockWriter, nil, mockKafka)

	followerID := uuid.New()
	followedID := uuid.New()

	tests := []struct {
		name      string
		writerErr error
		wantErr   error
	}{
		{name: "edge removed"},
		// The repository treats a missing edge as done, so it never
		// errors for that; only real failures surface here.
		{name: "writer error", writerErr: errors.New("delete error"), wantErr: errors.New("delete error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWriter.EXPECT().Delete(gomock.Any(), followerID, followedID).Return(tt.writerErr)
			if tt.wantErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.Unfollow(context.Background(), followerID, followedID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Following is directed: alice following bob says nothing about bob
// following alice.
func TestFollowService_Asymmetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFollowReader(ctrl)
	svc := services.NewFollowService(mockReader, nil, nil, nil)

	aliceID := uuid.New()
	bobID := uuid.New()

	mockReader.EXPECT().Exists(gomock.Any(), aliceID, bobID).Return(true, nil)
	following, err := svc.IsFollowing(context.Background(), aliceID, bobID)
	assert.NoError(t, err)
	assert.True(t, following)

	mockReader.EXPECT().Exists(gomock.Any(), bobID, aliceID).Return(false, nil)
	followed, err := svc.IsFollowedBy(context.Background(), aliceID, bobID)
	assert.NoError(t, err)
	assert.False(t, followed)
}

func TestFollowService_FollowersAndFollowing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockFollowReader(ctrl)
	mockUsers := services.NewMockUserReader(ctrl)
	svc := services.NewFollowService(mockReader, nil, mockUsers, nil)

	userID := uuid.New()
	people := []models.UserDB{{UserID: uuid.New(), Username: "bob"}}

	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
	mockReader.EXPECT().Followers(gomock.Any(), userID).Return(people, nil)
	got, err := svc.Followers(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, people, got)

	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
	mockReader.EXPECT().Following(gomock.Any(), userID).Return(nil, nil)
	got, err = svc.Following(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, got)

	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, repositories.ErrNotFound)
	_, err = svc.Followers(context.Background(), userID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}
