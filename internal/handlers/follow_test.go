package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/warblerhq/warbler/internal/services"
)

func TestFollowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	targetID := uuid.New()

	tests := []struct {
		name          string
		param         string
		mockSetup     func(svc *MockFollowEditor)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "success redirects to following list",
			param: targetID.String(),
			mockSetup: func(svc *MockFollowEditor) {
				svc.EXPECT().Follow(gomock.Any(), actorID, targetID).Return(nil)
			},
			expectedCode: http.StatusFound,
		},
		{
			name:  "already following",
			param: targetID.String(),
			mockSetup: func(svc *MockFollowEditor) {
				svc.EXPECT().Follow(gomock.Any(), actorID, targetID).Return(services.ErrAlreadyFollowing)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Already following",
		},
		{
			name:  "self follow",
			param: actorID.String(),
			mockSetup: func(svc *MockFollowEditor) {
				svc.EXPECT().Follow(gomock.Any(), actorID, actorID).Return(services.ErrValidation)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Cannot follow yourself",
		},
		{
			name:  "unknown user",
			param: targetID.String(),
			mockSetup: func(svc *MockFollowEditor) {
				svc.EXPECT().Follow(gomock.Any(), actorID, targetID).Return(services.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name:          "malformed id",
			param:         "not-a-uuid",
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name:  "internal server error",
			param: targetID.String(),
			mockSetup: func(svc *MockFollowEditor) {
				svc.EXPECT().Follow(gomock.Any(), actorID, targetID).Return(errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFollowEditor(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewFollowHandler(mockSvc)

			req := newRouteRequest(http.MethodPost, "/users/follow/"+tt.param, tt.param, actorID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			assert.Equal(t, fmt.Sprintf("/users/%s/following", actorID), rr.Header().Get("Location"))
		})
	}
}

func TestUnfollowHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()
	targetID := uuid.New()

	t.Run("success redirects to following list", func(t *testing.T) {
		mockSvc := NewMockFollowEditor(ctrl)
		mockSvc.EXPECT().Unfollow(gomock.Any(), actorID, targetID).Return(nil)

		handler := NewUnfollowHandler(mockSvc)

		req := newRouteRequest(http.MethodPost, "/users/stop-following/"+targetID.String(), targetID.String(), actorID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, fmt.Sprintf("/users/%s/following", actorID), rr.Header().Get("Location"))
	})

	t.Run("absent edge still redirects", func(t *testing.T) {
		mockSvc := NewMockFollowEditor(ctrl)
		mockSvc.EXPECT().Unfollow(gomock.Any(), actorID, targetID).Return(nil)

		handler := NewUnfollowHandler(mockSvc)

		req := newRouteRequest(http.MethodPost, "/users/stop-following/"+targetID.String(), targetID.String(), actorID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockSvc := NewMockFollowEditor(ctrl)
		handler := NewUnfollowHandler(mockSvc)

		req := newRouteRequest(http.MethodPost, "/users/stop-following/oops", "oops", actorID)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
