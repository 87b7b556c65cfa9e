package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
)

func newFormRequest(t *testing.T, target string, form url.Values, actorID uuid.UUID) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(middlewares.SetUserIDToContext(req.Context(), actorID))
}

func TestMessageCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actorID := uuid.New()

	tests := []struct {
		name          string
		text          string
		mockSetup     func(svc *MockMessageCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success redirects to author page",
			text: "hello, warblers",
			mockSetup: func(svc *MockMessageCreator) {
				svc.EXPECT().
					Create(gomock.Any(), actorID, "hello, warblers").
					Return(&models.MessageDB{MessageID: uuid.New(), UserID: actorID, Text: "hello, warblers"}, nil)
			},
			expectedCode: http.StatusFound,
		},
		{
			name: "empty text",
			text: "",
			mockSetup: func(svc *MockMessageCreator) {
				svc.EXPECT().
					Create(gomock.Any(), actorID, "").
					Return(nil, services.ErrValidation)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Message text must be 1-140 characters",
		},
		{
			name: "over-length text",
			text: strings.Repeat("x", 141),
			mockSetup: func(svc *MockMessageCreator) {
				svc.EXPECT().
					Create(gomock.Any(), actorID, strings.Repeat("x", 141)).
					Return(nil, services.ErrValidation)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Message text must be 1-140 characters",
		},
		{
			name: "internal server error",
			text: "hello",
			mockSetup: func(svc *MockMessageCreator) {
				svc.EXPECT().
					Create(gomock.Any(), actorID, "hello").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMessageCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewMessageCreateHandler(mockSvc)

			req := newFormRequest(t, "/messages/new", url.Values{"text": {tt.text}}, actorID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			assert.Equal(t, fmt.Sprintf("/users/%s", actorID), rr.Header().Get("Location"))
		})
	}
}
