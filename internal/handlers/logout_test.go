package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		mockSetup     func(svc *MockLogouter, sess *MockSessionManager)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success with session",
			mockSetup: func(svc *MockLogouter, sess *MockSessionManager) {
				sess.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sess-token", nil)
				svc.EXPECT().Logout(gomock.Any(), "sess-token").Return(nil)
				sess.EXPECT().ClearCookie(gomock.Any())
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "no session is a no-op",
			mockSetup: func(svc *MockLogouter, sess *MockSessionManager) {
				sess.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no cookie"))
				sess.EXPECT().ClearCookie(gomock.Any())
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "store failure",
			mockSetup: func(svc *MockLogouter, sess *MockSessionManager) {
				sess.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sess-token", nil)
				svc.EXPECT().Logout(gomock.Any(), "sess-token").Return(errors.New("redis down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			mockSess := NewMockSessionManager(ctrl)
			tt.mockSetup(mockSvc, mockSess)

			handler := NewLogoutHandler(mockSvc, mockSess)

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp LogoutResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Logged out", resp.Message)
		})
	}
}
