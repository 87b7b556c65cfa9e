package jwt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/warblerhq/warbler/internal/jwt"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)
	userID := uuid.New()

	token, err := j.Generate(context.Background(), userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := jwt.New("test-secret", -time.Minute)

	token, err := j.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	_, err = j.GetUserID(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := jwt.New("secret-a", time.Hour)
	verifier := jwt.New("secret-b", time.Hour)

	token, err := issuer.Generate(context.Background(), uuid.New())
	assert.NoError(t, err)

	_, err = verifier.GetUserID(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_GarbageToken(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)

	_, err := j.GetUserID(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := jwt.New("test-secret", time.Hour)

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer token", header: "Bearer abc123", want: "abc123"},
		{name: "case insensitive scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc123", wantErr: true},
		{name: "no token", header: "Bearer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
