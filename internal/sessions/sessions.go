// Package sessions implements the server-side session binding: one
// Redis key per session token holding the logged-in user's id, plus a
// small flash-notice list used by redirect responses.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/warblerhq/warbler/internal/logger"
)

// CookieName is the session cookie set at login/signup and cleared at logout.
const CookieName = "warbler_session"

// ErrNoSession is returned when a token has no live binding.
var ErrNoSession = errors.New("no such session")

// Manager stores session bindings and flash notices in Redis.
type Manager struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// New creates a Manager with the given session lifetime.
func New(client *redis.Client, expiration time.Duration) *Manager {
	return &Manager{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(token string) string { return fmt.Sprintf("session:%s", token) }
func flashKey(token string) string   { return fmt.Sprintf("flash:%s", token) }

// Create binds a fresh token to userID and returns the token.
func (m *Manager) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.New().String()

	err := m.client.Set(ctx, sessionKey(token), userID.String(), m.exp).Err()

	logger.Log.Infow(
		"key", sessionKey(token),
		"user_id", userID,
		"error", err,
	)

	if err != nil {
		return "", err
	}

	return token, nil
}

// GetUserID resolves a token to the bound user id.
func (m *Manager) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	val, err := m.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return uuid.Nil, ErrNoSession
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt session value: %w", err)
	}

	return userID, nil
}

// Delete removes the binding and any pending flashes for token.
func (m *Manager) Delete(ctx context.Context, token string) error {
	err := m.client.Del(ctx, sessionKey(token), flashKey(token)).Err()

	logger.Log.Infow(
		"key", sessionKey(token),
		"error", err,
	)

	return err
}

// AddFlash appends a one-shot notice to the token's flash list. Flashes
// work for anonymous tokens too, so a denied request can still leave
// its "Access unauthorized." notice behind.
func (m *Manager) AddFlash(ctx context.Context, token, notice string) error {
	key := flashKey(token)
	if err := m.client.RPush(ctx, key, notice).Err(); err != nil {
		return err
	}
	return m.client.Expire(ctx, key, m.exp).Err()
}

// PopFlashes returns and clears all pending notices for token.
func (m *Manager) PopFlashes(ctx context.Context, token string) ([]string, error) {
	key := flashKey(token)

	notices, err := m.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(notices) == 0 {
		return nil, nil
	}

	if err := m.client.Del(ctx, key).Err(); err != nil {
		return nil, err
	}

	return notices, nil
}

// GetTokenFromRequest extracts the session token from the request
// cookie. An absent cookie is not an error in itself; callers decide
// what an anonymous request means.
func (m *Manager) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", err
	}
	return c.Value, nil
}

// SetCookie writes the session cookie onto the response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie on the response.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
