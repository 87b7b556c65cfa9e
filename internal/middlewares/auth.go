package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/sessions"
)

// AccessUnauthorized is the flash notice left behind when an
// anonymous request hits a protected route.
const AccessUnauthorized = "Access unauthorized."

// TokenAuthenticator resolves a request to a user id via some token
// carrier. Both the JWT service (Authorization header) and the session
// manager (cookie) satisfy it.
type TokenAuthenticator interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// Flasher records one-shot notices against a session token.
type Flasher interface {
	AddFlash(ctx context.Context, token, notice string) error
}

type userIDKeyType struct{}
type sessionTokenKeyType struct{}

var (
	userIDKey       = userIDKeyType{}
	sessionTokenKey = sessionTokenKeyType{}
)

// GetUserIDFromContext returns the authenticated user's id, or
// uuid.Nil for an anonymous request.
func GetUserIDFromContext(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(userIDKey).(uuid.UUID)
	return id
}

// GetSessionTokenFromContext returns the request's session token, if a
// session cookie was presented.
func GetSessionTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(sessionTokenKey).(string)
	return token
}

// SetUserIDToContext stores the acting user's id in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// SetSessionTokenToContext stores the request's session token in the
// context.
func SetSessionTokenToContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, sessionTokenKey, token)
}

// Authenticate resolves the acting identity, bearer token first, then
// session cookie, and stores it in the request context. It never
// denies; pair it with RequireUser on protected routes.
func Authenticate(bearer, cookie TokenAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if token, err := bearer.GetTokenFromRequest(ctx, r); err == nil {
				if userID, err := bearer.GetUserID(ctx, token); err == nil {
					next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
					return
				}
				logger.Log.Debugw("invalid bearer token presented")
			}

			if token, err := cookie.GetTokenFromRequest(ctx, r); err == nil {
				ctx = SetSessionTokenToContext(ctx, token)
				if userID, err := cookie.GetUserID(ctx, token); err == nil {
					ctx = SetUserIDToContext(ctx, userID)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser denies anonymous requests the way the web app does:
// flash "Access unauthorized." and redirect to the root page, never a
// hard failure.
func RequireUser(flash Flasher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if GetUserIDFromContext(ctx) != uuid.Nil {
				next.ServeHTTP(w, r)
				return
			}

			token := GetSessionTokenFromContext(ctx)
			if token == "" {
				// Anonymous caller without a cookie still gets the
				// notice: bind it to a fresh token.
				token = uuid.New().String()
				http.SetCookie(w, &http.Cookie{
					Name:     sessions.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			if err := flash.AddFlash(ctx, token, AccessUnauthorized); err != nil {
				logger.Log.Errorw("failed to add flash", "err", err)
			}

			http.Redirect(w, r, "/", http.StatusFound)
		})
	}
}
