// Package handlers contains one HTTP handler constructor per
// endpoint. Auth endpoints speak JSON; the message, follow and profile
// endpoints keep the web application's redirect-and-flash semantics.
package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
)

// SessionManager is the slice of the session store the handlers need:
// cookie management and flash notices.
type SessionManager interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	AddFlash(ctx context.Context, token, notice string) error
	PopFlashes(ctx context.Context, token string) ([]string, error)
	SetCookie(w http.ResponseWriter, token string)
	ClearCookie(w http.ResponseWriter)
}

// ErrorResponse is the JSON error body shared by all endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Invalid username or password
	Error string `json:"error"`
}

// flashAndRedirect records a one-shot notice on the caller's session
// and redirects, minting an anonymous session token when the request
// carried none (e.g. a bearer-token client).
func flashAndRedirect(w http.ResponseWriter, r *http.Request, sess SessionManager, notice, location string) {
	ctx := r.Context()

	token, err := sess.GetTokenFromRequest(ctx, r)
	if err != nil || token == "" {
		token = uuid.New().String()
		sess.SetCookie(w, token)
	}

	if err := sess.AddFlash(ctx, token, notice); err != nil {
		logger.Log.Errorw("failed to add flash", "err", err)
	}

	http.Redirect(w, r, location, http.StatusFound)
}
