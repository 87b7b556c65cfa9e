package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, sessionToken string) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Confirmation message
	// example: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler for logout.
// @Summary Log out
// @Description Clears the session binding and expires the session cookie. Logging out without a session is a no-op.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session cleared"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter, sess SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, err := sess.GetTokenFromRequest(ctx, r); err == nil && token != "" {
			if err := svc.Logout(ctx, token); err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
				return
			}
		}

		sess.ClearCookie(w)
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Logged out"})
	}
}
