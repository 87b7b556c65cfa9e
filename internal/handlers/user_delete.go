package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/middlewares"
)

// AccountDeleter defines the interface that the user service must
// implement for account deletion.
type AccountDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// NewUserDeleteHandler returns an HTTP handler deleting the caller's
// own account. Owned messages and follow edges go with it; the
// session is cleared and the caller lands on the signup page.
// @Summary Delete own account
// @Tags users
// @Produce json
// @Success 302 {string} string "Redirect to signup"
// @Router /users/delete [post]
func NewUserDeleteHandler(svc AccountDeleter, logout Logouter, sess SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actorID := middlewares.GetUserIDFromContext(ctx)

		if err := svc.Delete(ctx, actorID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		if token, err := sess.GetTokenFromRequest(ctx, r); err == nil && token != "" {
			if err := logout.Logout(ctx, token); err != nil {
				logger.Log.Errorw("failed to clear session", "err", err)
			}
		}
		sess.ClearCookie(w)

		http.Redirect(w, r, "/signup", http.StatusFound)
	}
}
