package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
)

// FeedLister defines the interface that the message service must
// implement for the home feed.
type FeedLister interface {
	Feed(ctx context.Context, userID uuid.UUID) ([]models.MessageDB, error)
}

// HomeResponse represents the root page payload
// swagger:model HomeResponse
type HomeResponse struct {
	// Greeting for anonymous visitors
	// example: Welcome to Warbler
	Message string `json:"message,omitempty"`

	// Pending one-shot notices, e.g. "Access unauthorized."
	Flashes []string `json:"flashes,omitempty"`

	// Feed of the caller and everyone they follow (authenticated only)
	Messages []models.MessageDB `json:"messages,omitempty"`
}

// NewHomeHandler returns the root page handler: the caller's feed when
// authenticated, a welcome plus any pending flashes otherwise.
// @Summary Home page
// @Tags home
// @Produce json
// @Success 200 {object} handlers.HomeResponse "Feed or welcome"
// @Router / [get]
func NewHomeHandler(svc FeedLister, sess SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var resp HomeResponse

		if token, err := sess.GetTokenFromRequest(ctx, r); err == nil && token != "" {
			flashes, err := sess.PopFlashes(ctx, token)
			if err != nil {
				logger.Log.Errorw("failed to pop flashes", "err", err)
			}
			resp.Flashes = flashes
		}

		userID := middlewares.GetUserIDFromContext(ctx)
		if userID == uuid.Nil {
			resp.Message = "Welcome to Warbler"
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(resp)
			return
		}

		msgs, err := svc.Feed(ctx, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		resp.Messages = msgs
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
