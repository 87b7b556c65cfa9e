package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/services"
)

// MessageDeleter defines the interface that the message service must
// implement for message deletion.
type MessageDeleter interface {
	Delete(ctx context.Context, actorID, messageID uuid.UUID) error
}

// NewMessageDeleteHandler returns an HTTP handler for deleting a
// message. Only the owner may delete; anyone else is bounced to the
// root page with the standard notice and the message stays.
// @Summary Delete a message
// @Description Deletes the caller's own message and redirects to their page.
// @Tags messages
// @Produce json
// @Param id path string true "Message id"
// @Success 302 {string} string "Redirect to the caller's page"
// @Failure 404 {object} handlers.ErrorResponse "Unknown message id"
// @Router /messages/{id}/delete [post]
func NewMessageDeleteHandler(svc MessageDeleter, sess SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actorID := middlewares.GetUserIDFromContext(ctx)

		messageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Message not found"})
			return
		}

		if err := svc.Delete(ctx, actorID, messageID); err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthorized):
				flashAndRedirect(w, r, sess, middlewares.AccessUnauthorized, "/")
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Message not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%s", actorID), http.StatusFound)
	}
}
