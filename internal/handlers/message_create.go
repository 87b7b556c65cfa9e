package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/middlewares"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
)

// MessageCreator defines the interface that the message service must
// implement for message creation.
type MessageCreator interface {
	Create(ctx context.Context, authorID uuid.UUID, text string) (*models.MessageDB, error)
}

// NewMessageCreateHandler returns an HTTP handler for posting a new
// message. It keeps the web form contract: field "text", redirect on
// success.
// @Summary Post a new message
// @Description Creates a message owned by the authenticated caller and redirects to their page. Text is required and capped at 140 characters.
// @Tags messages
// @Accept x-www-form-urlencoded
// @Produce json
// @Param text formData string true "Message text"
// @Success 302 {string} string "Redirect to the author's page"
// @Failure 400 {object} handlers.ErrorResponse "Empty or over-length text"
// @Router /messages/new [post]
func NewMessageCreateHandler(svc MessageCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID := middlewares.GetUserIDFromContext(r.Context())

		msg, err := svc.Create(r.Context(), actorID, r.FormValue("text"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Message text must be 1-140 characters"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%s", msg.UserID), http.StatusFound)
	}
}
