package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
)

// MessageGetter defines the interface that the message service must
// implement for single-message reads.
type MessageGetter interface {
	GetByID(ctx context.Context, messageID uuid.UUID) (*models.MessageDB, error)
}

// NewMessageGetHandler returns an HTTP handler for showing a message.
// @Summary Show a message
// @Tags messages
// @Produce json
// @Param id path string true "Message id"
// @Success 200 {object} models.MessageDB "The message"
// @Failure 404 {object} handlers.ErrorResponse "Unknown message id"
// @Router /messages/{id} [get]
func NewMessageGetHandler(svc MessageGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messageID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Message not found"})
			return
		}

		msg, err := svc.GetByID(r.Context(), messageID)
		if err != nil {
			switch {
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

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(msg)
	}
}
