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

// ProfileGetter defines the interface that the user service must
// implement for profile reads.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, []models.MessageDB, error)
}

// UserResponse represents a profile page payload
// swagger:model UserResponse
type UserResponse struct {
	// The user
	User *models.UserDB `json:"user"`

	// The user's messages, newest first
	Messages []models.MessageDB `json:"messages"`
}

// NewUserGetHandler returns an HTTP handler for showing a profile.
// @Summary Show a user profile
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.UserResponse "Profile and messages"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user id"
// @Router /users/{id} [get]
func NewUserGetHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			return
		}

		user, msgs, err := svc.Get(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserResponse{
			User:     user,
			Messages: msgs,
		})
	}
}
