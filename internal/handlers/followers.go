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

// FollowLister defines the read interface that the follow service must
// implement for listing either side of the graph.
type FollowLister interface {
	Followers(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
	Following(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)
}

// FollowListResponse represents a follower/following listing
// swagger:model FollowListResponse
type FollowListResponse struct {
	// The listed users
	Users []models.UserDB `json:"users"`
}

// NewFollowersHandler returns an HTTP handler listing a user's
// followers. Viewing follower lists requires being logged in; the
// auth middleware enforces that.
// @Summary List a user's followers
// @Tags follows
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.FollowListResponse "Followers"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user id"
// @Router /users/{id}/followers [get]
func NewFollowersHandler(svc FollowLister) http.HandlerFunc {
	return listHandler(svc.Followers)
}

// NewFollowingHandler returns an HTTP handler listing who a user
// follows.
// @Summary List who a user follows
// @Tags follows
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.FollowListResponse "Following"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user id"
// @Router /users/{id}/following [get]
func NewFollowingHandler(svc FollowLister) http.HandlerFunc {
	return listHandler(svc.Following)
}

func listHandler(list func(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			return
		}

		users, err := list(r.Context(), userID)
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
		json.NewEncoder(w).Encode(FollowListResponse{Users: users})
	}
}
