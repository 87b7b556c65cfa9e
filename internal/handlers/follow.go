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

// FollowEditor defines the write interface that the follow service
// must implement.
type FollowEditor interface {
	Follow(ctx context.Context, followerID, followedID uuid.UUID) error
	Unfollow(ctx context.Context, followerID, followedID uuid.UUID) error
}

// NewFollowHandler returns an HTTP handler making the caller follow
// another user, then redirects to the caller's following list.
// @Summary Follow a user
// @Tags follows
// @Produce json
// @Param id path string true "User id to follow"
// @Success 302 {string} string "Redirect to the caller's following list"
// @Failure 400 {object} handlers.ErrorResponse "Self-follow or already following"
// @Failure 404 {object} handlers.ErrorResponse "Unknown user id"
// @Router /users/follow/{id} [post]
func NewFollowHandler(svc FollowEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actorID := middlewares.GetUserIDFromContext(ctx)

		followedID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			return
		}

		if err := svc.Follow(ctx, actorID, followedID); err != nil {
			switch {
			case errors.Is(err, services.ErrAlreadyFollowing):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Already following"})
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Cannot follow yourself"})
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

		http.Redirect(w, r, fmt.Sprintf("/users/%s/following", actorID), http.StatusFound)
	}
}

// NewUnfollowHandler returns an HTTP handler removing a follow edge.
// Unfollowing someone not followed is a no-op, not an error.
// @Summary Unfollow a user
// @Tags follows
// @Produce json
// @Param id path string true "User id to stop following"
// @Success 302 {string} string "Redirect to the caller's following list"
// @Failure 404 {object} handlers.ErrorResponse "Malformed user id"
// @Router /users/stop-following/{id} [post]
func NewUnfollowHandler(svc FollowEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actorID := middlewares.GetUserIDFromContext(ctx)

		followedID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "User not found"})
			return
		}

		if err := svc.Unfollow(ctx, actorID, followedID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%s/following", actorID), http.StatusFound)
	}
}
