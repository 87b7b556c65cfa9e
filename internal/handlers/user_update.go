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

// ProfileUpdater defines the interface that the user service must
// implement for password-confirmed profile edits.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, password string, upd services.ProfileUpdate) (*models.UserDB, error)
}

// NewUserUpdateHandler returns an HTTP handler for editing the
// caller's own profile. The current password must be supplied; a wrong
// one is treated like any other unauthorized action.
// @Summary Edit own profile
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param password formData string true "Current password"
// @Param username formData string false "New username"
// @Param email formData string false "New email"
// @Param image_url formData string false "New profile image URL"
// @Param header_image_url formData string false "New header image URL"
// @Param bio formData string false "New bio"
// @Param location formData string false "New location"
// @Success 302 {string} string "Redirect to the caller's page"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /users/profile [post]
func NewUserUpdateHandler(svc ProfileUpdater, sess SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		actorID := middlewares.GetUserIDFromContext(ctx)

		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid form body"})
			return
		}

		upd := services.ProfileUpdate{
			Username:       r.PostForm.Get("username"),
			Email:          r.PostForm.Get("email"),
			ImageURL:       r.PostForm.Get("image_url"),
			HeaderImageURL: r.PostForm.Get("header_image_url"),
		}
		if r.PostForm.Has("bio") {
			upd.Bio = r.PostForm.Get("bio")
			upd.SetBio = true
		}
		if r.PostForm.Has("location") {
			upd.Location = r.PostForm.Get("location")
			upd.SetLocation = true
		}

		user, err := svc.UpdateProfile(ctx, actorID, r.PostForm.Get("password"), upd)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthorized):
				flashAndRedirect(w, r, sess, middlewares.AccessUnauthorized, "/")
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username or email already exists"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		http.Redirect(w, r, fmt.Sprintf("/users/%s", user.UserID), http.StatusFound)
	}
}
