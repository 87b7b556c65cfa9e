package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/services"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, username, email, password, imageURL string) (*models.UserDB, string, string, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Username
	// required: true
	// example: testuser
	Username string `json:"username"`

	// Email
	// required: true
	// example: test@test.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Profile image URL, defaulted when omitted
	// example: /static/images/default-pic.png
	ImageURL string `json:"image_url"`
}

// SignupResponse represents a successful signup response
// swagger:model SignupResponse
type SignupResponse struct {
	// API bearer token
	// example: JWT_TOKEN
	Token string `json:"token"`

	// Created user
	User *models.UserDB `json:"user"`
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a user account, hashes the password, and logs the caller in: the response carries a bearer token and the session cookie is set.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.SignupResponse "User created and logged in"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Router /signup [post]
func NewSignupHandler(svc Signuper, sess SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		user, token, session, err := svc.Signup(r.Context(), req.Username, req.Email, req.Password, req.ImageURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username or email already exists"})
			case errors.Is(err, services.ErrValidation):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Username, email and password are required"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		sess.SetCookie(w, session)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SignupResponse{
			Token: token,
			User:  user,
		})
	}
}
