package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
	"github.com/warblerhq/warbler/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username is unknown, so the
// unknown-user and wrong-password paths cost the same.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) error
	Update(ctx context.Context, user *models.UserDB) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// TokenIssuer generates API bearer tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// SessionStore creates and destroys session bindings.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, token string) error
}

// AuthService handles signup, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	tokens   TokenIssuer
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenIssuer, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		tokens:   tokens,
		sessions: sessions,
	}
}

// Signup creates a user and logs them in. It returns the stored user
// together with an API token and a session token. The password is
// stored only as a bcrypt hash; uniqueness of username and email is
// the database's to decide, so a concurrent duplicate loses cleanly
// with ErrUserAlreadyExists.
func (svc *AuthService) Signup(ctx context.Context, username, email, password, imageURL string) (*models.UserDB, string, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, "", "", ErrValidation
	}
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", "", err
	}

	user := &models.UserDB{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		ImageURL:     imageURL,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Errorw("user already exists", "username", username, "email", email)
			return nil, "", "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", "", err
	}

	token, session, err := svc.issueTokens(ctx, user.UserID)
	if err != nil {
		return nil, "", "", err
	}

	return user, token, session, nil
}

// Login authenticates a user by username and password. Unknown
// username and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (*models.UserDB, string, string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", "", err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	token, session, err := svc.issueTokens(ctx, user.UserID)
	if err != nil {
		return nil, "", "", err
	}

	return user, token, session, nil
}

// Logout destroys the session binding for the given token.
func (svc *AuthService) Logout(ctx context.Context, sessionToken string) error {
	if err := svc.sessions.Delete(ctx, sessionToken); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}

func (svc *AuthService) issueTokens(ctx context.Context, userID uuid.UUID) (string, string, error) {
	token, err := svc.tokens.Generate(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", "", err
	}

	session, err := svc.sessions.Create(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", "", err
	}

	return token, session, nil
}
