package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, image_url, header_image_url, bio, location, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// GetByUsername looks a user up by exact username. A missing user is
// reported as (nil, nil) so callers can treat absence as a plain miss.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, image_url, header_image_url, bio, location, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, username)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &n, query)
	if err != nil {
		return 0, err
	}

	return n, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row. A duplicate username or email surfaces
// as ErrUniqueViolation; the row is the database's to reject, there is
// no read-then-write race here.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (username, email, password_hash, image_url, header_image_url, bio, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING user_id, created_at, updated_at
	`
	args := []any{user.Username, user.Email, user.PasswordHash, user.ImageURL, user.HeaderImageURL, user.Bio, user.Location}

	err := ext(ctx, r.db).QueryRowxContext(ctx, query, args...).
		Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Username, user.Email},
		"error", err,
	)

	return mapError(err)
}

// Update rewrites the mutable profile fields of an existing user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, image_url = $4, header_image_url = $5, bio = $6, location = $7, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{user.UserID, user.Username, user.Email, user.ImageURL, user.HeaderImageURL, user.Bio, user.Location}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.UserID, user.Username},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return mapError(err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a user. Owned messages and follow edges in both
// directions go with it via ON DELETE CASCADE.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
