package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// Exists reports whether follower currently follows followed.
func (r *FollowReadRepository) Exists(ctx context.Context, followerID, followedID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, followerID, followedID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{followerID, followedID},
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return exists, nil
}

// Followers returns the users following userID, oldest edge first.
func (r *FollowReadRepository) Followers(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at, u.updated_at
		FROM users u
		JOIN follows f ON f.follower_id = u.user_id
		WHERE f.followed_id = $1
		ORDER BY f.created_at
	`

	return r.selectUsers(ctx, query, userID)
}

// Following returns the users userID follows, oldest edge first.
func (r *FollowReadRepository) Following(ctx context.Context, userID uuid.UUID) ([]models.UserDB, error) {
	const query = `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at, u.updated_at
		FROM users u
		JOIN follows f ON f.followed_id = u.user_id
		WHERE f.follower_id = $1
		ORDER BY f.created_at
	`

	return r.selectUsers(ctx, query, userID)
}

func (r *FollowReadRepository) selectUsers(ctx context.Context, query string, userID uuid.UUID) ([]models.UserDB, error) {
	var users []models.UserDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &users, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type FollowWriteRepository struct {
	db *sqlx.DB
}

func NewFollowWriteRepository(db *sqlx.DB) *FollowWriteRepository {
	return &FollowWriteRepository{db: db}
}

// Save inserts a follow edge. A duplicate pair hits the composite
// primary key and comes back as ErrUniqueViolation.
func (r *FollowWriteRepository) Save(ctx context.Context, followerID, followedID uuid.UUID) error {
	const query = `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, followerID, followedID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{followerID, followedID},
		"error", err,
	)

	return mapError(err)
}

// Delete removes a follow edge. Deleting an absent edge is not an
// error; the unfollow operation is a no-op in that case.
func (r *FollowWriteRepository) Delete(ctx context.Context, followerID, followedID uuid.UUID) error {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, followerID, followedID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{followerID, followedID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
