package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

func (r *MessageReadRepository) GetByID(ctx context.Context, messageID uuid.UUID) (*models.MessageDB, error) {
	const query = `
		SELECT message_id, user_id, text, created_at
		FROM messages
		WHERE message_id = $1
	`

	var msg models.MessageDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &msg, query, messageID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{messageID},
		"error", err,
	)

	if err != nil {
		return nil, mapError(err)
	}

	return &msg, nil
}

// ListByUserID returns a user's messages, newest first.
func (r *MessageReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MessageDB, error) {
	const query = `
		SELECT message_id, user_id, text, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var msgs []models.MessageDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &msgs, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(msgs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return msgs, nil
}

// ListFeed returns the newest messages authored by the user or by
// anyone the user follows, capped at limit.
func (r *MessageReadRepository) ListFeed(ctx context.Context, userID uuid.UUID, limit int) ([]models.MessageDB, error) {
	const query = `
		SELECT m.message_id, m.user_id, m.text, m.created_at
		FROM messages m
		WHERE m.user_id = $1
		   OR m.user_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
		ORDER BY m.created_at DESC
		LIMIT $2
	`

	var msgs []models.MessageDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &msgs, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(msgs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return msgs, nil
}

func (r *MessageReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM messages`

	var n int64
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &n, query)
	if err != nil {
		return 0, err
	}

	return n, nil
}

type MessageWriteRepository struct {
	db *sqlx.DB
}

func NewMessageWriteRepository(db *sqlx.DB) *MessageWriteRepository {
	return &MessageWriteRepository{db: db}
}

// Save inserts a message. The owning user must exist; a dangling
// user_id is rejected by the foreign key.
func (r *MessageWriteRepository) Save(ctx context.Context, msg *models.MessageDB) error {
	const query = `
		INSERT INTO messages (user_id, text, created_at)
		VALUES ($1, $2, NOW())
		RETURNING message_id, created_at
	`

	err := ext(ctx, r.db).QueryRowxContext(ctx, query, msg.UserID, msg.Text).
		Scan(&msg.MessageID, &msg.CreatedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{msg.UserID, msg.Text},
		"error", err,
	)

	return mapError(err)
}

func (r *MessageWriteRepository) Delete(ctx context.Context, messageID uuid.UUID) error {
	const query = `DELETE FROM messages WHERE message_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, messageID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{messageID},
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
