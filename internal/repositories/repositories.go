// Package repositories contains the PostgreSQL persistence layer.
//
// Every repository executes against the request-scoped transaction when
// one is present in the context (see middlewares.TxMiddleware) and falls
// back to the shared pool otherwise. Constraint violations coming back
// from the driver are mapped to package-level sentinels here, at the
// operation boundary, so raw driver errors never travel further up.
package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/warblerhq/warbler/internal/middlewares"
)

var (
	// ErrUniqueViolation is returned when an insert hits a unique or
	// primary-key constraint (duplicate username, email, follow edge).
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("record not found")
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// ext returns the executor for ctx: the request transaction if the tx
// middleware put one there, the pool otherwise.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// mapError converts driver-level errors to repository sentinels.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUniqueViolation
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
