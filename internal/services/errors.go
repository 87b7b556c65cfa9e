package services

import (
	"errors"

	"github.com/warblerhq/warbler/internal/repositories"
)

// Error taxonomy surfaced to the HTTP layer. Storage-level errors are
// converted to these at the service boundary and never travel raw.
var (
	// ErrValidation covers malformed input: empty text, missing
	// required fields, over-length messages, self-follows.
	ErrValidation = errors.New("invalid input")

	// ErrUserAlreadyExists is returned when a signup or profile update
	// collides with an existing username or email.
	ErrUserAlreadyExists = errors.New("username or email already exists")

	// ErrAlreadyFollowing is returned on a duplicate follow edge.
	ErrAlreadyFollowing = errors.New("already following")

	// ErrInvalidCredentials covers both an unknown username and a
	// wrong password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized is returned when the actor may not perform the
	// operation, e.g. deleting somebody else's message.
	ErrUnauthorized = errors.New("access unauthorized")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)

// mapNotFound converts the repository not-found sentinel to the
// service-level one and passes everything else through.
func mapNotFound(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
