package blog

import (
	"errors"
	"fmt"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Outcome kinds. Returned errors wrap exactly one of them.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidRequest  = errors.New("invalid request")
	ErrStorage         = errors.New("storage failure")
)

func deny(kind error, reason string) error {
	return fmt.Errorf("%w: %s", kind, reason)
}

func notFound(what string, id int) error {
	return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
}

// storageErr classifies a repository error as Conflict, InvalidRequest or StorageFailure.
func storageErr(op string, err error) error {
	switch {
	case errors.Is(err, db.ErrDuplicate):
		return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
	case errors.Is(err, db.ErrInvalidOrder):
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidRequest, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
}
