package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

const uniqueViolation = "23505"

var (
	// ErrDuplicate is returned when a write collides with a unique constraint.
	ErrDuplicate = errors.New("duplicate value")
	// ErrInvalidOrder is returned for sort keys outside of the allow-list.
	ErrInvalidOrder = errors.New("invalid order")
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// RunInTx runs fn against a repository bound to a single transaction.
// A repository that already wraps a transaction runs fn inside it, so nested
// calls share one commit.
func (r *Repository) RunInTx(ctx context.Context, fn func(*Repository) error) error {
	switch db := r.db.(type) {
	case *pg.DB:
		return db.RunInTransaction(ctx, func(tx *pg.Tx) error {
			return fn(New(tx))
		})
	default:
		return fn(r)
	}
}

// writeErr wraps a failed write, mapping unique violations to ErrDuplicate.
func writeErr(op string, err error) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == uniqueViolation {
		return fmt.Errorf("failed to %s: %w: %s", op, ErrDuplicate, pgErr.Field('n'))
	}

	return fmt.Errorf("failed to %s: %w", op, err)
}

// selectOne maps pg.ErrNoRows to a nil result.
func selectOne(err error, op string) (bool, error) {
	if errors.Is(err, pg.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to %s: %w", op, err)
	}

	return true, nil
}
