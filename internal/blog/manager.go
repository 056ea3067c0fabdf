package blog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Hasher hashes and verifies raw passwords.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// Manager runs blog operations: every mutation is authorized first and then
// applied inside one transaction.
type Manager struct {
	repo   Repo
	hasher Hasher
	logger *slog.Logger
}

func NewManager(repo *db.Repository, hasher Hasher, logger *slog.Logger) *Manager {
	return newManager(dbRepo{repo}, hasher, logger)
}

func newManager(repo Repo, hasher Hasher, logger *slog.Logger) *Manager {
	return &Manager{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// lookupWriter returns the snapshot of the article's writer.
func lookupWriter(ctx context.Context, repo Repo, article *db.Article) (Member, error) {
	writer, err := repo.MemberByID(ctx, article.WriterID)
	if err != nil {
		return Member{}, storageErr("get writer", err)
	} else if writer == nil {
		return Member{}, fmt.Errorf("%w: writer %d of article %d is missing", ErrStorage, article.WriterID, article.ID)
	}

	return NewMember(writer), nil
}

func pageSize(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}
