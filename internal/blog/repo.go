package blog

import (
	"context"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Repo is the storage the Manager works through. Lookups return nil, nil for
// missing rows.
type Repo interface {
	RunInTx(ctx context.Context, fn func(Repo) error) error

	MemberByID(ctx context.Context, id int) (*db.Member, error)
	MemberByName(ctx context.Context, name string) (*db.Member, error)
	Members(ctx context.Context, search db.MemberSearch) ([]db.Member, error)
	AddMember(ctx context.Context, member *db.Member) (*db.Member, error)
	UpdateMember(ctx context.Context, member *db.Member, columns ...string) error
	SeedOwner(ctx context.Context, member *db.Member) (bool, error)

	ArticleByID(ctx context.Context, id int) (*db.Article, error)
	Articles(ctx context.Context, search db.ArticleSearch) ([]db.Article, error)
	ArticlesCount(ctx context.Context, search db.ArticleSearch) (int, error)
	AddArticle(ctx context.Context, article *db.Article) (*db.Article, error)
	UpdateArticle(ctx context.Context, article *db.Article, columns ...string) error
	SetArticleCategory(ctx context.Context, articleID int, categoryID *int) error
	DeleteArticle(ctx context.Context, id int) error

	TagByID(ctx context.Context, id int) (*db.Tag, error)
	Tags(ctx context.Context, hideUnused bool) ([]db.Tag, error)
	TagsByArticleIDs(ctx context.Context, articleIDs []int) (map[int][]db.Tag, error)
	AddTag(ctx context.Context, tag *db.Tag) (*db.Tag, error)
	EnsureTag(ctx context.Context, name string) (*db.Tag, error)
	DeleteTag(ctx context.Context, id int) error
	AttachTag(ctx context.Context, articleID, tagID int) error
	DetachTag(ctx context.Context, articleID, tagID int) error

	CategoryByID(ctx context.Context, id int) (*db.Category, error)
	Categories(ctx context.Context, hideUnused bool) ([]db.Category, error)
	AddCategory(ctx context.Context, category *db.Category) (*db.Category, error)
	EnsureCategory(ctx context.Context, name string) (*db.Category, error)
	DeleteCategory(ctx context.Context, id int) error

	CommentByID(ctx context.Context, id int) (*db.Comment, error)
	Comments(ctx context.Context, search db.CommentSearch) ([]db.Comment, int, error)
	AddComment(ctx context.Context, comment *db.Comment) (*db.Comment, error)
	UpdateComment(ctx context.Context, comment *db.Comment, columns ...string) error
	DeleteComment(ctx context.Context, id int) error
	LikeComment(ctx context.Context, id int) (bool, error)
	DislikeComment(ctx context.Context, id int) (bool, error)
}

// dbRepo adapts *db.Repository to Repo.
type dbRepo struct {
	*db.Repository
}

func (r dbRepo) RunInTx(ctx context.Context, fn func(Repo) error) error {
	return r.Repository.RunInTx(ctx, func(tx *db.Repository) error {
		return fn(dbRepo{tx})
	})
}
