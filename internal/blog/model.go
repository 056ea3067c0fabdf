package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Member is a credential-free snapshot of a member.
type Member struct {
	ID       int
	Name     string
	Role     Role
	IsActive bool
}

type Category struct {
	db.Category
}

type Tag struct {
	db.Tag
}

type Article struct {
	db.Article
	Writer   *Member
	Category *Category
	Tags     []Tag
	Comments []Comment
}

type Comment struct {
	db.Comment
	Member *Member
}

// MemberInput carries the fields of a member to create.
type MemberInput struct {
	Name     string
	Password string
	Role     Role
}

// MemberUpdate is a partial update; nil fields are left untouched.
type MemberUpdate struct {
	Name     *string
	Password *string
	Role     *Role
	IsActive *bool
}

func (u MemberUpdate) changesAccess(target Member) bool {
	return (u.Role != nil && *u.Role != target.Role) ||
		(u.IsActive != nil && *u.IsActive != target.IsActive)
}

type ArticleInput struct {
	Title   string
	Content string
}

// ArticleUpdate is a partial update. IsDeleted is a separate action and
// cannot be combined with Title or Content.
type ArticleUpdate struct {
	Title     *string
	Content   *string
	IsDeleted *bool
}

// CommentInput carries a comment body and, for visitors only, the commenter name.
type CommentInput struct {
	Content       string
	CommenterName *string
}

// OwnerConfig holds the credentials the owner account is seeded with.
type OwnerConfig struct {
	Name     string
	Password string
}
