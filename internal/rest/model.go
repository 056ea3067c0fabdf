package rest

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/blog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var roleNames = []interface{}{"Owner", "Manager", "Member"}

type Member struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type MemberRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Article struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	CreateTime time.Time  `json:"create_time"`
	UpdateTime time.Time  `json:"update_time"`
	IsDeleted  bool       `json:"is_deleted"`
	Writer     *MemberRef `json:"writer"`
	Category   *Category  `json:"category"`
	Tags       []Tag      `json:"tags"`
	Comments   []Comment  `json:"comments,omitempty"`
}

type Comment struct {
	ID            int        `json:"id"`
	Content       string     `json:"content"`
	CommenterName *string    `json:"commenter_name"`
	Like          int        `json:"like"`
	Dislike       int        `json:"dislike"`
	CreateTime    time.Time  `json:"create_time"`
	ArticleID     int        `json:"article_id"`
	Member        *MemberRef `json:"member"`
}

type CommentPage struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MemberCreateRequest struct {
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Role     *string `json:"role"`
}

func (r *MemberCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 20)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, blog.MaxPasswordBytes)),
		validation.Field(&r.Role, validation.NilOrNotEmpty, validation.In(roleNames...)),
	)
}

type MemberUpdateRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

func (r *MemberUpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.RuneLength(1, 20)),
		validation.Field(&r.Password, validation.NilOrNotEmpty, validation.Length(1, blog.MaxPasswordBytes)),
		validation.Field(&r.Role, validation.NilOrNotEmpty, validation.In(roleNames...)),
	)
}

type MemberListRequest struct {
	NameLike string  `query:"name_like"`
	Role     *string `query:"role"`
	IsActive *bool   `query:"is_active"`
	Offset   int     `query:"offset"`
	Limit    int     `query:"limit"`
}

func (r *MemberListRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Role, validation.NilOrNotEmpty, validation.In(roleNames...)),
		validation.Field(&r.Offset, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}

// NameRequest creates a tag or category, or attaches one by name.
type NameRequest struct {
	Name string `json:"name"`
}

func (r *NameRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, 20)),
	)
}

type ArticleCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *ArticleCreateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required, validation.RuneLength(1, 50)),
	)
}

type ArticleUpdateRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	IsDeleted *bool   `json:"is_deleted"`
}

func (r *ArticleUpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.RuneLength(1, 50)),
	)
}

// ArticleListRequest is decoded with urlstruct: field names map to snake_case keys.
type ArticleListRequest struct {
	TitleLike        string
	ContentHas       string
	CategoryID       int
	TagIds           []int
	WriterIds        []int
	CreateTimeAfter  time.Time
	CreateTimeBefore time.Time
	UpdateTimeAfter  time.Time
	UpdateTimeBefore time.Time
	IsDeleted        string
	OrderBy          string
	Offset           int
	Limit            int
}

func (r *ArticleListRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.IsDeleted, validation.In("true", "false")),
		validation.Field(&r.Offset, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}

type CommentRequest struct {
	Content       string  `json:"content"`
	CommenterName *string `json:"commenter_name"`
}

func (r *CommentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, 250)),
		validation.Field(&r.CommenterName, validation.RuneLength(1, 20)),
	)
}

type CommentUpdateRequest struct {
	Content string `json:"content"`
}

func (r *CommentUpdateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content, validation.Required, validation.RuneLength(1, 250)),
	)
}

type CommentListRequest struct {
	OrderBy string `query:"order_by"`
	Offset  int    `query:"offset"`
	Limit   int    `query:"limit"`
}

func (r *CommentListRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Offset, validation.Min(0)),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}
