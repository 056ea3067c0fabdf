package rpc

import (
	"time"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

type ArticleFilter struct {
	//titleLike title substring
	TitleLike string `json:"titleLike,omitempty"`
	//contentHas content substring
	ContentHas string `json:"contentHas,omitempty"`
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//tagIds every tag must be attached
	TagIDs []int `json:"tagIds,omitempty"`
	//writerIds optional writer filter
	WriterIDs     []int      `json:"writerIds,omitempty"`
	CreatedAfter  *time.Time `json:"createdAfter,omitempty"`
	CreatedBefore *time.Time `json:"createdBefore,omitempty"`
	UpdatedAfter  *time.Time `json:"updatedAfter,omitempty"`
	UpdatedBefore *time.Time `json:"updatedBefore,omitempty"`
	IsDeleted     *bool      `json:"isDeleted,omitempty"`
	//orderBy=-create_time sort key, "-" for descending
	OrderBy string `json:"orderBy,omitempty"`
	Offset  int    `json:"offset,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}

func (f ArticleFilter) ToModel() db.ArticleSearch {
	return db.ArticleSearch{
		TitleLike:     f.TitleLike,
		ContentHas:    f.ContentHas,
		CategoryID:    f.CategoryID,
		TagIDs:        f.TagIDs,
		WriterIDs:     f.WriterIDs,
		CreatedAfter:  f.CreatedAfter,
		CreatedBefore: f.CreatedBefore,
		UpdatedAfter:  f.UpdatedAfter,
		UpdatedBefore: f.UpdatedBefore,
		IsDeleted:     f.IsDeleted,
		OrderBy:       f.OrderBy,
		Offset:        f.Offset,
		Limit:         f.Limit,
	}
}

type CommentFilter struct {
	ArticleID *int `json:"articleId,omitempty"`
	MemberID  *int `json:"memberId,omitempty"`
	//orderBy=create_time create_time, likes or dislikes
	OrderBy string `json:"orderBy,omitempty"`
	Offset  int    `json:"offset,omitempty"`
	//limit=10 page size
	Limit int `json:"limit,omitempty"`
}

func (f CommentFilter) ToModel() db.CommentSearch {
	return db.CommentSearch{
		ArticleID: f.ArticleID,
		MemberID:  f.MemberID,
		OrderBy:   f.OrderBy,
		Offset:    f.Offset,
		Limit:     f.Limit,
	}
}

type Writer struct {
	MemberID int    `json:"memberId"`
	Name     string `json:"name"`
}

type Category struct {
	CategoryID int    `json:"categoryId"`
	Name       string `json:"name"`
}

type Tag struct {
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
}

type Article struct {
	ArticleID int       `json:"articleId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	IsDeleted bool      `json:"isDeleted"`
	Writer    *Writer   `json:"writer"`
	Category  *Category `json:"category,omitempty"`
	Tags      []Tag     `json:"tags"`
	Comments  []Comment `json:"comments,omitempty"`
}

type Comment struct {
	CommentID     int       `json:"commentId"`
	ArticleID     int       `json:"articleId"`
	Content       string    `json:"content"`
	CommenterName *string   `json:"commenterName,omitempty"`
	Author        *Writer   `json:"author,omitempty"`
	Likes         int       `json:"likes"`
	Dislikes      int       `json:"dislikes"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CommentPage struct {
	Comments []Comment `json:"comments"`
	Total    int       `json:"total"`
}
