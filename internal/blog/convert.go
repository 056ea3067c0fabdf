package blog

import (
	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Map converts a slice using the given function.
func Map[From, To any](list []From, convert func(*From) To) []To {
	if list == nil {
		return nil
	}

	result := make([]To, len(list))
	for i := range list {
		result[i] = convert(&list[i])
	}

	return result
}

func NewMember(m *db.Member) Member {
	return Member{
		ID:       m.ID,
		Name:     m.Name,
		Role:     Role(m.Role),
		IsActive: m.IsActive,
	}
}

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewTag(t *db.Tag) Tag {
	return Tag{Tag: *t}
}

func NewArticle(a *db.Article) Article {
	article := Article{Article: *a}
	article.Article.Writer, article.Article.Category = nil, nil

	if a.Writer != nil {
		writer := NewMember(a.Writer)
		article.Writer = &writer
	}

	if a.CategoryID != nil && a.Category != nil {
		category := NewCategory(a.Category)
		article.Category = &category
	}

	return article
}

func NewComment(c *db.Comment) Comment {
	comment := Comment{Comment: *c}
	comment.Comment.Member = nil

	if c.MemberID != nil && c.Member != nil {
		member := NewMember(c.Member)
		comment.Member = &member
	}

	return comment
}

type Articles []Article

func (ll Articles) IDs() []int {
	ids := make([]int, len(ll))
	for i := range ll {
		ids[i] = ll[i].ID
	}

	return ids
}

// SetTags fills each article's tags from the given index keyed by article id.
func (ll Articles) SetTags(index map[int][]db.Tag) {
	for i := range ll {
		ll[i].Tags = Map(index[ll[i].ID], NewTag)
		if ll[i].Tags == nil {
			ll[i].Tags = []Tag{}
		}
	}
}
