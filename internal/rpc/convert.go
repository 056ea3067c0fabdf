package rpc

import "github.com/daniilsolovey/blog-portal/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewWriter(m *blog.Member) *Writer {
	if m == nil {
		return nil
	}

	return &Writer{MemberID: m.ID, Name: m.Name}
}

func NewArticle(a blog.Article) Article {
	article := Article{
		ArticleID: a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreateTime,
		UpdatedAt: a.UpdateTime,
		IsDeleted: a.IsDeleted,
		Writer:    NewWriter(a.Writer),
		Tags:      Map(a.Tags, NewTag),
		Comments:  Map(a.Comments, NewComment),
	}

	if a.Category != nil {
		category := NewCategory(*a.Category)
		article.Category = &category
	}

	return article
}

func NewCategory(c blog.Category) Category {
	return Category{
		CategoryID: c.ID,
		Name:       c.Name,
	}
}

func NewTag(t blog.Tag) Tag {
	return Tag{
		TagID: t.ID,
		Name:  t.Name,
	}
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		CommentID:     c.ID,
		ArticleID:     c.ArticleID,
		Content:       c.Content,
		CommenterName: c.CommenterName,
		Author:        NewWriter(c.Member),
		Likes:         c.Likes,
		Dislikes:      c.Dislikes,
		CreatedAt:     c.CreateTime,
	}
}
