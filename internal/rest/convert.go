package rest

import "github.com/daniilsolovey/blog-portal/internal/blog"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewMember(m blog.Member) Member {
	return Member{
		ID:       m.ID,
		Name:     m.Name,
		Role:     m.Role.String(),
		IsActive: m.IsActive,
	}
}

func NewMemberRef(m *blog.Member) *MemberRef {
	if m == nil {
		return nil
	}

	return &MemberRef{ID: m.ID, Name: m.Name}
}

func NewCategory(c blog.Category) Category {
	return Category{ID: c.ID, Name: c.Name}
}

func NewTag(t blog.Tag) Tag {
	return Tag{ID: t.ID, Name: t.Name}
}

func NewArticle(a blog.Article) Article {
	article := Article{
		ID:         a.ID,
		Title:      a.Title,
		Content:    a.Content,
		CreateTime: a.CreateTime,
		UpdateTime: a.UpdateTime,
		IsDeleted:  a.IsDeleted,
		Writer:     NewMemberRef(a.Writer),
		Tags:       Map(a.Tags, NewTag),
		Comments:   Map(a.Comments, NewComment),
	}

	if a.Category != nil {
		category := NewCategory(*a.Category)
		article.Category = &category
	}

	return article
}

func NewComment(c blog.Comment) Comment {
	return Comment{
		ID:            c.ID,
		Content:       c.Content,
		CommenterName: c.CommenterName,
		Like:          c.Likes,
		Dislike:       c.Dislikes,
		CreateTime:    c.CreateTime,
		ArticleID:     c.ArticleID,
		Member:        NewMemberRef(c.Member),
	}
}
