package blog

import (
	"context"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

func (m *Manager) Comment(ctx context.Context, id int) (*Comment, error) {
	dbComment, err := m.repo.CommentByID(ctx, id)
	if err != nil {
		return nil, storageErr("get comment", err)
	} else if dbComment == nil {
		return nil, nil
	}

	comment := NewComment(dbComment)
	return &comment, nil
}

// Comments returns one page of comments and the total number of matches.
func (m *Manager) Comments(ctx context.Context, search db.CommentSearch) ([]Comment, int, error) {
	search.Limit = pageSize(search.Limit)

	list, total, err := m.repo.Comments(ctx, search)
	if err != nil {
		return nil, 0, storageErr("list comments", err)
	}

	return Map(list, NewComment), total, nil
}

// CreateMemberComment adds a comment authored by actor.
func (m *Manager) CreateMemberComment(ctx context.Context, actor *Member, articleID int, input CommentInput) (*Comment, error) {
	if err := CanCreateMemberComment(actor, input); err != nil {
		return nil, err
	}

	comment, err := m.addComment(ctx, &db.Comment{
		Content:   input.Content,
		ArticleID: articleID,
		MemberID:  &actor.ID,
	})
	if err != nil {
		return nil, err
	}

	comment.Member = actor
	return comment, nil
}

// CreateVisitorComment adds an anonymous comment signed with a commenter name.
func (m *Manager) CreateVisitorComment(ctx context.Context, articleID int, input CommentInput) (*Comment, error) {
	if err := CanCreateVisitorComment(input); err != nil {
		return nil, err
	}

	return m.addComment(ctx, &db.Comment{
		Content:       input.Content,
		ArticleID:     articleID,
		CommenterName: input.CommenterName,
	})
}

func (m *Manager) addComment(ctx context.Context, dbComment *db.Comment) (*Comment, error) {
	var comment Comment
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		dbArticle, err := tx.ArticleByID(ctx, dbComment.ArticleID)
		if err != nil {
			return storageErr("get article", err)
		} else if dbArticle == nil {
			return notFound("article", dbComment.ArticleID)
		}

		created, err := tx.AddComment(ctx, dbComment)
		if err != nil {
			return storageErr("add comment", err)
		}

		comment = NewComment(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// UpdateComment replaces the content of a comment written by actor.
func (m *Manager) UpdateComment(ctx context.Context, actor *Member, id int, content string) (*Comment, error) {
	if err := RequireActor(actor); err != nil {
		return nil, err
	}

	var comment Comment
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		dbComment, err := tx.CommentByID(ctx, id)
		if err != nil {
			return storageErr("get comment", err)
		} else if dbComment == nil {
			return notFound("comment", id)
		}

		if err := CanEditComment(actor, NewComment(dbComment)); err != nil {
			return err
		}

		dbComment.Content = content
		if err := tx.UpdateComment(ctx, dbComment, db.Columns.Comment.Content); err != nil {
			return storageErr("update comment", err)
		}

		comment = NewComment(dbComment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// DeleteComment removes a comment. A missing comment is a no-op.
func (m *Manager) DeleteComment(ctx context.Context, actor *Member, id int) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		dbComment, err := tx.CommentByID(ctx, id)
		if err != nil {
			return storageErr("get comment", err)
		} else if dbComment == nil {
			return nil
		}

		dbArticle, err := tx.ArticleByID(ctx, dbComment.ArticleID)
		if err != nil {
			return storageErr("get article", err)
		} else if dbArticle == nil {
			return nil
		}

		if err := CanRemoveComment(actor, NewComment(dbComment), NewArticle(dbArticle)); err != nil {
			return err
		}

		if err := tx.DeleteComment(ctx, id); err != nil {
			return storageErr("delete comment", err)
		}

		return nil
	})
}

func (m *Manager) LikeComment(ctx context.Context, id int) error {
	ok, err := m.repo.LikeComment(ctx, id)
	if err != nil {
		return storageErr("like comment", err)
	} else if !ok {
		return notFound("comment", id)
	}

	return nil
}

func (m *Manager) DislikeComment(ctx context.Context, id int) error {
	ok, err := m.repo.DislikeComment(ctx, id)
	if err != nil {
		return storageErr("dislike comment", err)
	} else if !ok {
		return notFound("comment", id)
	}

	return nil
}
