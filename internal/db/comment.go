package db

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) CommentByID(ctx context.Context, id int) (*Comment, error) {
	comment := &Comment{}
	err := r.db.ModelContext(ctx, comment).
		Relation(Columns.Comment.Member).
		Where(`"t"."id" = ?`, id).
		Select()

	if ok, err := selectOne(err, "get comment by id"); !ok {
		return nil, err
	}

	return comment, nil
}

// Comments returns one page of comments matching search and the total number of matches.
func (r *Repository) Comments(ctx context.Context, search CommentSearch) ([]Comment, int, error) {
	comments := []Comment{}
	query := r.db.ModelContext(ctx, &comments).
		Relation(Columns.Comment.Member)

	query, err := search.apply(query)
	if err != nil {
		return nil, 0, err
	}

	count, err := query.SelectAndCount()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, count, nil
}

func (r *Repository) AddComment(ctx context.Context, comment *Comment) (*Comment, error) {
	comment.CreateTime = time.Now()

	if _, err := r.db.ModelContext(ctx, comment).Insert(); err != nil {
		return nil, writeErr("insert comment", err)
	}

	return comment, nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment *Comment, columns ...string) error {
	query := r.db.ModelContext(ctx, comment).WherePK()
	if len(columns) > 0 {
		query = query.Column(columns...)
	}

	if _, err := query.Update(); err != nil {
		return writeErr("update comment", err)
	}

	return nil
}

func (r *Repository) DeleteComment(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Where(`"id" = ?`, id).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

// LikeComment increments the like counter in a single statement.
// It reports false when no comment has the id.
func (r *Repository) LikeComment(ctx context.Context, id int) (bool, error) {
	return r.incrementCounter(ctx, id, Columns.Comment.Likes)
}

// DislikeComment increments the dislike counter in a single statement.
func (r *Repository) DislikeComment(ctx context.Context, id int) (bool, error) {
	return r.incrementCounter(ctx, id, Columns.Comment.Dislikes)
}

func (r *Repository) incrementCounter(ctx context.Context, id int, column string) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Comment)(nil)).
		Set(`? = ? + 1`, pg.Ident(column), pg.Ident(column)).
		Where(`"id" = ?`, id).
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to increment comment %s: %w", column, err)
	}

	return res.RowsAffected() > 0, nil
}
