package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

func (r *Repository) TagByID(ctx context.Context, id int) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"t"."id" = ?`, id).
		Select()

	if ok, err := selectOne(err, "get tag by id"); !ok {
		return nil, err
	}

	return tag, nil
}

func (r *Repository) TagByName(ctx context.Context, name string) (*Tag, error) {
	tag := &Tag{}
	err := r.db.ModelContext(ctx, tag).
		Where(`"t"."name" = ?`, name).
		Select()

	if ok, err := selectOne(err, "get tag by name"); !ok {
		return nil, err
	}

	return tag, nil
}

// Tags lists tags by id; with hideUnused only tags linked to an article are returned.
func (r *Repository) Tags(ctx context.Context, hideUnused bool) ([]Tag, error) {
	tags := []Tag{}
	query := r.db.ModelContext(ctx, &tags)

	if hideUnused {
		query = query.Where(`EXISTS (SELECT 1 FROM "article_tags" AS "at" WHERE "at"."tag_id" = "t"."id")`)
	}

	err := query.
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}

	return tags, nil
}

// TagsByArticleIDs loads the tags of the given articles keyed by article id.
func (r *Repository) TagsByArticleIDs(ctx context.Context, articleIDs []int) (map[int][]Tag, error) {
	result := make(map[int][]Tag, len(articleIDs))
	if len(articleIDs) == 0 {
		return result, nil
	}

	var links []ArticleTag
	err := r.db.ModelContext(ctx, &links).
		Relation(Columns.ArticleTag.Tag).
		Where(`"t"."article_id" IN (?)`, pg.In(articleIDs)).
		OrderExpr(`"t"."article_id" ASC, "t"."tag_id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query article tags: %w", err)
	}

	for _, link := range links {
		if link.Tag != nil {
			result[link.ArticleID] = append(result[link.ArticleID], *link.Tag)
		}
	}

	return result, nil
}

func (r *Repository) AddTag(ctx context.Context, tag *Tag) (*Tag, error) {
	if _, err := r.db.ModelContext(ctx, tag).Insert(); err != nil {
		return nil, writeErr("insert tag", err)
	}

	return tag, nil
}

// EnsureTag returns the tag named name, creating it when absent.
// The insert never fails on a name collision, so it is safe inside a transaction.
func (r *Repository) EnsureTag(ctx context.Context, name string) (*Tag, error) {
	_, err := r.db.ModelContext(ctx, &Tag{Name: name}).
		OnConflict("DO NOTHING").
		Insert()

	if err != nil && !errors.Is(err, pg.ErrNoRows) {
		return nil, writeErr("ensure tag", err)
	}

	tag, err := r.TagByName(ctx, name)
	if err != nil {
		return nil, err
	} else if tag == nil {
		return nil, fmt.Errorf("failed to ensure tag %q", name)
	}

	return tag, nil
}

func (r *Repository) DeleteTag(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Tag)(nil)).
		Where(`"id" = ?`, id).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}

// AttachTag links the tag to the article; an existing link is left as is.
func (r *Repository) AttachTag(ctx context.Context, articleID, tagID int) error {
	_, err := r.db.ModelContext(ctx, &ArticleTag{ArticleID: articleID, TagID: tagID}).
		OnConflict("DO NOTHING").
		Insert()

	if err != nil && !errors.Is(err, pg.ErrNoRows) {
		return writeErr("attach tag", err)
	}

	return nil
}

func (r *Repository) DetachTag(ctx context.Context, articleID, tagID int) error {
	_, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"article_id" = ?`, articleID).
		Where(`"tag_id" = ?`, tagID).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to detach tag: %w", err)
	}

	return nil
}

func (r *Repository) CategoryByID(ctx context.Context, id int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."id" = ?`, id).
		Select()

	if ok, err := selectOne(err, "get category by id"); !ok {
		return nil, err
	}

	return category, nil
}

func (r *Repository) CategoryByName(ctx context.Context, name string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."name" = ?`, name).
		Select()

	if ok, err := selectOne(err, "get category by name"); !ok {
		return nil, err
	}

	return category, nil
}

// Categories lists categories by id; with hideUnused only categories holding an article are returned.
func (r *Repository) Categories(ctx context.Context, hideUnused bool) ([]Category, error) {
	categories := []Category{}
	query := r.db.ModelContext(ctx, &categories)

	if hideUnused {
		query = query.Where(`EXISTS (SELECT 1 FROM "articles" AS "a" WHERE "a"."category_id" = "t"."id")`)
	}

	err := query.
		OrderExpr(`"t"."id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) AddCategory(ctx context.Context, category *Category) (*Category, error) {
	if _, err := r.db.ModelContext(ctx, category).Insert(); err != nil {
		return nil, writeErr("insert category", err)
	}

	return category, nil
}

// EnsureCategory returns the category named name, creating it when absent.
func (r *Repository) EnsureCategory(ctx context.Context, name string) (*Category, error) {
	_, err := r.db.ModelContext(ctx, &Category{Name: name}).
		OnConflict("DO NOTHING").
		Insert()

	if err != nil && !errors.Is(err, pg.ErrNoRows) {
		return nil, writeErr("ensure category", err)
	}

	category, err := r.CategoryByName(ctx, name)
	if err != nil {
		return nil, err
	} else if category == nil {
		return nil, fmt.Errorf("failed to ensure category %q", name)
	}

	return category, nil
}

// DeleteCategory removes the category; articles in it are left uncategorized.
func (r *Repository) DeleteCategory(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Category)(nil)).
		Where(`"id" = ?`, id).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
