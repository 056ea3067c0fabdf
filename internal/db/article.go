package db

import (
	"context"
	"fmt"
	"time"
)

func (r *Repository) ArticleByID(ctx context.Context, id int) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."id" = ?`, id).
		Select()

	if ok, err := selectOne(err, "get article by id"); !ok {
		return nil, err
	}

	return article, nil
}

// Articles returns the articles matching search with their writer and category joined.
func (r *Repository) Articles(ctx context.Context, search ArticleSearch) ([]Article, error) {
	var articles []Article
	query := r.db.ModelContext(ctx, &articles).
		Relation(Columns.Article.Writer).
		Relation(Columns.Article.Category)

	query, err := search.apply(query)
	if err != nil {
		return nil, err
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesCount(ctx context.Context, search ArticleSearch) (int, error) {
	query := search.where(r.db.ModelContext(ctx, (*Article)(nil)))

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

func (r *Repository) AddArticle(ctx context.Context, article *Article) (*Article, error) {
	now := time.Now()
	article.CreateTime, article.UpdateTime = now, now

	if _, err := r.db.ModelContext(ctx, article).Insert(); err != nil {
		return nil, writeErr("insert article", err)
	}

	return article, nil
}

// UpdateArticle writes the given columns of article and refreshes its update time.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article, columns ...string) error {
	article.UpdateTime = time.Now()
	columns = append(columns, Columns.Article.UpdateTime)

	_, err := r.db.ModelContext(ctx, article).
		Column(columns...).
		WherePK().
		Update()

	if err != nil {
		return writeErr("update article", err)
	}

	return nil
}

// SetArticleCategory points the article at categoryID, or clears it when nil.
func (r *Repository) SetArticleCategory(ctx context.Context, articleID int, categoryID *int) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Set(`"category_id" = ?`, categoryID).
		Set(`"update_time" = ?`, time.Now()).
		Where(`"id" = ?`, articleID).
		Update()

	if err != nil {
		return writeErr("set article category", err)
	}

	return nil
}

// DeleteArticle removes the article; its comments and tag links go with it.
func (r *Repository) DeleteArticle(ctx context.Context, id int) error {
	_, err := r.db.ModelContext(ctx, (*Article)(nil)).
		Where(`"id" = ?`, id).
		Delete()

	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}
