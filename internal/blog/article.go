package blog

import (
	"context"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// Article returns the article with its writer, category, tags and comments, or nil.
func (m *Manager) Article(ctx context.Context, id int) (*Article, error) {
	dbArticle, err := m.repo.ArticleByID(ctx, id)
	if err != nil {
		return nil, storageErr("get article", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	article := NewArticle(dbArticle)

	writer, err := lookupWriter(ctx, m.repo, dbArticle)
	if err != nil {
		return nil, err
	}
	article.Writer = &writer

	if dbArticle.CategoryID != nil {
		category, err := m.repo.CategoryByID(ctx, *dbArticle.CategoryID)
		if err != nil {
			return nil, storageErr("get category", err)
		} else if category != nil {
			c := NewCategory(category)
			article.Category = &c
		}
	}

	list := Articles{article}
	tags, err := m.repo.TagsByArticleIDs(ctx, list.IDs())
	if err != nil {
		return nil, storageErr("get article tags", err)
	}
	list.SetTags(tags)

	comments, _, err := m.repo.Comments(ctx, db.CommentSearch{ArticleID: &id})
	if err != nil {
		return nil, storageErr("get article comments", err)
	}
	list[0].Comments = Map(comments, NewComment)

	return &list[0], nil
}

// Articles lists articles matching search with writer, category and tags filled in.
func (m *Manager) Articles(ctx context.Context, search db.ArticleSearch) (Articles, error) {
	dbArticles, err := m.repo.Articles(ctx, search)
	if err != nil {
		return nil, storageErr("list articles", err)
	}

	list := Articles(Map(dbArticles, NewArticle))
	if len(list) == 0 {
		return Articles{}, nil
	}

	tags, err := m.repo.TagsByArticleIDs(ctx, list.IDs())
	if err != nil {
		return nil, storageErr("get article tags", err)
	}
	list.SetTags(tags)

	return list, nil
}

func (m *Manager) ArticlesCount(ctx context.Context, search db.ArticleSearch) (int, error) {
	count, err := m.repo.ArticlesCount(ctx, search)
	if err != nil {
		return 0, storageErr("count articles", err)
	}

	return count, nil
}

func (m *Manager) CreateArticle(ctx context.Context, actor *Member, input ArticleInput) (*Article, error) {
	if err := CanCreateArticle(actor); err != nil {
		return nil, err
	}

	var created *db.Article
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		var err error
		created, err = tx.AddArticle(ctx, &db.Article{
			Title:    input.Title,
			Content:  input.Content,
			WriterID: actor.ID,
		})
		if err != nil {
			return storageErr("add article", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	article := NewArticle(created)
	article.Writer = actor
	article.Tags = []Tag{}

	return &article, nil
}

// UpdateArticle edits title and content, or flags the article for deletion.
// Flagging is one-way and repeating it changes nothing.
func (m *Manager) UpdateArticle(ctx context.Context, actor *Member, id int, update ArticleUpdate) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	if err := CheckArticleUpdate(update); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		dbArticle, err := tx.ArticleByID(ctx, id)
		if err != nil {
			return storageErr("get article", err)
		} else if dbArticle == nil {
			return notFound("article", id)
		}

		if update.IsDeleted != nil {
			return m.flagArticle(ctx, tx, actor, dbArticle)
		}

		if err := CanEditArticle(actor, NewArticle(dbArticle)); err != nil {
			return err
		}

		var columns []string
		if update.Title != nil {
			dbArticle.Title = *update.Title
			columns = append(columns, db.Columns.Article.Title)
		}

		if update.Content != nil {
			dbArticle.Content = *update.Content
			columns = append(columns, db.Columns.Article.Content)
		}

		if len(columns) == 0 {
			return nil
		}

		if err := tx.UpdateArticle(ctx, dbArticle, columns...); err != nil {
			return storageErr("update article", err)
		}

		return nil
	})
}

func (m *Manager) flagArticle(ctx context.Context, tx Repo, actor *Member, dbArticle *db.Article) error {
	writer, err := lookupWriter(ctx, tx, dbArticle)
	if err != nil {
		return err
	}

	if err := CanFlagArticle(actor, NewArticle(dbArticle), writer); err != nil {
		return err
	}

	if dbArticle.IsDeleted {
		return nil
	}

	dbArticle.IsDeleted = true
	if err := tx.UpdateArticle(ctx, dbArticle, db.Columns.Article.IsDeleted); err != nil {
		return storageErr("flag article", err)
	}

	m.logger.InfoContext(ctx, "article flagged for deletion", "articleID", dbArticle.ID, "actorID", actor.ID)
	return nil
}

// DeleteArticle removes a flagged article with its comments. A missing article is a no-op.
func (m *Manager) DeleteArticle(ctx context.Context, actor *Member, id int) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		dbArticle, err := tx.ArticleByID(ctx, id)
		if err != nil {
			return storageErr("get article", err)
		} else if dbArticle == nil {
			return nil
		}

		writer, err := lookupWriter(ctx, tx, dbArticle)
		if err != nil {
			return err
		}

		if err := CanRemoveArticle(actor, NewArticle(dbArticle), writer); err != nil {
			return err
		}

		if err := tx.DeleteArticle(ctx, id); err != nil {
			return storageErr("delete article", err)
		}

		m.logger.InfoContext(ctx, "article deleted", "articleID", id, "actorID", actor.ID)
		return nil
	})
}
