package blog

import (
	"context"

	"github.com/daniilsolovey/blog-portal/internal/db"
)

// editableArticle loads the article and checks that actor may change it.
func editableArticle(ctx context.Context, tx Repo, actor *Member, id int) (*db.Article, error) {
	dbArticle, err := tx.ArticleByID(ctx, id)
	if err != nil {
		return nil, storageErr("get article", err)
	} else if dbArticle == nil {
		return nil, notFound("article", id)
	}

	if err := CanEditArticle(actor, NewArticle(dbArticle)); err != nil {
		return nil, err
	}

	return dbArticle, nil
}

// AddTag attaches the tag named tagName to the article, creating the tag when needed.
func (m *Manager) AddTag(ctx context.Context, actor *Member, articleID int, tagName string) (*Tag, error) {
	if err := RequireActor(actor); err != nil {
		return nil, err
	}

	var tag Tag
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		if _, err := editableArticle(ctx, tx, actor, articleID); err != nil {
			return err
		}

		dbTag, err := tx.EnsureTag(ctx, tagName)
		if err != nil {
			return storageErr("ensure tag", err)
		}

		if err := tx.AttachTag(ctx, articleID, dbTag.ID); err != nil {
			return storageErr("attach tag", err)
		}

		tag = NewTag(dbTag)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// AttachTag attaches an existing tag to the article.
func (m *Manager) AttachTag(ctx context.Context, actor *Member, articleID, tagID int) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		if _, err := editableArticle(ctx, tx, actor, articleID); err != nil {
			return err
		}

		dbTag, err := tx.TagByID(ctx, tagID)
		if err != nil {
			return storageErr("get tag", err)
		} else if dbTag == nil {
			return notFound("tag", tagID)
		}

		if err := tx.AttachTag(ctx, articleID, tagID); err != nil {
			return storageErr("attach tag", err)
		}

		return nil
	})
}

// RemoveTag detaches the tag. A missing article, tag or link is a no-op.
func (m *Manager) RemoveTag(ctx context.Context, actor *Member, articleID, tagID int) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		dbArticle, err := tx.ArticleByID(ctx, articleID)
		if err != nil {
			return storageErr("get article", err)
		} else if dbArticle == nil {
			return nil
		}

		if err := CanEditArticle(actor, NewArticle(dbArticle)); err != nil {
			return err
		}

		if err := tx.DetachTag(ctx, articleID, tagID); err != nil {
			return storageErr("detach tag", err)
		}

		return nil
	})
}

// SetCategory replaces the article's category with the one named categoryName,
// creating it when needed.
func (m *Manager) SetCategory(ctx context.Context, actor *Member, articleID int, categoryName string) (*Category, error) {
	if err := RequireActor(actor); err != nil {
		return nil, err
	}

	var category Category
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		dbArticle, err := editableArticle(ctx, tx, actor, articleID)
		if err != nil {
			return err
		}

		dbCategory, err := tx.EnsureCategory(ctx, categoryName)
		if err != nil {
			return storageErr("ensure category", err)
		}

		category = NewCategory(dbCategory)
		return setCategory(ctx, tx, dbArticle, dbCategory.ID)
	})
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// SetCategoryByID replaces the article's category with an existing one.
func (m *Manager) SetCategoryByID(ctx context.Context, actor *Member, articleID, categoryID int) error {
	if err := RequireActor(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		dbArticle, err := editableArticle(ctx, tx, actor, articleID)
		if err != nil {
			return err
		}

		dbCategory, err := tx.CategoryByID(ctx, categoryID)
		if err != nil {
			return storageErr("get category", err)
		} else if dbCategory == nil {
			return notFound("category", categoryID)
		}

		return setCategory(ctx, tx, dbArticle, categoryID)
	})
}

func setCategory(ctx context.Context, tx Repo, dbArticle *db.Article, categoryID int) error {
	if dbArticle.CategoryID != nil && *dbArticle.CategoryID == categoryID {
		return nil
	}

	if err := tx.SetArticleCategory(ctx, dbArticle.ID, &categoryID); err != nil {
		return storageErr("set category", err)
	}

	return nil
}

func (m *Manager) Tags(ctx context.Context, hideUnused bool) ([]Tag, error) {
	list, err := m.repo.Tags(ctx, hideUnused)
	if err != nil {
		return nil, storageErr("list tags", err)
	}

	return Map(list, NewTag), nil
}

func (m *Manager) Tag(ctx context.Context, id int) (*Tag, error) {
	dbTag, err := m.repo.TagByID(ctx, id)
	if err != nil {
		return nil, storageErr("get tag", err)
	} else if dbTag == nil {
		return nil, nil
	}

	tag := NewTag(dbTag)
	return &tag, nil
}

func (m *Manager) CreateTag(ctx context.Context, actor *Member, name string) (*Tag, error) {
	if err := CanManageTaxonomy(actor); err != nil {
		return nil, err
	}

	var tag Tag
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		dbTag, err := tx.AddTag(ctx, &db.Tag{Name: name})
		if err != nil {
			return storageErr("add tag", err)
		}

		tag = NewTag(dbTag)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &tag, nil
}

// DeleteTag removes the tag from every article and then the tag itself.
func (m *Manager) DeleteTag(ctx context.Context, actor *Member, id int) error {
	if err := CanManageTaxonomy(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		if err := tx.DeleteTag(ctx, id); err != nil {
			return storageErr("delete tag", err)
		}

		return nil
	})
}

func (m *Manager) Categories(ctx context.Context, hideUnused bool) ([]Category, error) {
	list, err := m.repo.Categories(ctx, hideUnused)
	if err != nil {
		return nil, storageErr("list categories", err)
	}

	return Map(list, NewCategory), nil
}

func (m *Manager) Category(ctx context.Context, id int) (*Category, error) {
	dbCategory, err := m.repo.CategoryByID(ctx, id)
	if err != nil {
		return nil, storageErr("get category", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) CreateCategory(ctx context.Context, actor *Member, name string) (*Category, error) {
	if err := CanManageTaxonomy(actor); err != nil {
		return nil, err
	}

	var category Category
	err := m.repo.RunInTx(ctx, func(tx Repo) error {
		dbCategory, err := tx.AddCategory(ctx, &db.Category{Name: name})
		if err != nil {
			return storageErr("add category", err)
		}

		category = NewCategory(dbCategory)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &category, nil
}

// DeleteCategory removes the category; its articles become uncategorized.
func (m *Manager) DeleteCategory(ctx context.Context, actor *Member, id int) error {
	if err := CanManageTaxonomy(actor); err != nil {
		return err
	}

	return m.repo.RunInTx(ctx, func(tx Repo) error {
		if err := tx.DeleteCategory(ctx, id); err != nil {
			return storageErr("delete category", err)
		}

		return nil
	})
}
