package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
)

func (h *Handler) articleSearch(c echo.Context) (db.ArticleSearch, error) {
	var req ArticleListRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return db.ArticleSearch{}, fmt.Errorf("%w: %v", errBadRequest, err)
	}

	if err := validate(&req); err != nil {
		return db.ArticleSearch{}, err
	}

	search := db.ArticleSearch{
		TitleLike:  req.TitleLike,
		ContentHas: req.ContentHas,
		TagIDs:     req.TagIds,
		WriterIDs:  req.WriterIds,
		OrderBy:    req.OrderBy,
		Offset:     req.Offset,
		Limit:      req.Limit,
	}

	if req.CategoryID != 0 {
		search.CategoryID = &req.CategoryID
	}
	if !req.CreateTimeAfter.IsZero() {
		search.CreatedAfter = &req.CreateTimeAfter
	}
	if !req.CreateTimeBefore.IsZero() {
		search.CreatedBefore = &req.CreateTimeBefore
	}
	if !req.UpdateTimeAfter.IsZero() {
		search.UpdatedAfter = &req.UpdateTimeAfter
	}
	if !req.UpdateTimeBefore.IsZero() {
		search.UpdatedBefore = &req.UpdateTimeBefore
	}
	if req.IsDeleted != "" {
		isDeleted, _ := strconv.ParseBool(req.IsDeleted)
		search.IsDeleted = &isDeleted
	}

	return search, nil
}

// Articles handles GET /api/v1/article
// @Summary List articles
// @Description Filters by title, content, category, tags (all of), writer, time ranges and the deletion flag
// @Tags articles
// @Produce json
// @Param title_like query string false "Title substring"
// @Param content_has query string false "Content substring"
// @Param category_id query int false "Category ID"
// @Param tag_ids query []int false "Tag IDs, all must be attached"
// @Param writer_ids query []int false "Writer IDs"
// @Param is_deleted query bool false "Deletion flag"
// @Param order_by query string false "create_time, update_time or title, '-' for descending"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} rest.Article
// @Failure 400,422,500 {object} map[string]string
// @Router /api/v1/article [get]
func (h *Handler) Articles(c echo.Context) error {
	search, err := h.articleSearch(c)
	if err != nil {
		return h.fail(c, err)
	}

	articles, err := h.manager.Articles(c.Request().Context(), search)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticle))
}

// ArticlesCount handles GET /api/v1/article/count
// @Summary Count articles
// @Description Accepts the same filters as the article list, paging is ignored
// @Tags articles
// @Produce json
// @Success 200 {integer} int
// @Failure 400,422,500 {object} map[string]string
// @Router /api/v1/article/count [get]
func (h *Handler) ArticlesCount(c echo.Context) error {
	search, err := h.articleSearch(c)
	if err != nil {
		return h.fail(c, err)
	}

	count, err := h.manager.ArticlesCount(c.Request().Context(), search)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, count)
}

// Article handles GET /api/v1/article/:id
// @Summary Get article by ID
// @Description Returns the article with writer, category, tags and comments
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/article/{id} [get]
func (h *Handler) Article(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	return h.renderArticle(c, id)
}

func (h *Handler) renderArticle(c echo.Context, id int) error {
	article, err := h.manager.Article(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if article == nil {
		return h.handleError(c, nil, http.StatusNotFound, "article not found")
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// CreateArticle handles POST /api/v1/article
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Success 200 {object} rest.Article
// @Failure 400,401,403,409,422,500 {object} map[string]string
// @Router /api/v1/article [post]
func (h *Handler) CreateArticle(c echo.Context) error {
	var req ArticleCreateRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	article, err := h.manager.CreateArticle(c.Request().Context(), actor(c), blog.ArticleInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// UpdateArticle handles PATCH /api/v1/article/:id
// @Summary Update or flag an article
// @Description Edits title and content, or sets is_deleted=true to flag the article for deletion
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404,409,422,500 {object} map[string]string
// @Router /api/v1/article/{id} [patch]
func (h *Handler) UpdateArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req ArticleUpdateRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	err = h.manager.UpdateArticle(c.Request().Context(), actor(c), id, blog.ArticleUpdate{
		Title:     req.Title,
		Content:   req.Content,
		IsDeleted: req.IsDeleted,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return h.renderArticle(c, id)
}

// DeleteArticle handles DELETE /api/v1/article/:id
// @Summary Remove a flagged article
// @Tags articles
// @Param id path int true "Article ID"
// @Success 204
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/article/{id} [delete]
func (h *Handler) DeleteArticle(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.DeleteArticle(c.Request().Context(), actor(c), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// SetCategory handles POST /api/v1/article/:id/category
// @Summary Set the article category by name, creating it when missing
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,404,422,500 {object} map[string]string
// @Router /api/v1/article/{id}/category [post]
func (h *Handler) SetCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req NameRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	category, err := h.manager.SetCategory(c.Request().Context(), actor(c), id, req.Name)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// SetCategoryByID handles PUT /api/v1/article/:id/category/:category_id
func (h *Handler) SetCategoryByID(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	categoryID, err := pathID(c, "category_id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.SetCategoryByID(c.Request().Context(), actor(c), id, categoryID); err != nil {
		return h.fail(c, err)
	}

	return h.renderArticle(c, id)
}

// AddTag handles POST /api/v1/article/:id/tag
// @Summary Attach a tag by name, creating it when missing
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Tag
// @Failure 400,401,403,404,422,500 {object} map[string]string
// @Router /api/v1/article/{id}/tag [post]
func (h *Handler) AddTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req NameRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	tag, err := h.manager.AddTag(c.Request().Context(), actor(c), id, req.Name)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// AttachTag handles PUT /api/v1/article/:id/tag/:tag_id
func (h *Handler) AttachTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	tagID, err := pathID(c, "tag_id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.AttachTag(c.Request().Context(), actor(c), id, tagID); err != nil {
		return h.fail(c, err)
	}

	return h.renderArticle(c, id)
}

// RemoveTag handles DELETE /api/v1/article/:id/tag/:tag_id
func (h *Handler) RemoveTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	tagID, err := pathID(c, "tag_id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.RemoveTag(c.Request().Context(), actor(c), id, tagID); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
