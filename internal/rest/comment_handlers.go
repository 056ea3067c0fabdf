package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/labstack/echo/v4"
)

// ArticleComments handles GET /api/v1/article/:id/comment
// @Summary List comments of an article
// @Tags comments
// @Produce json
// @Param id path int true "Article ID"
// @Param order_by query string false "create_time, likes or dislikes, '-' for descending"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {object} rest.CommentPage
// @Failure 400,422,500 {object} map[string]string
// @Router /api/v1/article/{id}/comment [get]
func (h *Handler) ArticleComments(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req CommentListRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	comments, total, err := h.manager.Comments(c.Request().Context(), db.CommentSearch{
		ArticleID: &id,
		OrderBy:   req.OrderBy,
		Offset:    req.Offset,
		Limit:     req.Limit,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, CommentPage{Comments: Map(comments, NewComment), Total: total})
}

// CreateComment handles POST /api/v1/article/:id/comment
// @Summary Comment as the authenticated member
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Comment
// @Failure 400,401,403,404,422,500 {object} map[string]string
// @Router /api/v1/article/{id}/comment [post]
func (h *Handler) CreateComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	comment, err := h.manager.CreateMemberComment(c.Request().Context(), actor(c), id, blog.CommentInput{
		Content:       req.Content,
		CommenterName: req.CommenterName,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// CreateVisitorComment handles POST /api/v1/article/:id/comment/visitor
// @Summary Comment anonymously under a commenter name
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} rest.Comment
// @Failure 400,404,422,500 {object} map[string]string
// @Router /api/v1/article/{id}/comment/visitor [post]
func (h *Handler) CreateVisitorComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req CommentRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	comment, err := h.manager.CreateVisitorComment(c.Request().Context(), id, blog.CommentInput{
		Content:       req.Content,
		CommenterName: req.CommenterName,
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// Comment handles GET /api/v1/comment/:id
func (h *Handler) Comment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	return h.renderComment(c, id)
}

func (h *Handler) renderComment(c echo.Context, id int) error {
	comment, err := h.manager.Comment(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if comment == nil {
		return h.handleError(c, nil, http.StatusNotFound, "comment not found")
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// UpdateComment handles PATCH /api/v1/comment/:id
// @Summary Edit a comment
// @Description Only the member who wrote the comment may edit it
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} rest.Comment
// @Failure 400,401,403,404,422,500 {object} map[string]string
// @Router /api/v1/comment/{id} [patch]
func (h *Handler) UpdateComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req CommentUpdateRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	comment, err := h.manager.UpdateComment(c.Request().Context(), actor(c), id, req.Content)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewComment(*comment))
}

// DeleteComment handles DELETE /api/v1/comment/:id
func (h *Handler) DeleteComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.DeleteComment(c.Request().Context(), actor(c), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// LikeComment handles POST /api/v1/comment/:id/like
func (h *Handler) LikeComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.LikeComment(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return h.renderComment(c, id)
}

// DislikeComment handles POST /api/v1/comment/:id/dislike
func (h *Handler) DislikeComment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.DislikeComment(c.Request().Context(), id); err != nil {
		return h.fail(c, err)
	}

	return h.renderComment(c, id)
}
