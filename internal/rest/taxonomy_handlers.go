package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Categories handles GET /api/v1/category
// @Summary List categories
// @Tags categories
// @Produce json
// @Param hide_unused query bool false "Only categories used by at least one article"
// @Success 200 {array} rest.Category
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/category [get]
func (h *Handler) Categories(c echo.Context) error {
	hideUnused, err := queryBool(c, "hide_unused")
	if err != nil {
		return h.fail(c, err)
	}

	categories, err := h.manager.Categories(c.Request().Context(), hideUnused)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

func (h *Handler) Category(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	category, err := h.manager.Category(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if category == nil {
		return h.handleError(c, nil, http.StatusNotFound, "category not found")
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CreateCategory handles POST /api/v1/category
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Success 200 {object} rest.Category
// @Failure 400,401,403,409,422,500 {object} map[string]string
// @Router /api/v1/category [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	category, err := h.manager.CreateCategory(c.Request().Context(), actor(c), req.Name)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.DeleteCategory(c.Request().Context(), actor(c), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Tags handles GET /api/v1/tag
// @Summary List tags
// @Tags tags
// @Produce json
// @Param hide_unused query bool false "Only tags attached to at least one article"
// @Success 200 {array} rest.Tag
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/tag [get]
func (h *Handler) Tags(c echo.Context) error {
	hideUnused, err := queryBool(c, "hide_unused")
	if err != nil {
		return h.fail(c, err)
	}

	tags, err := h.manager.Tags(c.Request().Context(), hideUnused)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(tags, NewTag))
}

func (h *Handler) Tag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	tag, err := h.manager.Tag(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if tag == nil {
		return h.handleError(c, nil, http.StatusNotFound, "tag not found")
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

// CreateTag handles POST /api/v1/tag
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Success 200 {object} rest.Tag
// @Failure 400,401,403,409,422,500 {object} map[string]string
// @Router /api/v1/tag [post]
func (h *Handler) CreateTag(c echo.Context) error {
	var req NameRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	tag, err := h.manager.CreateTag(c.Request().Context(), actor(c), req.Name)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewTag(*tag))
}

func (h *Handler) DeleteTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.manager.DeleteTag(c.Request().Context(), actor(c), id); err != nil {
		return h.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
