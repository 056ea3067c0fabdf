package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	apiV1Prefix = "/api/v1"
	healthPath  = "/health"
	tokenPath   = "/token"
)

// RegisterRoutes builds the echo instance serving the blog API.
func (h *Handler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	h.Mount(e)

	return e
}

// Mount registers all routes on an existing echo instance.
func (h *Handler) Mount(e *echo.Echo) {
	e.Use(h.logRequests)

	e.GET(healthPath, h.Health)
	e.POST(tokenPath, h.Token)

	// Reactions are anonymous; credentials on them are not inspected.
	e.POST(apiV1Prefix+"/comment/:id/like", h.LikeComment)
	e.POST(apiV1Prefix+"/comment/:id/dislike", h.DislikeComment)

	api := e.Group(apiV1Prefix, h.authenticate)

	api.GET("/member", h.Members)
	api.POST("/member", h.CreateMember)
	api.GET("/member/:id", h.Member)
	api.PATCH("/member/:id", h.UpdateMember)

	api.GET("/category", h.Categories)
	api.POST("/category", h.CreateCategory)
	api.GET("/category/:id", h.Category)
	api.DELETE("/category/:id", h.DeleteCategory)

	api.GET("/tag", h.Tags)
	api.POST("/tag", h.CreateTag)
	api.GET("/tag/:id", h.Tag)
	api.DELETE("/tag/:id", h.DeleteTag)

	api.GET("/article", h.Articles)
	api.POST("/article", h.CreateArticle)
	api.GET("/article/count", h.ArticlesCount)
	api.GET("/article/:id", h.Article)
	api.PATCH("/article/:id", h.UpdateArticle)
	api.DELETE("/article/:id", h.DeleteArticle)
	api.POST("/article/:id/category", h.SetCategory)
	api.PUT("/article/:id/category/:category_id", h.SetCategoryByID)
	api.POST("/article/:id/tag", h.AddTag)
	api.PUT("/article/:id/tag/:tag_id", h.AttachTag)
	api.DELETE("/article/:id/tag/:tag_id", h.RemoveTag)
	api.GET("/article/:id/comment", h.ArticleComments)
	api.POST("/article/:id/comment", h.CreateComment)
	api.POST("/article/:id/comment/visitor", h.CreateVisitorComment)

	api.GET("/comment/:id", h.Comment)
	api.PATCH("/comment/:id", h.UpdateComment)
	api.DELETE("/comment/:id", h.DeleteComment)
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
