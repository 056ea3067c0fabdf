package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/daniilsolovey/blog-portal/internal/auth"
	"github.com/daniilsolovey/blog-portal/internal/blog"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

var errBadRequest = errors.New("bad request")

type Handler struct {
	manager  *blog.Manager
	tokens   *auth.TokenManager
	tokenTTL time.Duration
	log      *slog.Logger
}

func NewHandler(manager *blog.Manager, tokens *auth.TokenManager, tokenTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		manager:  manager,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	if statusCode >= http.StatusInternalServerError {
		h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	} else {
		h.log.Debug("handleError", "error", err, "statusCode", statusCode, "message", message)
	}

	if statusCode == http.StatusUnauthorized {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	}

	return c.JSON(statusCode, map[string]string{"error": message})
}

// fail writes err with the status of its outcome kind.
func (h *Handler) fail(c echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}

	return h.handleError(c, err, status, message)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, blog.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, blog.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, blog.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, blog.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, blog.ErrInvalidRequest):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// bind decodes the request into req and validates it.
func bind(c echo.Context, req validation.Validatable) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}

	return validate(req)
}

func validate(req validation.Validatable) error {
	if err := req.Validate(); err != nil {
		return fmt.Errorf("%w: %v", blog.ErrInvalidRequest, err)
	}

	return nil
}

func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}

	return id, nil
}

func queryBool(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s", errBadRequest, name)
	}

	return v, nil
}

// actor returns the authenticated member of the request, if any.
func actor(c echo.Context) *blog.Member {
	m, _ := c.Get(actorKey).(*blog.Member)
	return m
}

// authenticate resolves a bearer token to the acting member. Requests without
// the Authorization header pass through anonymously.
func (h *Handler) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return next(c)
		}

		scheme, token, _ := strings.Cut(header, " ")
		if !strings.EqualFold(scheme, "Bearer") || token == "" {
			return h.fail(c, fmt.Errorf("%w: malformed authorization header", blog.ErrUnauthenticated))
		}

		name, err := h.tokens.Resolve(token)
		if err != nil {
			return h.fail(c, fmt.Errorf("%w: %v", blog.ErrUnauthenticated, err))
		}

		m, err := h.manager.ResolveActor(c.Request().Context(), name)
		if err != nil {
			return h.fail(c, err)
		}

		c.Set(actorKey, m)
		return next(c)
	}
}

func (h *Handler) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
