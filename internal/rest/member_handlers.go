package rest

import (
	"net/http"

	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/labstack/echo/v4"
)

// Token handles POST /token
// @Summary Issue an access token
// @Description Exchanges form-encoded username and password for a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Success 200 {object} rest.Token
// @Failure 401,403,500 {object} map[string]string
// @Router /token [post]
func (h *Handler) Token(c echo.Context) error {
	member, err := h.manager.Authenticate(c.Request().Context(), c.FormValue("username"), c.FormValue("password"))
	if err != nil {
		return h.fail(c, err)
	}

	token, err := h.tokens.Issue(member.Name, h.tokenTTL)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Token{AccessToken: token, TokenType: "bearer"})
}

// Members handles GET /api/v1/member
// @Summary List members
// @Tags members
// @Produce json
// @Param name_like query string false "Name substring"
// @Param role query string false "Owner, Manager or Member"
// @Param is_active query bool false "Active flag"
// @Param offset query int false "Offset"
// @Param limit query int false "Page size (default: 10)"
// @Success 200 {array} rest.Member
// @Failure 400,401,422,500 {object} map[string]string
// @Router /api/v1/member [get]
func (h *Handler) Members(c echo.Context) error {
	if err := blog.RequireActor(actor(c)); err != nil {
		return h.fail(c, err)
	}

	var req MemberListRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	search := db.MemberSearch{
		NameLike: req.NameLike,
		IsActive: req.IsActive,
		Offset:   req.Offset,
		Limit:    req.Limit,
	}
	if req.Role != nil {
		role, err := blog.ParseRole(*req.Role)
		if err != nil {
			return h.fail(c, err)
		}
		r := int(role)
		search.Role = &r
	}

	members, err := h.manager.Members(c.Request().Context(), search)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, Map(members, NewMember))
}

// Member handles GET /api/v1/member/:id
func (h *Handler) Member(c echo.Context) error {
	if err := blog.RequireActor(actor(c)); err != nil {
		return h.fail(c, err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	member, err := h.manager.Member(c.Request().Context(), id)
	if err != nil {
		return h.fail(c, err)
	} else if member == nil {
		return h.handleError(c, nil, http.StatusNotFound, "member not found")
	}

	return c.JSON(http.StatusOK, NewMember(*member))
}

// CreateMember handles POST /api/v1/member
// @Summary Create a member
// @Description Owner creates Managers and Members, a Manager creates Members only
// @Tags members
// @Accept json
// @Produce json
// @Success 200 {object} rest.Member
// @Failure 400,401,403,409,422,500 {object} map[string]string
// @Router /api/v1/member [post]
func (h *Handler) CreateMember(c echo.Context) error {
	var req MemberCreateRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	input := blog.MemberInput{Name: req.Name, Password: req.Password, Role: blog.RoleMember}
	if req.Role != nil {
		role, err := blog.ParseRole(*req.Role)
		if err != nil {
			return h.fail(c, err)
		}
		input.Role = role
	}

	member, err := h.manager.CreateMember(c.Request().Context(), actor(c), input)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewMember(*member))
}

// UpdateMember handles PATCH /api/v1/member/:id
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} rest.Member
// @Failure 400,401,403,404,409,422,500 {object} map[string]string
// @Router /api/v1/member/{id} [patch]
func (h *Handler) UpdateMember(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req MemberUpdateRequest
	if err := bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	update := blog.MemberUpdate{Name: req.Name, Password: req.Password, IsActive: req.IsActive}
	if req.Role != nil {
		role, err := blog.ParseRole(*req.Role)
		if err != nil {
			return h.fail(c, err)
		}
		update.Role = &role
	}

	member, err := h.manager.UpdateMember(c.Request().Context(), actor(c), id, update)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, NewMember(*member))
}
