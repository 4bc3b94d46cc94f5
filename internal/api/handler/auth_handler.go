package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type registerAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type principalResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toPrincipalResponse(p *domain.Principal) principalResponse {
	return principalResponse{
		ID:       p.ID,
		Username: p.Username,
		Email:    p.Email,
		Role:     string(p.Role),
	}
}

// Login authenticates an admin or super-admin and returns a bearer token.
//
// @Summary      Obtain a JWT bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		// Missing fields fail exactly like bad credentials: no probing.
		return domain.ErrInvalidCredentials
	}

	result, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
	})
}

// Me returns the account behind the presented token.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  principalResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	username, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	p, err := h.authService.CurrentPrincipal(c.Request().Context(), username, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPrincipalResponse(p))
}

// RegisterAdmin creates a new admin account. Super-admin only.
//
// @Summary      Register a new admin
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerAdminRequest  true  "Admin details"
// @Success      201   {object}  principalResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admins [post]
func (h *AuthHandler) RegisterAdmin(c echo.Context) error {
	var req registerAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.authService.RegisterAdmin(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPrincipalResponse(created))
}
