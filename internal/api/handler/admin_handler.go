package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/ports"
)

// AdminHandler handles HTTP requests for admin account management.
// All routes are mounted behind RBAC(super_admin).
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type updateAdminRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email"    validate:"required,email"`
}

// List handles GET /v1/admins.
//
// @Summary      List admin accounts
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   principalResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.service.ListAdmins(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]principalResponse, 0, len(admins))
	for _, a := range admins {
		resp = append(resp, toPrincipalResponse(a))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/admins/:id.
//
// @Summary      Get an admin by id
// @Tags         admins
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Admin id"
// @Success      200  {object}  principalResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/admins/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	admin, err := h.service.GetAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPrincipalResponse(admin))
}

// Update handles PUT /v1/admins/:id.
//
// @Summary      Update an admin's profile
// @Tags         admins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Admin id"
// @Param        body  body      updateAdminRequest  true  "New profile fields"
// @Success      200   {object}  principalResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req updateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateAdmin(c.Request().Context(), c.Param("id"), ports.UpdateAdminInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPrincipalResponse(updated))
}

// Delete handles DELETE /v1/admins/:id.
//
// @Summary      Delete an admin
// @Tags         admins
// @Security     BearerAuth
// @Param        id  path  string  true  "Admin id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteAdmin(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
