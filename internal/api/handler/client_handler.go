package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JpHds/client-admin-api/internal/core/domain"
	"github.com/JpHds/client-admin-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for the client roster.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func toClientResponse(cl *domain.Client) clientResponse {
	return clientResponse{
		ID:        cl.ID,
		Username:  cl.Username,
		Email:     cl.Email,
		Phone:     cl.Phone,
		Status:    string(cl.Status),
		CreatedAt: cl.CreatedAt,
		UpdatedAt: cl.UpdatedAt,
	}
}

// Create handles POST /v1/clients.
//
// @Summary      Create a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreateClient(c.Request().Context(), ports.ClientInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toClientResponse(created))
}

// List handles GET /v1/clients.
//
// @Summary      List client records
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clientResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		resp = append(resp, toClientResponse(cl))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Update handles PUT /v1/clients/:id.
//
// @Summary      Update a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "New client fields"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), ports.ClientInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(updated))
}

// Delete handles DELETE /v1/clients/:id.
//
// @Summary      Delete a client record
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
