package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supercash/backoffice/internal/core/domain"
	"github.com/supercash/backoffice/internal/core/ports"
)

// ClientHandler handles HTTP requests for client registration and lookup.
type ClientHandler struct {
	store  ports.Store
	issuer ports.Issuer
}

func NewClientHandler(store ports.Store, issuer ports.Issuer) *ClientHandler {
	return &ClientHandler{store: store, issuer: issuer}
}

// Create handles POST /v1/clients.
//
// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client data"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	client, err := h.issuer.RegisterClient(c.Request().Context(), ports.RegisterClientInput{
		Name:  req.Name,
		CPF:   req.CPF,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// List handles GET /v1/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        search  query     string  false  "Name or CPF fragment"
// @Success      200     {object}  listClientsResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients := h.store.ListClients(c.QueryParam("search"))
	items := make([]clientResponse, 0, len(clients))
	for _, cl := range clients {
		items = append(items, toClientResponse(cl))
	}
	return c.JSON(http.StatusOK, listClientsResponse{Items: items})
}

// Get handles GET /v1/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id (e.g. CLI-1718000000000-1a2b3c4d)"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id := c.Param("id")
	client, ok := h.store.ClientByID(id)
	if !ok {
		return fmt.Errorf("client %s: %w", id, domain.ErrClientNotFound)
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}
