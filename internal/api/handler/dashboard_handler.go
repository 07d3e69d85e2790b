package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supercash/backoffice/internal/core/ports"
)

const recentGuidesLimit = 5

// DashboardHandler serves the headline figures of the backoffice.
type DashboardHandler struct {
	store ports.Store
}

func NewDashboardHandler(store ports.Store) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// Get handles GET /v1/dashboard.
//
// @Summary      Dashboard statistics and recent guides
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, dashboardResponse{
		Stats:        h.store.Stats(),
		RecentGuides: toGuideResponses(h.store.RecentGuides(recentGuidesLimit)),
	})
}
