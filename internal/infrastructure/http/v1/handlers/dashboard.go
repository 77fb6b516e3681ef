package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopsetup/internal/domain/setup"
)

// DashboardHandler serves the dashboard aggregate.
type DashboardHandler struct {
	*BaseHandler
	dashboard *setup.DashboardService
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(base *BaseHandler, dashboard *setup.DashboardService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: base, dashboard: dashboard}
}

// Get handles GET /dashboard. A failed aggregate aborts the whole response;
// there is no partial dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.dashboard.Execute(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
