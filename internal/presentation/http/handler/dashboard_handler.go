package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/manikandans/billbook-api/internal/application/service"
	"github.com/manikandans/billbook-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the per-role dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Biller returns today's counter summary
func (h *DashboardHandler) Biller(c *gin.Context) {
	data, err := h.dashboardService.GetBillerDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", data)
}

// Inventory returns the stock position summary
func (h *DashboardHandler) Inventory(c *gin.Context) {
	data, err := h.dashboardService.GetInventoryDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", data)
}

// Admin returns the business summary
func (h *DashboardHandler) Admin(c *gin.Context) {
	data, err := h.dashboardService.GetAdminDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard retrieved successfully", data)
}
