package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/inventorypro/backend/internal/application/report"
)

// ReportHandler handles the dashboard reporting endpoints
type ReportHandler struct {
	BaseHandler
	dashboardService *reportapp.DashboardService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(dashboardService *reportapp.DashboardService) *ReportHandler {
	return &ReportHandler{dashboardService: dashboardService}
}

// Dashboard returns the dashboard aggregates, recomputed fully on
// every call
func (h *ReportHandler) Dashboard(c *gin.Context) {
	summary, err := h.dashboardService.Summary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// RegisterRoutes registers the reporting routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.Dashboard)
	}
}
