package routes

import (
	"car_maintenance/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports = "/reports"
	PathScans   = "/scans"
)

// Scans are open to anonymous users; the report is only saved when a session exists.
func addReportRoutes(public, private *gin.RouterGroup, h *handlers.ReportHandler) {
	public.POST(PathReports+"/:kind", h.SubmitMedia)
	public.POST(PathScans+"/live", h.LiveScan)
	private.GET(PathReports, h.ListReports)
}
