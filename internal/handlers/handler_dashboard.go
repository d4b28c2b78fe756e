package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/projectfinanceai/finance_tracker_app/internal/core/ports/services"
	"github.com/projectfinanceai/finance_tracker_app/internal/dto"
	"github.com/projectfinanceai/finance_tracker_app/internal/middleware"
)

// dashboardHandler handles the dashboard overview endpoint.
type dashboardHandler struct {
	reportingService portssvc.ReportingService
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := &dashboardHandler{reportingService: reportingService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard returns the aggregated overview for a month, defaulting to
// the current one.
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	month, err := monthFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month, expected YYYY-MM"})
		return
	}

	overview, err := h.reportingService.GetDashboardOverview(c.Request.Context(), userID, month)
	if err != nil {
		logger.Error("Failed to build dashboard overview",
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard overview"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"month":    month.String(),
		"overview": dto.ToDashboardOverviewResponse(overview),
	})
}
