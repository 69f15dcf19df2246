package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KayisiMuhendisi/Adisyon/internal/services"
)

// ReportHandler holds the session service for the report endpoints.
type ReportHandler struct {
	sessionService services.SessionService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ss services.SessionService) *ReportHandler {
	return &ReportHandler{sessionService: ss}
}

// GetDailyReport returns the running cash/card totals and their sum.
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.sessionService.DailyReport())
}

// GetSettlements returns the settlement history of the session, oldest
// first.
func (h *ReportHandler) GetSettlements(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"settlements": h.sessionService.Settlements()})
}
