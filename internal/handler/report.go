package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"drivelog/internal/export"
	"drivelog/internal/middleware"
	"drivelog/internal/service"
)

// ReportHandler serves aggregated and exported views of a driver's records.
type ReportHandler struct {
	summaryService *service.SummaryService
	tripService    *service.TripService
	expenseService *service.ExpenseService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(summaryService *service.SummaryService, tripService *service.TripService, expenseService *service.ExpenseService) *ReportHandler {
	return &ReportHandler{
		summaryService: summaryService,
		tripService:    tripService,
		expenseService: expenseService,
	}
}

// Summary handles GET /summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.summaryService.DailySummary(c.Request.Context(), c.Query("driver_id"), c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, summary)
}

// Export handles GET /trips/export
func (h *ReportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	driverID := c.Query("driver_id")

	trips, err := h.tripService.ListTrips(ctx, driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	expenses, err := h.expenseService.ListExpenses(ctx, driverID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Render fully before writing so a failure can still produce an error status.
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, trips, expenses); err != nil {
		middleware.LoggerFrom(c).WithError(err).Error("render workbook")
		respondError(c, err)
		return
	}

	filename := "trips.xlsx"
	if driverID != "" {
		filename = fmt.Sprintf("trips-%s.xlsx", driverID)
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
