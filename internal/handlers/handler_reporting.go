package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/dto"
	"github.com/parkingflow/parking_flow_app/internal/middleware"
)

// reportingHandler handles HTTP requests for earnings reports and the dashboard.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard and earnings report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reports := rg.Group("/reports")
	{
		reports.GET("/earnings", h.getEarningsSeries)
		reports.GET("/earnings/:year/:month", h.getEarningsForMonth)
	}
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Retrieves entity counts plus current-month, previous-month and six-month earnings
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to assemble dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("Failed to assemble dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(data))
}

func monthRangeParams(c *gin.Context) (fromMonth, fromYear, toMonth, toYear int, err error) {
	fromMonth, err = strconv.Atoi(c.Query("fromMonth"))
	if err != nil || fromMonth < 1 || fromMonth > 12 {
		return 0, 0, 0, 0, errors.New("fromMonth must be an integer between 1 and 12")
	}
	fromYear, err = strconv.Atoi(c.Query("fromYear"))
	if err != nil {
		return 0, 0, 0, 0, errors.New("fromYear must be an integer")
	}
	toMonth, err = strconv.Atoi(c.Query("toMonth"))
	if err != nil || toMonth < 1 || toMonth > 12 {
		return 0, 0, 0, 0, errors.New("toMonth must be an integer between 1 and 12")
	}
	toYear, err = strconv.Atoi(c.Query("toYear"))
	if err != nil {
		return 0, 0, 0, 0, errors.New("toYear must be an integer")
	}
	return fromMonth, fromYear, toMonth, toYear, nil
}

// getEarningsSeries godoc
// @Summary Get monthly earnings over a range
// @Description Sums USD earnings per calendar month over the inclusive month range, newest month first. Months without records are omitted.
// @Tags reports
// @Produce  json
// @Param   fromMonth query int true "Range start month (1-12)"
// @Param   fromYear query int true "Range start year"
// @Param   toMonth query int true "Range end month (1-12)"
// @Param   toYear query int true "Range end year"
// @Success 200 {array} dto.MonthlyEarningsResponse
// @Failure 400 {object} map[string]string "Invalid range parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Earnings data unavailable"
// @Security BearerAuth
// @Router /reports/earnings [get]
func (h *reportingHandler) getEarningsSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fromMonth, fromYear, toMonth, toYear, err := monthRangeParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	series, err := h.reportingService.SeriesForRange(c.Request.Context(), fromMonth, fromYear, toMonth, toYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrAggregationUnavailable) {
			logger.Error("Earnings data unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Earnings data is currently unavailable"})
		} else {
			logger.Error("Failed to aggregate earnings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate earnings"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthlyEarningsResponse(series))
}

// getEarningsForMonth godoc
// @Summary Get the earnings of one month
// @Description Sums the USD earnings of one calendar month. A month with no fee records yields 404, not a zero total.
// @Tags reports
// @Produce  json
// @Param   year path int true "Year"
// @Param   month path int true "Month (1-12)"
// @Success 200 {object} dto.MonthlyEarningsResponse
// @Failure 400 {object} map[string]string "Invalid year or month"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No earnings recorded for the month"
// @Failure 503 {object} map[string]string "Earnings data unavailable"
// @Security BearerAuth
// @Router /reports/earnings/{year}/{month} [get]
func (h *reportingHandler) getEarningsForMonth(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be an integer between 1 and 12"})
		return
	}

	earnings, err := h.reportingService.TotalForMonth(c.Request.Context(), month, year)
	if err != nil {
		if errors.Is(err, apperrors.ErrAggregationUnavailable) {
			logger.Error("Earnings data unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Earnings data is currently unavailable"})
		} else {
			logger.Error("Failed to aggregate earnings", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate earnings"})
		}
		return
	}
	if earnings == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No earnings recorded for the month"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyEarningsResponse{
		Year:     earnings.Year,
		Month:    earnings.Month,
		TotalUsd: earnings.TotalUsd,
	})
}
