package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/dto"
	"github.com/parkingflow/parking_flow_app/internal/middleware"
)

// paymentHandler handles HTTP requests for payment previews.
type paymentHandler struct {
	paymentService portssvc.PaymentService
}

func newPaymentHandler(ps portssvc.PaymentService) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

const dateParamLayout = "2006-01-02"

// previewPayment godoc
// @Summary Preview the payment for a parking session
// @Description Computes the charge for a parking session in every configured currency, using the exchange rates of the parking date. Nothing is persisted.
// @Tags payments
// @Produce  json
// @Param   areaID path string true "Parking Area ID"
// @Param   startTime query string true "Session start (RFC 3339)"
// @Param   endTime query string true "Session end (RFC 3339)"
// @Param   date query string false "Parking date (yyyy-MM-dd), defaults to the start time's date"
// @Success 200 {object} dto.PaymentPreviewResponse
// @Failure 400 {object} map[string]string "Invalid parameters or non-positive duration"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking area not found"
// @Failure 500 {object} map[string]string "Failed to calculate payment"
// @Failure 503 {object} map[string]string "Exchange rates unavailable"
// @Security BearerAuth
// @Router /parking-areas/{areaID}/payment-preview [get]
func (h *paymentHandler) previewPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("areaID")

	startTime, err := time.Parse(time.RFC3339, c.Query("startTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "startTime must be a valid RFC 3339 timestamp"})
		return
	}
	endTime, err := time.Parse(time.RFC3339, c.Query("endTime"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "endTime must be a valid RFC 3339 timestamp"})
		return
	}

	date := startTime
	if dateParam := c.Query("date"); dateParam != "" {
		date, err = time.Parse(dateParamLayout, dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted yyyy-MM-dd"})
			return
		}
	}

	logger = logger.With(slog.String("parking_area_id", areaID))
	logger.Info("Received request to preview payment",
		slog.Time("start_time", startTime),
		slog.Time("end_time", endTime),
	)

	quote, err := h.paymentService.PreviewPayment(c.Request.Context(), areaID, startTime, endTime, date)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Parking area not found for payment preview")
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking area not found"})
		case errors.Is(err, apperrors.ErrInvalidDuration):
			logger.Warn("Non-positive parking duration in payment preview")
			c.JSON(http.StatusBadRequest, gin.H{"error": "End time must be after start time"})
		case errors.Is(err, apperrors.ErrRatesUnavailable):
			logger.Error("Exchange rates unavailable for payment preview", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
		default:
			logger.Error("Failed to calculate payment preview", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate payment"})
		}
		return
	}

	logger.Info("Payment preview calculated")
	c.JSON(http.StatusOK, dto.ToPaymentPreviewResponse(quote))
}
