package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/parkingflow/parking_flow_app/internal/apperrors"
	portssvc "github.com/parkingflow/parking_flow_app/internal/core/ports/services"
	"github.com/parkingflow/parking_flow_app/internal/dto"
	"github.com/parkingflow/parking_flow_app/internal/middleware"
)

// ratesHandler handles HTTP requests for the exchange-rate feed.
type ratesHandler struct {
	ratesService portssvc.RatesService
}

func newRatesHandler(rs portssvc.RatesService) *ratesHandler {
	return &ratesHandler{ratesService: rs}
}

// registerRatesRoutes registers the exchange-rate feed routes.
func registerRatesRoutes(rg *gin.RouterGroup, ratesService portssvc.RatesService) {
	h := newRatesHandler(ratesService)

	rates := rg.Group("/rates")
	{
		rates.GET("/latest", h.getLatestRates)
	}
}

// getLatestRates godoc
// @Summary Get the latest exchange rates
// @Description Fetches the current exchange-rate snapshot for the configured target currencies from the upstream feed
// @Tags rates
// @Produce  json
// @Success 200 {object} dto.RateSnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to fetch exchange rates"
// @Failure 503 {object} map[string]string "Exchange rates unavailable"
// @Security BearerAuth
// @Router /rates/latest [get]
func (h *ratesHandler) getLatestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot, err := h.ratesService.LatestRates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRatesUnavailable) {
			logger.Error("Exchange rates unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rates are currently unavailable"})
		} else {
			logger.Error("Failed to fetch exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch exchange rates"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snapshot))
}
