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

// parkingFeeHandler handles HTTP requests related to parking fee records.
type parkingFeeHandler struct {
	feeService portssvc.ParkingFeeService
}

func newParkingFeeHandler(fs portssvc.ParkingFeeService) *parkingFeeHandler {
	return &parkingFeeHandler{feeService: fs}
}

// registerParkingFeeRoutes registers routes related to parking fee records.
func registerParkingFeeRoutes(rg *gin.RouterGroup, feeService portssvc.ParkingFeeService) {
	h := newParkingFeeHandler(feeService)

	fees := rg.Group("/parking-fees")
	{
		fees.POST("", h.createParkingFee)
		fees.GET("", h.listParkingFees)
		fees.GET("/:feeID", h.getParkingFee)
		fees.PUT("/:feeID", h.updateParkingFee)
		fees.DELETE("/:feeID", h.deleteParkingFee)
	}
}

// createParkingFee godoc
// @Summary Record a parking fee
// @Description Persists a settled parking fee with its payment result
// @Tags parking fees
// @Accept  json
// @Produce  json
// @Param   fee body dto.CreateParkingFeeRequest true "Parking fee details"
// @Success 201 {object} dto.ParkingFeeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record parking fee"
// @Security BearerAuth
// @Router /parking-fees [post]
func (h *parkingFeeHandler) createParkingFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateParkingFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParkingFee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to record parking fee", slog.String("parking_area_id", req.ParkingAreaID))

	createdFee, err := h.feeService.CreateParkingFee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording parking fee", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record parking fee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record parking fee"})
		}
		return
	}

	logger.Info("Parking fee recorded successfully", slog.String("parking_fee_id", createdFee.ParkingFeeID))
	c.JSON(http.StatusCreated, dto.ToParkingFeeResponse(createdFee))
}

// listParkingFees godoc
// @Summary List parking fees
// @Description Retrieves all recorded parking fees, most recent first
// @Tags parking fees
// @Produce  json
// @Success 200 {array} dto.ParkingFeeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list parking fees"
// @Security BearerAuth
// @Router /parking-fees [get]
func (h *parkingFeeHandler) listParkingFees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fees, err := h.feeService.ListParkingFees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parking fees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parking fees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListParkingFeeResponse(fees))
}

// getParkingFee godoc
// @Summary Get a parking fee
// @Description Retrieves one parking fee record by its ID
// @Tags parking fees
// @Produce  json
// @Param   feeID path string true "Parking Fee ID"
// @Success 200 {object} dto.ParkingFeeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking fee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve parking fee"
// @Security BearerAuth
// @Router /parking-fees/{feeID} [get]
func (h *parkingFeeHandler) getParkingFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	feeID := c.Param("feeID")

	fee, err := h.feeService.GetParkingFeeByID(c.Request.Context(), feeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking fee not found", slog.String("parking_fee_id", feeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking fee not found"})
		} else {
			logger.Error("Failed to get parking fee from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve parking fee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToParkingFeeResponse(fee))
}

// updateParkingFee godoc
// @Summary Update a parking fee
// @Description Updates the provided fields of an existing parking fee record
// @Tags parking fees
// @Accept  json
// @Produce  json
// @Param   feeID path string true "Parking Fee ID"
// @Param   fee body dto.UpdateParkingFeeRequest true "Fields to update"
// @Success 200 {object} dto.ParkingFeeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking fee not found"
// @Failure 500 {object} map[string]string "Failed to update parking fee"
// @Security BearerAuth
// @Router /parking-fees/{feeID} [put]
func (h *parkingFeeHandler) updateParkingFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	feeID := c.Param("feeID")

	var req dto.UpdateParkingFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParkingFee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updatedFee, err := h.feeService.UpdateParkingFee(c.Request.Context(), feeID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking fee not found for update", slog.String("parking_fee_id", feeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking fee not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating parking fee", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update parking fee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update parking fee"})
		}
		return
	}

	logger.Info("Parking fee updated successfully", slog.String("parking_fee_id", feeID))
	c.JSON(http.StatusOK, dto.ToParkingFeeResponse(updatedFee))
}

// deleteParkingFee godoc
// @Summary Delete a parking fee
// @Description Removes a parking fee record by its ID
// @Tags parking fees
// @Produce  json
// @Param   feeID path string true "Parking Fee ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking fee not found"
// @Failure 500 {object} map[string]string "Failed to delete parking fee"
// @Security BearerAuth
// @Router /parking-fees/{feeID} [delete]
func (h *parkingFeeHandler) deleteParkingFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	feeID := c.Param("feeID")

	if err := h.feeService.DeleteParkingFee(c.Request.Context(), feeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking fee not found for delete", slog.String("parking_fee_id", feeID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking fee not found"})
		} else {
			logger.Error("Failed to delete parking fee in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete parking fee"})
		}
		return
	}

	logger.Info("Parking fee deleted", slog.String("parking_fee_id", feeID))
	c.Status(http.StatusNoContent)
}
