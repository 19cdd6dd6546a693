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

// parkingAreaHandler handles HTTP requests related to parking areas.
type parkingAreaHandler struct {
	areaService portssvc.ParkingAreaService
}

func newParkingAreaHandler(as portssvc.ParkingAreaService) *parkingAreaHandler {
	return &parkingAreaHandler{areaService: as}
}

// registerParkingAreaRoutes registers routes related to parking areas.
func registerParkingAreaRoutes(rg *gin.RouterGroup, areaService portssvc.ParkingAreaService, paymentService portssvc.PaymentService) {
	h := newParkingAreaHandler(areaService)
	ph := newPaymentHandler(paymentService)

	areas := rg.Group("/parking-areas")
	{
		areas.POST("", h.createParkingArea)
		areas.GET("", h.listParkingAreas)
		areas.GET("/:areaID", h.getParkingArea)
		areas.PUT("/:areaID", h.updateParkingArea)
		areas.DELETE("/:areaID", h.deleteParkingArea)
		areas.GET("/:areaID/fees", h.listParkingFeesForArea)
		areas.GET("/:areaID/payment-preview", ph.previewPayment)
	}
}

// createParkingArea godoc
// @Summary Create a new parking area
// @Description Adds a new parking area with its hourly rates and discount
// @Tags parking areas
// @Accept  json
// @Produce  json
// @Param   area body dto.CreateParkingAreaRequest true "Parking area details"
// @Success 201 {object} dto.ParkingAreaResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create parking area"
// @Security BearerAuth
// @Router /parking-areas [post]
func (h *parkingAreaHandler) createParkingArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateParkingAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateParkingArea", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create parking area", slog.String("name", req.Name))

	createdArea, err := h.areaService.CreateParkingArea(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating parking area", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create parking area in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create parking area"})
		}
		return
	}

	logger.Info("Parking area created successfully", slog.String("parking_area_id", createdArea.ParkingAreaID))
	c.JSON(http.StatusCreated, dto.ToParkingAreaResponse(createdArea))
}

// listParkingAreas godoc
// @Summary List parking areas
// @Description Retrieves all parking areas
// @Tags parking areas
// @Produce  json
// @Success 200 {array} dto.ParkingAreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list parking areas"
// @Security BearerAuth
// @Router /parking-areas [get]
func (h *parkingAreaHandler) listParkingAreas(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	areas, err := h.areaService.ListParkingAreas(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list parking areas", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parking areas"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListParkingAreaResponse(areas))
}

// getParkingArea godoc
// @Summary Get a parking area
// @Description Retrieves one parking area by its ID
// @Tags parking areas
// @Produce  json
// @Param   areaID path string true "Parking Area ID"
// @Success 200 {object} dto.ParkingAreaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking area not found"
// @Failure 500 {object} map[string]string "Failed to retrieve parking area"
// @Security BearerAuth
// @Router /parking-areas/{areaID} [get]
func (h *parkingAreaHandler) getParkingArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("areaID")

	area, err := h.areaService.GetParkingAreaByID(c.Request.Context(), areaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking area not found", slog.String("parking_area_id", areaID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking area not found"})
		} else {
			logger.Error("Failed to get parking area from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve parking area"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToParkingAreaResponse(area))
}

// updateParkingArea godoc
// @Summary Update a parking area
// @Description Updates the provided fields of an existing parking area
// @Tags parking areas
// @Accept  json
// @Produce  json
// @Param   areaID path string true "Parking Area ID"
// @Param   area body dto.UpdateParkingAreaRequest true "Fields to update"
// @Success 200 {object} dto.ParkingAreaResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking area not found"
// @Failure 500 {object} map[string]string "Failed to update parking area"
// @Security BearerAuth
// @Router /parking-areas/{areaID} [put]
func (h *parkingAreaHandler) updateParkingArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("areaID")

	var req dto.UpdateParkingAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateParkingArea", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updatedArea, err := h.areaService.UpdateParkingArea(c.Request.Context(), areaID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking area not found for update", slog.String("parking_area_id", areaID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking area not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating parking area", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update parking area in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update parking area"})
		}
		return
	}

	logger.Info("Parking area updated successfully", slog.String("parking_area_id", areaID))
	c.JSON(http.StatusOK, dto.ToParkingAreaResponse(updatedArea))
}

// deleteParkingArea godoc
// @Summary Delete a parking area
// @Description Removes a parking area by its ID
// @Tags parking areas
// @Produce  json
// @Param   areaID path string true "Parking Area ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking area not found"
// @Failure 500 {object} map[string]string "Failed to delete parking area"
// @Security BearerAuth
// @Router /parking-areas/{areaID} [delete]
func (h *parkingAreaHandler) deleteParkingArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("areaID")

	if err := h.areaService.DeleteParkingArea(c.Request.Context(), areaID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking area not found for delete", slog.String("parking_area_id", areaID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking area not found"})
		} else {
			logger.Error("Failed to delete parking area in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete parking area"})
		}
		return
	}

	logger.Info("Parking area deleted", slog.String("parking_area_id", areaID))
	c.Status(http.StatusNoContent)
}

// listParkingFeesForArea godoc
// @Summary List fee records of a parking area
// @Description Retrieves all fee records charged in one parking area
// @Tags parking areas
// @Produce  json
// @Param   areaID path string true "Parking Area ID"
// @Success 200 {array} dto.ParkingFeeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parking area not found"
// @Failure 500 {object} map[string]string "Failed to list parking fees"
// @Security BearerAuth
// @Router /parking-areas/{areaID}/fees [get]
func (h *parkingAreaHandler) listParkingFeesForArea(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	areaID := c.Param("areaID")

	fees, err := h.areaService.ListParkingFeesForArea(c.Request.Context(), areaID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Parking area not found for fee listing", slog.String("parking_area_id", areaID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Parking area not found"})
		} else {
			logger.Error("Failed to list parking fees for area", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list parking fees"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListParkingFeeResponse(fees))
}
