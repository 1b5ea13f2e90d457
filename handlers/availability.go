package handlers

import (
	"net/http"

	"podium/models"
	"podium/services/availability"
	"podium/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes slot management to authenticated speakers.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) CreateSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot creation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), speakerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Slot added",
		"slot":    slot,
	})
}

func (h *AvailabilityHandler) ListSlotsHandler(c *gin.Context) {
	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	slots, err := h.Service.ListSlots(c.Request.Context(), speakerID, c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (h *AvailabilityHandler) DeleteSlotHandler(c *gin.Context) {
	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	slotID := c.Param("slotID")
	if slotID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID in path"})
		return
	}

	if err := h.Service.DeleteSlot(c.Request.Context(), speakerID, slotID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Slot removed"})
}
