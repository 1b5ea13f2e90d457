package handlers

import (
	"net/http"

	"podium/models"
	"podium/services/availability"

	"github.com/gin-gonic/gin"
)

// CalendarHandler exposes the read-side availability projection to the
// calendar UI. Everything here is read-only; the rendered calendar may lag
// behind the booking transaction and that is acceptable by design.
type CalendarHandler struct {
	Service availability.AvailabilityService
}

func NewCalendarHandler(svc availability.AvailabilityService) *CalendarHandler {
	return &CalendarHandler{Service: svc}
}

func (h *CalendarHandler) SlotsForDateHandler(c *gin.Context) {
	speakerID := c.Param("speakerID")
	date := c.Query("date")
	if speakerID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing speaker ID or date"})
		return
	}

	slots, err := h.Service.SlotsForDate(c.Request.Context(), speakerID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	hasAvailable := false
	for _, slot := range slots {
		if slot.Status == models.SlotAvailable {
			hasAvailable = true
			break
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"slots":        slots,
		"hasAvailable": hasAvailable,
	})
}

func (h *CalendarHandler) DatesWithSlotsHandler(c *gin.Context) {
	speakerID := c.Param("speakerID")
	if speakerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing speaker ID"})
		return
	}

	dates, err := h.Service.DatesWithAnySlot(c.Request.Context(), speakerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

func (h *CalendarHandler) AggregateStatusHandler(c *gin.Context) {
	speakerID := c.Param("speakerID")
	date := c.Query("date")
	if speakerID == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing speaker ID or date"})
		return
	}

	status, err := h.Service.AggregateStatus(c.Request.Context(), speakerID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "status": status})
}
