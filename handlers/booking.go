package handlers

import (
	"net/http"

	"podium/models"
	"podium/services/booking"
	"podium/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking coordinator over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) AttemptBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	organizerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organizer not authenticated"})
		return
	}

	var req models.AttemptBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	bk, err := h.Service.AttemptBooking(c.Request.Context(), organizerID, req.SlotID, req.Event, req.Contact)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking " + bk.Status,
		"booking": bk,
	})
}

func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	actorID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	bookingID := c.Param("bookingID")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	if err := h.Service.CancelBooking(c.Request.Context(), actorID, bookingID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}

func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	bookingID := c.Param("bookingID")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	if err := h.Service.ConfirmBooking(c.Request.Context(), speakerID, bookingID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed"})
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	bookingID := c.Param("bookingID")
	if bookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing booking ID in path"})
		return
	}

	bk, err := h.Service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

func (h *BookingHandler) ListSpeakerBookingsHandler(c *gin.Context) {
	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	bookings, err := h.Service.ListForSpeaker(c.Request.Context(), speakerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) ListOrganizerBookingsHandler(c *gin.Context) {
	organizerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Organizer not authenticated"})
		return
	}

	bookings, err := h.Service.ListForOrganizer(c.Request.Context(), organizerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
