package handlers

import (
	"net/http"

	"podium/models"
	"podium/services/inquiry"
	"podium/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler exposes the inquiry log. Submission is open to anonymous
// visitors; listing and acknowledgement require a speaker session.
type InquiryHandler struct {
	Service inquiry.InquiryService
}

func NewInquiryHandler(svc inquiry.InquiryService) *InquiryHandler {
	return &InquiryHandler{Service: svc}
}

func (h *InquiryHandler) SubmitInquiryHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.SubmitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid inquiry request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	// Anonymous submissions leave the organizer ID empty.
	organizerID, _ := subjectID(c)

	inq, err := h.Service.Submit(c.Request.Context(), organizerID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Inquiry sent",
		"inquiry": inq,
	})
}

func (h *InquiryHandler) UpdateInquiryStatusHandler(c *gin.Context) {
	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	inquiryID := c.Param("inquiryID")
	if inquiryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing inquiry ID in path"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid status in request body"})
		return
	}

	if err := h.Service.UpdateStatus(c.Request.Context(), speakerID, inquiryID, body.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry status updated"})
}

func (h *InquiryHandler) ListInquiriesHandler(c *gin.Context) {
	speakerID, ok := subjectID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Speaker not authenticated"})
		return
	}

	inquiries, err := h.Service.ListForSpeaker(c.Request.Context(), speakerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"inquiries": inquiries})
}
