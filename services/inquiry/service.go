// File: services/inquiry/service.go
package inquiry

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	inquiryRepo "podium/database/repository/inquiry"
	"podium/models"
	"podium/services/notification"
	"podium/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InquiryService records free-text contact requests. Inquiries live beside
// the booking flow, not inside it: they never reference a slot and carry no
// concurrency contract beyond append.
type InquiryService interface {
	Submit(ctx context.Context, organizerID string, req models.SubmitInquiryRequest) (*models.Inquiry, error)
	UpdateStatus(ctx context.Context, speakerID, inquiryID, status string) error
	ListForSpeaker(ctx context.Context, speakerID string) ([]models.Inquiry, error)
}

// DefaultInquiryService is the production implementation.
type DefaultInquiryService struct {
	Repo         inquiryRepo.InquiryRepository
	Notification notification.NotificationService
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submit records a new inquiry with status "pending". organizerID may be
// empty; unauthenticated visitors can reach out too.
func (s *DefaultInquiryService) Submit(ctx context.Context, organizerID string, req models.SubmitInquiryRequest) (*models.Inquiry, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, &utils.ValidationError{Reason: "name is required"}
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, &utils.ValidationError{Reason: "message is required"}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, &utils.ValidationError{Reason: fmt.Sprintf("email %q is not valid", req.Email)}
	}
	if req.EventDate != "" {
		if _, err := utils.ParseDate(req.EventDate); err != nil {
			return nil, &utils.ValidationError{Reason: err.Error()}
		}
	}

	inq := &models.Inquiry{
		ID:          uuid.New().String(),
		SpeakerID:   req.SpeakerID,
		OrganizerID: organizerID,
		Name:        strings.TrimSpace(req.Name),
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     strings.TrimSpace(req.Message),
		EventDate:   req.EventDate,
		Status:      models.InquiryPending,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Insert(ctx, inq); err != nil {
		return nil, &utils.StorageError{Op: "insert inquiry", Err: err}
	}

	ev := models.InquiryEvent{
		InquiryID: inq.ID,
		SpeakerID: inq.SpeakerID,
		Name:      inq.Name,
		Email:     inq.Email,
	}
	if err := s.Notification.InquirySubmitted(ctx, ev); err != nil {
		utils.GetLogger().Warn("notification enqueue failed",
			zap.String("inquiryID", inq.ID), zap.Error(err))
	}
	return inq, nil
}

// UpdateStatus is the speaker-side acknowledgement. The write is scoped to
// the calling speaker, so another speaker's inquiry ID reads as not found.
func (s *DefaultInquiryService) UpdateStatus(ctx context.Context, speakerID, inquiryID, status string) error {
	switch status {
	case models.InquiryPending, models.InquiryResponded, models.InquiryClosed:
	default:
		return &utils.ValidationError{Reason: fmt.Sprintf("unknown inquiry status %q", status)}
	}

	err := s.Repo.UpdateStatus(ctx, speakerID, inquiryID, status)
	if errors.Is(err, inquiryRepo.ErrNotFound) {
		return &utils.NotFoundError{Resource: "inquiry", ID: inquiryID}
	}
	if err != nil {
		return &utils.StorageError{Op: "update inquiry status", Err: err}
	}

	utils.GetLogger().Info("inquiry status updated",
		zap.String("inquiryID", inquiryID),
		zap.String("speakerID", speakerID),
		zap.String("status", status))
	return nil
}

// ListForSpeaker returns the speaker's inquiries, newest first.
func (s *DefaultInquiryService) ListForSpeaker(ctx context.Context, speakerID string) ([]models.Inquiry, error) {
	inquiries, err := s.Repo.ListBySpeaker(ctx, speakerID)
	if err != nil {
		return nil, &utils.StorageError{Op: "list inquiries", Err: err}
	}
	return inquiries, nil
}
