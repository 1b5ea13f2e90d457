// File: services/booking/service.go
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	availabilityRepo "podium/database/repository/availability"
	bookingRepo "podium/database/repository/booking"
	"podium/models"
	"podium/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AttemptBooking tries to claim slotID for the organizer. The read of the
// slot is advisory only; the authoritative check is the compare-and-swap
// inside the repository transaction, so two attempts racing past the read
// still resolve to exactly one winner.
func (s *DefaultBookingService) AttemptBooking(
	ctx context.Context,
	organizerID, slotID string,
	details models.EventDetails,
	contact models.ContactSnapshot,
) (*models.Booking, error) {
	logger := utils.GetLogger()

	slot, err := s.Slots.GetByID(ctx, slotID)
	if errors.Is(err, availabilityRepo.ErrNotFound) {
		return nil, &utils.NotFoundError{Resource: "slot", ID: slotID}
	}
	if err != nil {
		return nil, &utils.StorageError{Op: "fetch slot", Err: err}
	}
	if slot.Status != models.SlotAvailable {
		return nil, &utils.SlotUnavailableError{SlotID: slotID}
	}

	if err := validateEventDetails(details); err != nil {
		return nil, err
	}

	instant, err := s.Policy.IsInstantBook(ctx, slot.SpeakerID)
	if err != nil {
		return nil, &utils.StorageError{Op: "fetch speaker policy", Err: err}
	}
	slotStatus, bookingStatus := models.SlotBooked, models.BookingConfirmed
	if !instant {
		slotStatus, bookingStatus = models.SlotPending, models.BookingPending
	}

	now := time.Now()
	booking := &models.Booking{
		ID:             uuid.New().String(),
		AvailabilityID: slot.ID,
		SpeakerID:      slot.SpeakerID,
		OrganizerID:    organizerID,
		EventName:      strings.TrimSpace(details.Name),
		EventType:      details.Type,
		EventLocation:  strings.TrimSpace(details.Location),
		Attendees:      details.Attendees,
		Notes:          details.Notes,
		OrganizerName:  contact.Name,
		OrganizerEmail: contact.Email,
		OrganizerPhone: contact.Phone,
		Status:         bookingStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.Bookings.BookSlot(ctx, slot.ID, slotStatus, booking)
	if errors.Is(err, bookingRepo.ErrSlotUnavailable) {
		return nil, &utils.SlotUnavailableError{SlotID: slotID}
	}
	if err != nil {
		return nil, &utils.StorageError{Op: "book slot", Err: err}
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("slotID", slot.ID),
		zap.String("organizerID", organizerID),
		zap.String("status", bookingStatus))

	s.emitBookingEvent(ctx, booking, slot.Date, s.Notification.BookingCreated)
	return booking, nil
}

func validateEventDetails(details models.EventDetails) error {
	if strings.TrimSpace(details.Name) == "" {
		return &utils.ValidationError{Reason: "event name is required"}
	}
	if strings.TrimSpace(details.Location) == "" {
		return &utils.ValidationError{Reason: "event location is required"}
	}
	if details.Attendees != nil && *details.Attendees < 0 {
		return &utils.ValidationError{Reason: "attendee count cannot be negative"}
	}
	return nil
}

func (s *DefaultBookingService) emitBookingEvent(
	ctx context.Context,
	booking *models.Booking,
	date string,
	emit func(context.Context, models.BookingEvent) error,
) {
	ev := models.BookingEvent{
		BookingID:   booking.ID,
		SlotID:      booking.AvailabilityID,
		SpeakerID:   booking.SpeakerID,
		OrganizerID: booking.OrganizerID,
		Status:      booking.Status,
		Date:        date,
	}
	if err := emit(ctx, ev); err != nil {
		utils.GetLogger().Warn("notification enqueue failed",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
