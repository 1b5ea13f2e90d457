// File: services/booking/transitions.go
package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "podium/database/repository/booking"
	"podium/models"
	"podium/utils"

	"go.uber.org/zap"
)

// CancelBooking sets the booking to "cancelled" and releases its slot back
// to "available" in one commit. Whether actorID may cancel was decided by
// the auth collaborator; here it is only logged.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, actorID, bookingID string) error {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err != nil {
		return &utils.StorageError{Op: "fetch booking", Err: err}
	}
	if booking.Status != models.BookingPending && booking.Status != models.BookingConfirmed {
		return &utils.InvalidStateError{
			Reason: fmt.Sprintf("booking %s has status %q, only pending or confirmed bookings can be cancelled", bookingID, booking.Status),
		}
	}

	err = s.Bookings.Cancel(ctx, bookingID, booking.AvailabilityID)
	if errors.Is(err, bookingRepo.ErrStateMismatch) {
		// Another actor finished a transition between our read and the
		// write. Same outcome as having read the terminal status.
		return &utils.InvalidStateError{
			Reason: fmt.Sprintf("booking %s changed status concurrently", bookingID),
		}
	}
	if err != nil {
		return &utils.StorageError{Op: "cancel booking", Err: err}
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingID", bookingID),
		zap.String("actorID", actorID))

	booking.Status = models.BookingCancelled
	s.emitBookingEvent(ctx, booking, "", s.Notification.BookingCancelled)
	return nil
}

// ConfirmBooking advances a pending booking to "confirmed"; the slot moves
// from "pending" to "booked" in the same commit.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, speakerID, bookingID string) error {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err != nil {
		return &utils.StorageError{Op: "fetch booking", Err: err}
	}
	if booking.SpeakerID != speakerID {
		return &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if booking.Status != models.BookingPending {
		return &utils.InvalidStateError{
			Reason: fmt.Sprintf("booking %s has status %q, only pending bookings can be confirmed", bookingID, booking.Status),
		}
	}

	err = s.Bookings.Confirm(ctx, bookingID, booking.AvailabilityID)
	if errors.Is(err, bookingRepo.ErrStateMismatch) {
		return &utils.InvalidStateError{
			Reason: fmt.Sprintf("booking %s changed status concurrently", bookingID),
		}
	}
	if err != nil {
		return &utils.StorageError{Op: "confirm booking", Err: err}
	}

	utils.GetLogger().Info("booking confirmed",
		zap.String("bookingID", bookingID),
		zap.String("speakerID", speakerID))

	booking.Status = models.BookingConfirmed
	s.emitBookingEvent(ctx, booking, "", s.Notification.BookingConfirmed)
	return nil
}
