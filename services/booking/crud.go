// File: services/booking/crud.go
package booking

import (
	"context"
	"errors"

	bookingRepo "podium/database/repository/booking"
	"podium/models"
	"podium/utils"
)

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err != nil {
		return nil, &utils.StorageError{Op: "fetch booking", Err: err}
	}
	return booking, nil
}

func (s *DefaultBookingService) ListForSpeaker(ctx context.Context, speakerID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListBySpeaker(ctx, speakerID)
	if err != nil {
		return nil, &utils.StorageError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}

func (s *DefaultBookingService) ListForOrganizer(ctx context.Context, organizerID string) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, &utils.StorageError{Op: "list bookings", Err: err}
	}
	return bookings, nil
}
