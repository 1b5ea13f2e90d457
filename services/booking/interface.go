// File: services/booking/interface.go
package booking

import (
	"context"

	availabilityRepo "podium/database/repository/availability"
	bookingRepo "podium/database/repository/booking"
	speakerRepo "podium/database/repository/speaker"
	"podium/models"
	"podium/services/notification"
)

// BookingService is the only path through which a slot leaves "available".
// It validates each attempt against the current slot status and commits the
// slot transition together with the booking record, or not at all.
type BookingService interface {
	AttemptBooking(ctx context.Context, organizerID, slotID string, details models.EventDetails, contact models.ContactSnapshot) (*models.Booking, error)
	CancelBooking(ctx context.Context, actorID, bookingID string) error
	ConfirmBooking(ctx context.Context, speakerID, bookingID string) error
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListForSpeaker(ctx context.Context, speakerID string) ([]models.Booking, error)
	ListForOrganizer(ctx context.Context, organizerID string) ([]models.Booking, error)
}

// DefaultBookingService is the production coordinator.
type DefaultBookingService struct {
	Bookings     bookingRepo.BookingRepository
	Slots        availabilityRepo.AvailabilityRepository
	Policy       speakerRepo.SpeakerPolicyRepository
	Notification notification.NotificationService
}
