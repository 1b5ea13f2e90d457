// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"podium/database"
	"podium/models"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no booking matches the given filter.
	ErrNotFound = errors.New("booking not found")
	// ErrSlotUnavailable is returned when the compare-and-swap on the slot
	// status misses: the slot was taken (or removed) between read and write.
	ErrSlotUnavailable = errors.New("slot not available")
	// ErrStateMismatch is returned when a status precondition on a
	// transition fails, e.g. cancelling an already-cancelled booking.
	ErrStateMismatch = errors.New("status precondition failed")
)

// BookingRepository is the only path through which a slot leaves the
// "available" status. Every transition commits the slot update and the
// booking write in one transaction or not at all.
type BookingRepository interface {
	BookSlot(ctx context.Context, slotID, slotStatus string, booking *models.Booking) error
	Cancel(ctx context.Context, bookingID, slotID string) error
	Confirm(ctx context.Context, bookingID, slotID string) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBySpeaker(ctx context.Context, speakerID string) ([]models.Booking, error)
	ListByOrganizer(ctx context.Context, organizerID string) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	bookingColl *mongo.Collection
	slotColl    *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository. It holds
// both collections because booking transitions span them transactionally.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	return &mongoBookingRepo{
		bookingColl: db.Collection("bookings"),
		slotColl:    db.Collection("speaker_availability"),
	}
}
