// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"podium/database"
	"podium/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no slot matches the given filter.
var ErrNotFound = errors.New("slot not found")

// AvailabilityRepository stores speaker availability slots. All writes to
// slot status other than Create and Delete go through the booking
// repository's transactions, never through here.
type AvailabilityRepository interface {
	Create(ctx context.Context, slot *models.Slot) error
	GetByID(ctx context.Context, slotID string) (*models.Slot, error)
	GetBySpeakerAndID(ctx context.Context, speakerID, slotID string) (*models.Slot, error)
	DeleteAvailable(ctx context.Context, speakerID, slotID string) error
	GetBySpeakerAndDate(ctx context.Context, speakerID, date string) ([]models.Slot, error)
	ListFromDate(ctx context.Context, speakerID, fromDate string) ([]models.Slot, error)
	ExistsOverlapping(ctx context.Context, speakerID, date, startTime, endTime string) (bool, error)
	DistinctDates(ctx context.Context, speakerID string) ([]string, error)
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("speaker_availability"),
	}
}
