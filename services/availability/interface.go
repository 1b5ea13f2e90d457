// File: services/availability/interface.go
package availability

import (
	"context"

	availabilityRepo "podium/database/repository/availability"
	"podium/models"

	"github.com/go-redis/redis/v8"
)

// AvailabilityService manages a speaker's bookable slots and derives the
// calendar views organizers browse. Writes here never touch booked slots;
// those transitions belong to the booking service.
type AvailabilityService interface {
	CreateSlot(ctx context.Context, speakerID string, req models.CreateSlotRequest) (*models.Slot, error)
	DeleteSlot(ctx context.Context, speakerID, slotID string) error
	ListSlots(ctx context.Context, speakerID, fromDate string) ([]models.Slot, error)

	SlotsForDate(ctx context.Context, speakerID, date string) ([]models.Slot, error)
	DateHasAvailable(ctx context.Context, speakerID, date string) (bool, error)
	DatesWithAnySlot(ctx context.Context, speakerID string) ([]string, error)
	AggregateStatus(ctx context.Context, speakerID, date string) (models.AggregateStatus, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Repo availabilityRepo.AvailabilityRepository
	// Cache is optional; when nil every projection query hits the store.
	Cache *redis.Client
}
