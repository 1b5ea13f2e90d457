// File: services/availability/service.go
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	availabilityRepo "podium/database/repository/availability"
	"podium/models"
	"podium/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSlot publishes a new bookable interval for the speaker. The slot
// starts life as "available"; nothing else can create one in another state.
func (s *DefaultAvailabilityService) CreateSlot(ctx context.Context, speakerID string, req models.CreateSlotRequest) (*models.Slot, error) {
	logger := utils.GetLogger()

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, &utils.ValidationError{Reason: err.Error()}
	}
	if date.Before(utils.Today()) {
		return nil, &utils.ValidationError{Reason: fmt.Sprintf("date %s is in the past", req.Date)}
	}
	if _, err := utils.ParseClock(req.StartTime); err != nil {
		return nil, &utils.ValidationError{Reason: err.Error()}
	}
	if _, err := utils.ParseClock(req.EndTime); err != nil {
		return nil, &utils.ValidationError{Reason: err.Error()}
	}
	if req.StartTime >= req.EndTime {
		return nil, &utils.ValidationError{Reason: "startTime must be before endTime"}
	}

	overlaps, err := s.Repo.ExistsOverlapping(ctx, speakerID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, &utils.StorageError{Op: "overlap check", Err: err}
	}
	if overlaps {
		return nil, &utils.ConflictError{
			Reason: fmt.Sprintf("slot %s–%s on %s overlaps an existing slot", req.StartTime, req.EndTime, req.Date),
		}
	}

	now := time.Now()
	slot := &models.Slot{
		ID:        uuid.New().String(),
		SpeakerID: speakerID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.SlotAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, slot); err != nil {
		return nil, &utils.StorageError{Op: "create slot", Err: err}
	}

	s.invalidateDateCache(ctx, speakerID)
	logger.Info("slot created",
		zap.String("speakerID", speakerID),
		zap.String("slotID", slot.ID),
		zap.String("date", slot.Date))
	return slot, nil
}

// DeleteSlot removes a slot the speaker owns, but only while no booking
// holds it.
func (s *DefaultAvailabilityService) DeleteSlot(ctx context.Context, speakerID, slotID string) error {
	slot, err := s.Repo.GetBySpeakerAndID(ctx, speakerID, slotID)
	if errors.Is(err, availabilityRepo.ErrNotFound) {
		return &utils.NotFoundError{Resource: "slot", ID: slotID}
	}
	if err != nil {
		return &utils.StorageError{Op: "fetch slot", Err: err}
	}
	if slot.Status != models.SlotAvailable {
		return &utils.ConflictError{
			Reason: fmt.Sprintf("slot %s has status %q and an active booking", slotID, slot.Status),
		}
	}

	err = s.Repo.DeleteAvailable(ctx, speakerID, slotID)
	if errors.Is(err, availabilityRepo.ErrNotFound) {
		// Booked between our read and the delete. Same answer as reading
		// the booked status directly.
		return &utils.ConflictError{
			Reason: fmt.Sprintf("slot %s was booked concurrently", slotID),
		}
	}
	if err != nil {
		return &utils.StorageError{Op: "delete slot", Err: err}
	}

	s.invalidateDateCache(ctx, speakerID)
	return nil
}

// ListSlots returns the speaker's slots from fromDate on, ascending by
// (date, startTime). An empty fromDate means today.
func (s *DefaultAvailabilityService) ListSlots(ctx context.Context, speakerID, fromDate string) ([]models.Slot, error) {
	if fromDate == "" {
		fromDate = utils.Today().Format(utils.DateLayout)
	} else if _, err := utils.ParseDate(fromDate); err != nil {
		return nil, &utils.ValidationError{Reason: err.Error()}
	}

	slots, err := s.Repo.ListFromDate(ctx, speakerID, fromDate)
	if err != nil {
		return nil, &utils.StorageError{Op: "list slots", Err: err}
	}
	return slots, nil
}
