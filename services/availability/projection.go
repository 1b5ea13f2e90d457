// File: services/availability/projection.go
package availability

import (
	"context"
	"encoding/json"
	"sort"

	"podium/models"
	"podium/utils"

	"go.uber.org/zap"
)

// The projection queries are the read side of the calendar. They never
// lock and never mutate; each one reads a single committed snapshot and
// tolerates being stale, because the booking transaction, not the
// calendar, decides who wins a slot.

func (s *DefaultAvailabilityService) SlotsForDate(ctx context.Context, speakerID, date string) ([]models.Slot, error) {
	if _, err := utils.ParseDate(date); err != nil {
		return nil, &utils.ValidationError{Reason: err.Error()}
	}
	slots, err := s.Repo.GetBySpeakerAndDate(ctx, speakerID, date)
	if err != nil {
		return nil, &utils.StorageError{Op: "slots for date", Err: err}
	}
	return slots, nil
}

func (s *DefaultAvailabilityService) DateHasAvailable(ctx context.Context, speakerID, date string) (bool, error) {
	slots, err := s.SlotsForDate(ctx, speakerID, date)
	if err != nil {
		return false, err
	}
	for _, slot := range slots {
		if slot.Status == models.SlotAvailable {
			return true, nil
		}
	}
	return false, nil
}

// DatesWithAnySlot returns the sorted distinct dates carrying at least one
// slot of any status. The UI uses it to enable calendar days, so the set
// only changes on slot creation and deletion, never on booking; that makes
// it safe to cache briefly.
func (s *DefaultAvailabilityService) DatesWithAnySlot(ctx context.Context, speakerID string) ([]string, error) {
	if cached, ok := s.cachedDates(ctx, speakerID); ok {
		return cached, nil
	}

	dates, err := s.Repo.DistinctDates(ctx, speakerID)
	if err != nil {
		return nil, &utils.StorageError{Op: "distinct dates", Err: err}
	}
	sort.Strings(dates)

	s.cacheDates(ctx, speakerID, dates)
	return dates, nil
}

// AggregateStatus collapses a date's slots into one calendar cell value.
// Pending slots count as booked for aggregation: the day is not freely
// available, which is what the cell communicates.
func (s *DefaultAvailabilityService) AggregateStatus(ctx context.Context, speakerID, date string) (models.AggregateStatus, error) {
	slots, err := s.SlotsForDate(ctx, speakerID, date)
	if err != nil {
		return "", err
	}
	if len(slots) == 0 {
		return models.DateNone, nil
	}

	var available, taken int
	for _, slot := range slots {
		if slot.Status == models.SlotAvailable {
			available++
		} else {
			taken++
		}
	}
	switch {
	case taken == 0:
		return models.DateAvailable, nil
	case available == 0:
		return models.DateBooked, nil
	default:
		return models.DateMixed, nil
	}
}

func (s *DefaultAvailabilityService) cachedDates(ctx context.Context, speakerID string) ([]string, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, utils.DateCachePrefix+speakerID).Result()
	if err != nil {
		return nil, false
	}
	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false
	}
	return dates, true
}

func (s *DefaultAvailabilityService) cacheDates(ctx context.Context, speakerID string, dates []string) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, utils.DateCachePrefix+speakerID, raw, utils.DateCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("date cache write failed",
			zap.String("speakerID", speakerID), zap.Error(err))
	}
}

func (s *DefaultAvailabilityService) invalidateDateCache(ctx context.Context, speakerID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.DateCachePrefix+speakerID).Err(); err != nil {
		utils.GetLogger().Warn("date cache invalidation failed",
			zap.String("speakerID", speakerID), zap.Error(err))
	}
}
