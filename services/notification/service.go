// File: services/notification/service.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"podium/config"
	"podium/models"

	"github.com/hibiken/asynq"
)

// AsynqNotificationService queues events on the Redis-backed notification
// queue consumed by cron.InitNotificationWorker.
type AsynqNotificationService struct {
	client *asynq.Client
}

// NewAsynqNotificationService builds the production notification service.
func NewAsynqNotificationService() *AsynqNotificationService {
	return &AsynqNotificationService{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

func (s *AsynqNotificationService) BookingCreated(ctx context.Context, ev models.BookingEvent) error {
	return s.enqueue(ctx, TypeBookingCreated, ev)
}

func (s *AsynqNotificationService) BookingConfirmed(ctx context.Context, ev models.BookingEvent) error {
	return s.enqueue(ctx, TypeBookingConfirmed, ev)
}

func (s *AsynqNotificationService) BookingCancelled(ctx context.Context, ev models.BookingEvent) error {
	return s.enqueue(ctx, TypeBookingCancelled, ev)
}

func (s *AsynqNotificationService) InquirySubmitted(ctx context.Context, ev models.InquiryEvent) error {
	return s.enqueue(ctx, TypeInquirySubmitted, ev)
}

func (s *AsynqNotificationService) enqueue(ctx context.Context, taskType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}
	if _, err := s.client.EnqueueContext(ctx, asynq.NewTask(taskType, raw)); err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}
