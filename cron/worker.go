package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"podium/config"
	"podium/models"
	"podium/services/notification"
	"podium/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async worker that drains the
// notification queue. Actual delivery (email, push) is the notification
// collaborator's concern; this worker hands the event over and records the
// outcome.
func InitNotificationWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingCreated, handleBookingEvent("booking created"))
	mux.HandleFunc(notification.TypeBookingConfirmed, handleBookingEvent("booking confirmed"))
	mux.HandleFunc(notification.TypeBookingCancelled, handleBookingEvent("booking cancelled"))
	mux.HandleFunc(notification.TypeInquirySubmitted, handleInquiryEvent)

	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleBookingEvent(kind string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var ev models.BookingEvent
		if err := json.Unmarshal(task.Payload(), &ev); err != nil {
			utils.GetLogger().Error("invalid booking event payload", zap.Error(err))
			return err
		}

		// Hand-off point for the delivery collaborator.
		utils.GetLogger().Info("dispatching booking notification",
			zap.String("kind", kind),
			zap.String("bookingID", ev.BookingID),
			zap.String("speakerID", ev.SpeakerID),
			zap.String("organizerID", ev.OrganizerID),
			zap.String("status", ev.Status))
		return nil
	}
}

func handleInquiryEvent(ctx context.Context, task *asynq.Task) error {
	var ev models.InquiryEvent
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		utils.GetLogger().Error("invalid inquiry event payload", zap.Error(err))
		return err
	}

	utils.GetLogger().Info("dispatching inquiry notification",
		zap.String("inquiryID", ev.InquiryID),
		zap.String("speakerID", ev.SpeakerID))
	return nil
}
