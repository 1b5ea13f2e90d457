// File: services/notification/interface.go
package notification

import (
	"context"

	"podium/models"
)

// Task types on the notification queue.
const (
	TypeBookingCreated   = "notify:booking_created"
	TypeBookingConfirmed = "notify:booking_confirmed"
	TypeBookingCancelled = "notify:booking_cancelled"
	TypeInquirySubmitted = "notify:inquiry_submitted"
)

// NotificationService hands domain events to the delivery collaborator.
// Enqueueing is fire-and-forget from the caller's point of view: a failed
// enqueue is logged, never rolled back into the booking transaction.
type NotificationService interface {
	BookingCreated(ctx context.Context, ev models.BookingEvent) error
	BookingConfirmed(ctx context.Context, ev models.BookingEvent) error
	BookingCancelled(ctx context.Context, ev models.BookingEvent) error
	InquirySubmitted(ctx context.Context, ev models.InquiryEvent) error
}
