package models

import "time"

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking records a commitment between one organizer and exactly one slot.
// The organizer contact fields are snapshotted at booking time so later
// profile edits never rewrite historical bookings.
type Booking struct {
	ID             string    `bson:"id" json:"id"`
	AvailabilityID string    `bson:"availability_id" json:"availabilityId"`
	SpeakerID      string    `bson:"speaker_id" json:"speakerId"`
	OrganizerID    string    `bson:"organizer_id" json:"organizerId"`
	EventName      string    `bson:"event_name" json:"eventName"`
	EventType      string    `bson:"event_type,omitempty" json:"eventType,omitempty"`
	EventLocation  string    `bson:"event_location" json:"eventLocation"`
	Attendees      *int      `bson:"attendees,omitempty" json:"attendees,omitempty"`
	Notes          string    `bson:"notes,omitempty" json:"notes,omitempty"`
	OrganizerName  string    `bson:"organizer_name,omitempty" json:"organizerName,omitempty"`
	OrganizerEmail string    `bson:"organizer_email,omitempty" json:"organizerEmail,omitempty"`
	OrganizerPhone string    `bson:"organizer_phone,omitempty" json:"organizerPhone,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}

// EventDetails carries the organizer-supplied description of the event.
type EventDetails struct {
	Name      string `json:"eventName" binding:"required"`
	Type      string `json:"eventType,omitempty"`
	Location  string `json:"eventLocation" binding:"required"`
	Attendees *int   `json:"attendees,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

// ContactSnapshot is the organizer contact info copied onto the booking.
type ContactSnapshot struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// AttemptBookingRequest defines the payload for booking a slot.
type AttemptBookingRequest struct {
	SlotID  string          `json:"slotId" binding:"required"`
	Event   EventDetails    `json:"event" binding:"required"`
	Contact ContactSnapshot `json:"contact"`
}
