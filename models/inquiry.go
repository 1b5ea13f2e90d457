package models

import "time"

// Inquiry statuses.
const (
	InquiryPending   = "pending"
	InquiryResponded = "responded"
	InquiryClosed    = "closed"
)

// Inquiry is a free-text contact request. It is never tied to a slot;
// EventDate is informational only.
type Inquiry struct {
	ID          string    `bson:"id" json:"id"`
	SpeakerID   string    `bson:"speaker_id" json:"speakerId"`
	OrganizerID string    `bson:"organizer_id,omitempty" json:"organizerId,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message     string    `bson:"message" json:"message"`
	EventDate   string    `bson:"event_date,omitempty" json:"eventDate,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// SubmitInquiryRequest defines the payload for sending an inquiry.
// Unauthenticated submissions are allowed, so contact fields travel in
// the body rather than being read from a session.
type SubmitInquiryRequest struct {
	SpeakerID string `json:"speakerId" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message" binding:"required"`
	EventDate string `json:"eventDate,omitempty"`
}
