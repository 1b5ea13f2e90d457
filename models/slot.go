package models

import "time"

// Slot statuses.
const (
	SlotAvailable = "available"
	SlotPending   = "pending"
	SlotBooked    = "booked"
)

// Slot represents one bookable interval a speaker has published.
type Slot struct {
	ID        string    `bson:"id" json:"id"`
	SpeakerID string    `bson:"speaker_id" json:"speakerId"`
	Date      string    `bson:"date" json:"date"`             // "2006-01-02"
	StartTime string    `bson:"start_time" json:"startTime"`  // "HH:MM", 24-hour
	EndTime   string    `bson:"end_time" json:"endTime"`      // "HH:MM", 24-hour
	Status    string    `bson:"status" json:"status"`         // available | pending | booked
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// AggregateStatus summarises every slot on one date for calendar rendering.
type AggregateStatus string

const (
	DateNone      AggregateStatus = "none"
	DateAvailable AggregateStatus = "available"
	DateBooked    AggregateStatus = "booked"
	DateMixed     AggregateStatus = "mixed"
)

// CreateSlotRequest defines the payload for publishing a new slot.
type CreateSlotRequest struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}
