package models

// BookingEvent is the payload handed to the notification queue when a
// booking is created, confirmed or cancelled.
type BookingEvent struct {
	BookingID   string `json:"bookingId"`
	SlotID      string `json:"slotId"`
	SpeakerID   string `json:"speakerId"`
	OrganizerID string `json:"organizerId"`
	Status      string `json:"status"`
	Date        string `json:"date,omitempty"`
}

// InquiryEvent is the payload for inquiry notifications.
type InquiryEvent struct {
	InquiryID string `json:"inquiryId"`
	SpeakerID string `json:"speakerId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}
