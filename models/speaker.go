package models

// SpeakerPolicy is the slice of a speaker profile the booking core needs.
// Profile management itself lives with the auth/profile collaborator; we
// only read the instant-book flag to decide whether a fresh booking is
// confirmed outright or waits for the speaker's approval.
type SpeakerPolicy struct {
	ID            string `bson:"id" json:"id"`
	IsInstantBook bool   `bson:"is_instant_book" json:"isInstantBook"`
}
