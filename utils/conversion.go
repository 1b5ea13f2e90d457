package utils

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format exchanged with the UI collaborator.
const DateLayout = "2006-01-02"

// ClockLayout is the time-of-day format exchanged with the UI collaborator.
const ClockLayout = "15:04"

// ParseDate parses a "yyyy-MM-dd" calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-MM-dd", s)
	}
	return t, nil
}

// ParseClock parses an "HH:MM" 24-hour time of day.
func ParseClock(s string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	return t, nil
}

// Today returns the current date truncated to midnight in the server locale.
// The marketplace runs in a single implicit locale, so no timezone
// conversion happens here.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
