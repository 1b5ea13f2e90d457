package utils

import "fmt"

// The booking core surfaces a small set of distinguishable error kinds so
// the UI can react per case (re-select a slot, fix a field, retry) instead
// of showing a generic failure. Every operation returns exactly one of
// these or nil; nothing is swallowed.

// ValidationError reports malformed or missing caller input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// NotFoundError reports that a referenced entity does not exist (or is not
// visible to the caller, which is surfaced the same way).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// SlotUnavailableError reports a lost booking race: the slot existed but
// was no longer available when the attempt reached it.
type SlotUnavailableError struct {
	SlotID string
}

func (e *SlotUnavailableError) Error() string {
	return "slot " + e.SlotID + " is no longer available"
}

// ConflictError reports a state conflict on a write, such as creating an
// overlapping slot or deleting a slot that carries an active booking.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Reason
}

// InvalidStateError reports an illegal status transition, such as
// cancelling an already-cancelled booking.
type InvalidStateError struct {
	Reason string
}

func (e *InvalidStateError) Error() string {
	return "invalid state: " + e.Reason
}

// StorageError wraps a transport or transaction failure. Retryable by the
// caller; the core never retries internally.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
