package domain

import (
	"errors"
	"time"
)

// RegistrationStatus is intentionally loose: the original tracker mixed
// enrollment states (registered, confirmed, ...) with on-course states
// (active, finished, delayed) in the same column.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationConfirmed  RegistrationStatus = "confirmed"
	RegistrationCheckedIn  RegistrationStatus = "checked_in"
	RegistrationCompleted  RegistrationStatus = "completed"
	RegistrationCancelled  RegistrationStatus = "cancelled"
	RegistrationActive     RegistrationStatus = "active"
	RegistrationFinished   RegistrationStatus = "finished"
	RegistrationDelayed    RegistrationStatus = "delayed"
)

var ErrRegistrationNotFound = errors.New("registration not found")
var ErrDuplicateRegistration = errors.New("user is already registered for this event")
var ErrRegistrationClosed = errors.New("registration for this event is closed")
var ErrCapacityExceeded = errors.New("event has reached maximum capacity")

// Registration links a user to an event. At most one registration may exist
// per (EventID, UserID) pair.
type Registration struct {
	ID               int                `json:"id"`
	EventID          int                `json:"eventId"`
	UserID           int                `json:"userId"`
	Status           RegistrationStatus `json:"status"`
	BibNumber        *string            `json:"bibNumber,omitempty"`
	Category         *string            `json:"category,omitempty"`
	RegistrationDate time.Time          `json:"registrationDate"`
	AdditionalInfo   map[string]any     `json:"additionalInfo,omitempty"`
}
