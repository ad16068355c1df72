package domain

import (
	"errors"
	"time"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

var ErrEventNotFound = errors.New("event not found")

// Event is a race or gathering created by an organizer. Capacity, when set,
// bounds the total registrations accepted for the event.
type Event struct {
	ID               int         `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Date             time.Time   `json:"date"`
	Location         string      `json:"location"`
	Category         string      `json:"category"`
	Capacity         *int        `json:"capacity,omitempty"`
	Price            float64     `json:"price"`
	Image            *string     `json:"image,omitempty"`
	OrganizerID      int         `json:"organizerId"`
	Status           EventStatus `json:"status"`
	RegistrationOpen bool        `json:"registrationOpen"`
	CreatedAt        time.Time   `json:"createdAt"`
}
