package handler

import (
	"time"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

type createEventRequest struct {
	Title            string    `json:"title"       validate:"required"`
	Description      string    `json:"description" validate:"required"`
	Date             time.Time `json:"date"        validate:"required"`
	Location         string    `json:"location"    validate:"required"`
	Category         string    `json:"category"    validate:"required"`
	Capacity         *int      `json:"capacity"    validate:"omitempty,gt=0"`
	Price            *float64  `json:"price"       validate:"omitempty,gte=0"`
	Image            *string   `json:"image"`
	OrganizerID      int       `json:"organizerId" validate:"required,gt=0"`
	Status           string    `json:"status"      validate:"omitempty,oneof=draft published completed cancelled"`
	RegistrationOpen *bool     `json:"registrationOpen"`
}

type updateEventRequest struct {
	Title            *string    `json:"title"`
	Description      *string    `json:"description"`
	Date             *time.Time `json:"date"`
	Location         *string    `json:"location"`
	Category         *string    `json:"category"`
	Capacity         *int       `json:"capacity"    validate:"omitempty,gt=0"`
	Price            *float64   `json:"price"       validate:"omitempty,gte=0"`
	Image            *string    `json:"image"`
	OrganizerID      *int       `json:"organizerId" validate:"omitempty,gt=0"`
	Status           *string    `json:"status"      validate:"omitempty,oneof=draft published completed cancelled"`
	RegistrationOpen *bool      `json:"registrationOpen"`
}

// toDomain applies the request defaults: draft status, open registration,
// zero price.
func (r createEventRequest) toDomain() *domain.Event {
	event := &domain.Event{
		Title:            r.Title,
		Description:      r.Description,
		Date:             r.Date,
		Location:         r.Location,
		Category:         r.Category,
		Capacity:         r.Capacity,
		Image:            r.Image,
		OrganizerID:      r.OrganizerID,
		Status:           domain.EventDraft,
		RegistrationOpen: true,
	}
	if r.Price != nil {
		event.Price = *r.Price
	}
	if r.Status != "" {
		event.Status = domain.EventStatus(r.Status)
	}
	if r.RegistrationOpen != nil {
		event.RegistrationOpen = *r.RegistrationOpen
	}
	return event
}
