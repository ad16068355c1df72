package ports

import (
	"context"
	"time"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// EventUpdate carries the fields a partial event update may change.
type EventUpdate struct {
	Title            *string
	Description      *string
	Date             *time.Time
	Location         *string
	Category         *string
	Capacity         *int
	Price            *float64
	Image            *string
	OrganizerID      *int
	Status           *domain.EventStatus
	RegistrationOpen *bool
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Get(ctx context.Context, id int) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByOrganizer(ctx context.Context, organizerID int) ([]*domain.Event, error)
	ListByStatus(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	Update(ctx context.Context, id int, upd EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id int) error
}
