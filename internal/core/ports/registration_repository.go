package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// RegistrationUpdate carries the fields a partial registration update may change.
type RegistrationUpdate struct {
	Status         *domain.RegistrationStatus
	BibNumber      *string
	Category       *string
	AdditionalInfo map[string]any
}

// RegistrationRepository defines persistence operations for registrations.
type RegistrationRepository interface {
	Get(ctx context.Context, id int) (*domain.Registration, error)
	// GetByEventAndUser returns the registration for the (eventID, userID)
	// pair, or domain.ErrRegistrationNotFound when none exists.
	GetByEventAndUser(ctx context.Context, eventID, userID int) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID int) ([]*domain.Registration, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Registration, error)
	CountByEvent(ctx context.Context, eventID int) (int, error)
	Create(ctx context.Context, registration *domain.Registration) (*domain.Registration, error)
	Update(ctx context.Context, id int, upd RegistrationUpdate) (*domain.Registration, error)
	Delete(ctx context.Context, id int) error
}
