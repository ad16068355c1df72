package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// CreateRegistrationInput carries all data needed to register a user for an
// event. AdditionalInfo is a free-form payload stored as-is.
type CreateRegistrationInput struct {
	EventID        int
	UserID         int
	Status         domain.RegistrationStatus
	BibNumber      *string
	Category       *string
	AdditionalInfo map[string]any
}

// RegistrationService enforces the registration business rules before
// delegating to the repository.
type RegistrationService interface {
	// Register fails with domain.ErrDuplicateRegistration when the user is
	// already registered, domain.ErrEventNotFound when the event is unknown,
	// domain.ErrRegistrationClosed when registration is closed, and
	// domain.ErrCapacityExceeded when the capacity ceiling is reached.
	Register(ctx context.Context, input CreateRegistrationInput) (*domain.Registration, error)
}
