package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user account.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	FullName string
	Role     string
	Avatar   *string
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	// Create enforces username and email uniqueness before storing the user
	// with a hashed password.
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Update applies a partial update limited to profile fields; the password
	// can never be changed through this path.
	Update(ctx context.Context, id int, upd UserUpdate) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id int) error
}
