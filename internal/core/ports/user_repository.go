package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// UserUpdate carries the fields a partial user update may change. Nil fields
// are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	FullName *string
	Role     *string
	Avatar   *string
	Password *string
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Get(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id int, upd UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int) error
}
