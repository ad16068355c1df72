package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// AuthService issues and resolves bearer tokens.
type AuthService interface {
	// Login verifies credentials and returns a signed token together with the
	// authenticated user. Unknown usernames and wrong passwords both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
