package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// UserService implements account creation and profile updates.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create stores a new account after enforcing username and email uniqueness.
// The password is bcrypt-hashed; an empty role defaults to participant.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if _, err := s.users.GetByUsername(ctx, input.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleParticipant
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Username: input.Username,
		Password: string(hash),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     role,
		Avatar:   input.Avatar,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user created")
	return user, nil
}

// Update applies a partial profile update. The password field is stripped so
// this path can never change credentials.
func (s *UserService) Update(ctx context.Context, id int, upd ports.UserUpdate) (*domain.User, error) {
	upd.Password = nil
	if upd.Role != nil && !domain.ValidRole(*upd.Role) {
		return nil, domain.ErrInvalidRole
	}
	return s.users.Update(ctx, id, upd)
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.users.Get(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.users.Delete(ctx, id)
}
