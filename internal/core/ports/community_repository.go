package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// CommunityUpdate carries the fields a partial community update may change.
type CommunityUpdate struct {
	Name        *string
	Description *string
	Image       *string
	ManagerID   *int
}

// CommunityRepository defines persistence operations for communities.
type CommunityRepository interface {
	Get(ctx context.Context, id int) (*domain.Community, error)
	List(ctx context.Context) ([]*domain.Community, error)
	ListByManager(ctx context.Context, managerID int) ([]*domain.Community, error)
	Create(ctx context.Context, community *domain.Community) (*domain.Community, error)
	Update(ctx context.Context, id int, upd CommunityUpdate) (*domain.Community, error)
	Delete(ctx context.Context, id int) error
}

// CommunityMemberRepository defines persistence operations for memberships.
// Members are only created and removed, never updated.
type CommunityMemberRepository interface {
	Get(ctx context.Context, id int) (*domain.CommunityMember, error)
	ListByCommunity(ctx context.Context, communityID int) ([]*domain.CommunityMember, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.CommunityMember, error)
	Create(ctx context.Context, member *domain.CommunityMember) (*domain.CommunityMember, error)
	Delete(ctx context.Context, id int) error
}
