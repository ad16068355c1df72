package memstore

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// CommunityRepository implements ports.CommunityRepository against the Store.
type CommunityRepository struct {
	s *Store
}

func NewCommunityRepository(s *Store) *CommunityRepository {
	return &CommunityRepository{s: s}
}

func cloneCommunity(c *domain.Community) *domain.Community {
	clone := *c
	return &clone
}

func (r *CommunityRepository) Get(_ context.Context, id int) (*domain.Community, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.communities[id]
	if !ok {
		return nil, domain.ErrCommunityNotFound
	}
	return cloneCommunity(c), nil
}

func (r *CommunityRepository) List(_ context.Context) ([]*domain.Community, error) {
	return r.list(func(*domain.Community) bool { return true }), nil
}

func (r *CommunityRepository) ListByManager(_ context.Context, managerID int) ([]*domain.Community, error) {
	return r.list(func(c *domain.Community) bool { return c.ManagerID == managerID }), nil
}

func (r *CommunityRepository) list(match func(*domain.Community) bool) []*domain.Community {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	communities := make([]*domain.Community, 0)
	for id := 1; id <= r.s.communityID; id++ {
		if c, ok := r.s.communities[id]; ok && match(c) {
			communities = append(communities, cloneCommunity(c))
		}
	}
	return communities
}

func (r *CommunityRepository) Create(_ context.Context, community *domain.Community) (*domain.Community, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneCommunity(community)
	stored.ID = r.s.nextCommunityID()
	stored.CreatedAt = r.s.now()
	r.s.communities[stored.ID] = stored
	return cloneCommunity(stored), nil
}

func (r *CommunityRepository) Update(_ context.Context, id int, upd ports.CommunityUpdate) (*domain.Community, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.communities[id]
	if !ok {
		return nil, domain.ErrCommunityNotFound
	}

	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Description != nil {
		c.Description = *upd.Description
	}
	if upd.Image != nil {
		c.Image = upd.Image
	}
	if upd.ManagerID != nil {
		c.ManagerID = *upd.ManagerID
	}
	return cloneCommunity(c), nil
}

func (r *CommunityRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.communities[id]; !ok {
		return domain.ErrCommunityNotFound
	}
	delete(r.s.communities, id)
	return nil
}

// CommunityMemberRepository implements ports.CommunityMemberRepository
// against the Store.
type CommunityMemberRepository struct {
	s *Store
}

func NewCommunityMemberRepository(s *Store) *CommunityMemberRepository {
	return &CommunityMemberRepository{s: s}
}

func cloneMember(m *domain.CommunityMember) *domain.CommunityMember {
	clone := *m
	return &clone
}

func (r *CommunityMemberRepository) Get(_ context.Context, id int) (*domain.CommunityMember, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.members[id]
	if !ok {
		return nil, domain.ErrCommunityMemberNotFound
	}
	return cloneMember(m), nil
}

func (r *CommunityMemberRepository) ListByCommunity(_ context.Context, communityID int) ([]*domain.CommunityMember, error) {
	return r.list(func(m *domain.CommunityMember) bool { return m.CommunityID == communityID }), nil
}

func (r *CommunityMemberRepository) ListByUser(_ context.Context, userID int) ([]*domain.CommunityMember, error) {
	return r.list(func(m *domain.CommunityMember) bool { return m.UserID == userID }), nil
}

func (r *CommunityMemberRepository) list(match func(*domain.CommunityMember) bool) []*domain.CommunityMember {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	members := make([]*domain.CommunityMember, 0)
	for id := 1; id <= r.s.memberID; id++ {
		if m, ok := r.s.members[id]; ok && match(m) {
			members = append(members, cloneMember(m))
		}
	}
	return members
}

func (r *CommunityMemberRepository) Create(_ context.Context, member *domain.CommunityMember) (*domain.CommunityMember, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneMember(member)
	stored.ID = r.s.nextMemberID()
	stored.JoinDate = r.s.now()
	r.s.members[stored.ID] = stored
	return cloneMember(stored), nil
}

func (r *CommunityMemberRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.members[id]; !ok {
		return domain.ErrCommunityMemberNotFound
	}
	delete(r.s.members, id)
	return nil
}
