package memstore

import (
	"context"
	"maps"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// RegistrationRepository implements ports.RegistrationRepository against the
// Store.
type RegistrationRepository struct {
	s *Store
}

func NewRegistrationRepository(s *Store) *RegistrationRepository {
	return &RegistrationRepository{s: s}
}

func cloneRegistration(reg *domain.Registration) *domain.Registration {
	clone := *reg
	if reg.AdditionalInfo != nil {
		clone.AdditionalInfo = maps.Clone(reg.AdditionalInfo)
	}
	return &clone
}

func (r *RegistrationRepository) Get(_ context.Context, id int) (*domain.Registration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	reg, ok := r.s.registrations[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	return cloneRegistration(reg), nil
}

func (r *RegistrationRepository) GetByEventAndUser(_ context.Context, eventID, userID int) (*domain.Registration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, reg := range r.s.registrations {
		if reg.EventID == eventID && reg.UserID == userID {
			return cloneRegistration(reg), nil
		}
	}
	return nil, domain.ErrRegistrationNotFound
}

func (r *RegistrationRepository) ListByEvent(_ context.Context, eventID int) ([]*domain.Registration, error) {
	return r.list(func(reg *domain.Registration) bool { return reg.EventID == eventID }), nil
}

func (r *RegistrationRepository) ListByUser(_ context.Context, userID int) ([]*domain.Registration, error) {
	return r.list(func(reg *domain.Registration) bool { return reg.UserID == userID }), nil
}

func (r *RegistrationRepository) CountByEvent(_ context.Context, eventID int) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, reg := range r.s.registrations {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (r *RegistrationRepository) list(match func(*domain.Registration) bool) []*domain.Registration {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	regs := make([]*domain.Registration, 0)
	for id := 1; id <= r.s.registrationID; id++ {
		if reg, ok := r.s.registrations[id]; ok && match(reg) {
			regs = append(regs, cloneRegistration(reg))
		}
	}
	return regs
}

func (r *RegistrationRepository) Create(_ context.Context, registration *domain.Registration) (*domain.Registration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneRegistration(registration)
	stored.ID = r.s.nextRegistrationID()
	stored.RegistrationDate = r.s.now()
	r.s.registrations[stored.ID] = stored
	return cloneRegistration(stored), nil
}

func (r *RegistrationRepository) Update(_ context.Context, id int, upd ports.RegistrationUpdate) (*domain.Registration, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reg, ok := r.s.registrations[id]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}

	if upd.Status != nil {
		reg.Status = *upd.Status
	}
	if upd.BibNumber != nil {
		reg.BibNumber = upd.BibNumber
	}
	if upd.Category != nil {
		reg.Category = upd.Category
	}
	if upd.AdditionalInfo != nil {
		reg.AdditionalInfo = maps.Clone(upd.AdditionalInfo)
	}
	return cloneRegistration(reg), nil
}

func (r *RegistrationRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.registrations[id]; !ok {
		return domain.ErrRegistrationNotFound
	}
	delete(r.s.registrations, id)
	return nil
}
