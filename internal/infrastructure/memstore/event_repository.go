package memstore

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// EventRepository implements ports.EventRepository against the Store.
type EventRepository struct {
	s *Store
}

func NewEventRepository(s *Store) *EventRepository {
	return &EventRepository{s: s}
}

func cloneEvent(e *domain.Event) *domain.Event {
	clone := *e
	return &clone
}

func (r *EventRepository) Get(_ context.Context, id int) (*domain.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (r *EventRepository) List(_ context.Context) ([]*domain.Event, error) {
	return r.list(func(*domain.Event) bool { return true }), nil
}

func (r *EventRepository) ListByOrganizer(_ context.Context, organizerID int) ([]*domain.Event, error) {
	return r.list(func(e *domain.Event) bool { return e.OrganizerID == organizerID }), nil
}

func (r *EventRepository) ListByStatus(_ context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	return r.list(func(e *domain.Event) bool { return e.Status == status }), nil
}

// list scans events in id order and returns clones matching the predicate.
func (r *EventRepository) list(match func(*domain.Event) bool) []*domain.Event {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	events := make([]*domain.Event, 0)
	for id := 1; id <= r.s.eventID; id++ {
		if e, ok := r.s.events[id]; ok && match(e) {
			events = append(events, cloneEvent(e))
		}
	}
	return events
}

func (r *EventRepository) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneEvent(event)
	stored.ID = r.s.nextEventID()
	stored.CreatedAt = r.s.now()
	r.s.events[stored.ID] = stored
	return cloneEvent(stored), nil
}

func (r *EventRepository) Update(_ context.Context, id int, upd ports.EventUpdate) (*domain.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	e, ok := r.s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Capacity != nil {
		e.Capacity = upd.Capacity
	}
	if upd.Price != nil {
		e.Price = *upd.Price
	}
	if upd.Image != nil {
		e.Image = upd.Image
	}
	if upd.OrganizerID != nil {
		e.OrganizerID = *upd.OrganizerID
	}
	if upd.Status != nil {
		e.Status = *upd.Status
	}
	if upd.RegistrationOpen != nil {
		e.RegistrationOpen = *upd.RegistrationOpen
	}
	return cloneEvent(e), nil
}

func (r *EventRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.s.events, id)
	return nil
}
