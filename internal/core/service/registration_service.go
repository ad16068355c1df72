package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// RegistrationService enforces the registration policy. The duplicate and
// capacity checks plus the create run under a per-event mutex, so two
// concurrent requests cannot both slip past a tight capacity limit or
// register the same user twice.
type RegistrationService struct {
	registrations ports.RegistrationRepository
	events        ports.EventRepository
	logger        zerolog.Logger

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewRegistrationService(
	registrations ports.RegistrationRepository,
	events ports.EventRepository,
	logger zerolog.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		events:        events,
		logger:        logger,
		locks:         make(map[int]*sync.Mutex),
	}
}

// eventLock returns the mutex guarding registration writes for one event.
// Locks are never released back; the event count stays small.
func (s *RegistrationService) eventLock(eventID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[eventID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[eventID] = l
	}
	return l
}

// Register runs the policy pipeline in order, failing fast on the first
// violated rule, then creates the registration.
func (s *RegistrationService) Register(ctx context.Context, input ports.CreateRegistrationInput) (*domain.Registration, error) {
	lock := s.eventLock(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	// 1. One registration per (event, user).
	_, err := s.registrations.GetByEventAndUser(ctx, input.EventID, input.UserID)
	if err == nil {
		return nil, domain.ErrDuplicateRegistration
	}
	if !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, err
	}

	// 2. The event must exist.
	event, err := s.events.Get(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	// 3. Registration must be open.
	if !event.RegistrationOpen {
		return nil, domain.ErrRegistrationClosed
	}

	// 4. Capacity ceiling, when the event has one.
	if event.Capacity != nil {
		count, err := s.registrations.CountByEvent(ctx, input.EventID)
		if err != nil {
			return nil, err
		}
		if count >= *event.Capacity {
			return nil, domain.ErrCapacityExceeded
		}
	}

	status := input.Status
	if status == "" {
		status = domain.RegistrationRegistered
	}

	registration, err := s.registrations.Create(ctx, &domain.Registration{
		EventID:        input.EventID,
		UserID:         input.UserID,
		Status:         status,
		BibNumber:      input.BibNumber,
		Category:       input.Category,
		AdditionalInfo: input.AdditionalInfo,
	})
	if err != nil {
		s.logger.Error().Err(err).Int("event_id", input.EventID).Msg("failed to create registration")
		return nil, err
	}

	s.logger.Info().
		Int("registration_id", registration.ID).
		Int("event_id", registration.EventID).
		Int("user_id", registration.UserID).
		Msg("registration created")

	return registration, nil
}
