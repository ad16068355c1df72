// Package memstore implements the repository ports against process-local
// keyed collections. Data lives for the lifetime of the store; there is no
// durability beyond that. Identifiers are sequential per entity type,
// starting at 1, so listing in id order reproduces insertion order.
package memstore

import (
	"sync"
	"time"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// Store holds every entity collection behind a single RWMutex. The HTTP
// layer serves requests concurrently, so individual operations take the
// lock; multi-step policies (duplicate/capacity checks) additionally
// serialize per event in the service layer.
type Store struct {
	mu sync.RWMutex

	users           map[int]*domain.User
	events          map[int]*domain.Event
	registrations   map[int]*domain.Registration
	communities     map[int]*domain.Community
	members         map[int]*domain.CommunityMember
	racePacks       map[int]*domain.RacePack
	checkpoints     map[int]*domain.ParticipantCheckpoint

	userID         int
	eventID        int
	registrationID int
	communityID    int
	memberID       int
	racePackID     int
	checkpointID   int

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		users:         make(map[int]*domain.User),
		events:        make(map[int]*domain.Event),
		registrations: make(map[int]*domain.Registration),
		communities:   make(map[int]*domain.Community),
		members:       make(map[int]*domain.CommunityMember),
		racePacks:     make(map[int]*domain.RacePack),
		checkpoints:   make(map[int]*domain.ParticipantCheckpoint),
		now:           func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) nextUserID() int         { s.userID++; return s.userID }
func (s *Store) nextEventID() int        { s.eventID++; return s.eventID }
func (s *Store) nextRegistrationID() int { s.registrationID++; return s.registrationID }
func (s *Store) nextCommunityID() int    { s.communityID++; return s.communityID }
func (s *Store) nextMemberID() int       { s.memberID++; return s.memberID }
func (s *Store) nextRacePackID() int     { s.racePackID++; return s.racePackID }
func (s *Store) nextCheckpointID() int   { s.checkpointID++; return s.checkpointID }
