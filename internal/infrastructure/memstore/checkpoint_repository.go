package memstore

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// CheckpointRepository implements ports.CheckpointRepository against the Store.
type CheckpointRepository struct {
	s *Store
}

func NewCheckpointRepository(s *Store) *CheckpointRepository {
	return &CheckpointRepository{s: s}
}

func cloneCheckpoint(cp *domain.ParticipantCheckpoint) *domain.ParticipantCheckpoint {
	clone := *cp
	return &clone
}

func (r *CheckpointRepository) Get(_ context.Context, id int) (*domain.ParticipantCheckpoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cp, ok := r.s.checkpoints[id]
	if !ok {
		return nil, domain.ErrCheckpointNotFound
	}
	return cloneCheckpoint(cp), nil
}

func (r *CheckpointRepository) ListByRegistration(_ context.Context, registrationID int) ([]*domain.ParticipantCheckpoint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	checkpoints := make([]*domain.ParticipantCheckpoint, 0)
	for id := 1; id <= r.s.checkpointID; id++ {
		if cp, ok := r.s.checkpoints[id]; ok && cp.RegistrationID == registrationID {
			checkpoints = append(checkpoints, cloneCheckpoint(cp))
		}
	}
	return checkpoints, nil
}

func (r *CheckpointRepository) Create(_ context.Context, checkpoint *domain.ParticipantCheckpoint) (*domain.ParticipantCheckpoint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneCheckpoint(checkpoint)
	stored.ID = r.s.nextCheckpointID()
	if stored.Timestamp.IsZero() {
		stored.Timestamp = r.s.now()
	}
	r.s.checkpoints[stored.ID] = stored
	return cloneCheckpoint(stored), nil
}

func (r *CheckpointRepository) Update(_ context.Context, id int, upd ports.CheckpointUpdate) (*domain.ParticipantCheckpoint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cp, ok := r.s.checkpoints[id]
	if !ok {
		return nil, domain.ErrCheckpointNotFound
	}

	if upd.CheckpointName != nil {
		cp.CheckpointName = *upd.CheckpointName
	}
	if upd.CheckpointDistance != nil {
		cp.CheckpointDistance = upd.CheckpointDistance
	}
	if upd.Status != nil {
		cp.Status = *upd.Status
	}
	return cloneCheckpoint(cp), nil
}
