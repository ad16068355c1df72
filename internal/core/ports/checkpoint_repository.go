package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// CheckpointUpdate carries the fields a partial checkpoint update may change.
type CheckpointUpdate struct {
	CheckpointName     *string
	CheckpointDistance *float64
	Status             *domain.CheckpointStatus
}

// CheckpointRepository defines persistence operations for participant
// checkpoints. Checkpoints are never deleted.
type CheckpointRepository interface {
	Get(ctx context.Context, id int) (*domain.ParticipantCheckpoint, error)
	ListByRegistration(ctx context.Context, registrationID int) ([]*domain.ParticipantCheckpoint, error)
	Create(ctx context.Context, checkpoint *domain.ParticipantCheckpoint) (*domain.ParticipantCheckpoint, error)
	Update(ctx context.Context, id int, upd CheckpointUpdate) (*domain.ParticipantCheckpoint, error)
}
