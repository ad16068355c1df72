package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// RacePackUpdate carries the fields a partial race pack update may change.
type RacePackUpdate struct {
	Name                *string
	SKU                 *string
	Category            *string
	StockQuantity       *int
	DistributedQuantity *int
}

// RacePackRepository defines persistence operations for race packs.
type RacePackRepository interface {
	Get(ctx context.Context, id int) (*domain.RacePack, error)
	ListByEvent(ctx context.Context, eventID int) ([]*domain.RacePack, error)
	Create(ctx context.Context, pack *domain.RacePack) (*domain.RacePack, error)
	Update(ctx context.Context, id int, upd RacePackUpdate) (*domain.RacePack, error)
	Delete(ctx context.Context, id int) error
}
