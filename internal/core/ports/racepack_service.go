package ports

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
)

// CreateRacePackInput carries all data needed to create a race pack line item.
type CreateRacePackInput struct {
	EventID             int
	Name                string
	SKU                 string
	Category            string
	StockQuantity       int
	DistributedQuantity int
}

// RacePackService defines use-case operations for race pack inventory.
// Any write that would leave DistributedQuantity above StockQuantity fails
// with domain.ErrInsufficientStock.
type RacePackService interface {
	Create(ctx context.Context, input CreateRacePackInput) (*domain.RacePack, error)
	Update(ctx context.Context, id int, upd RacePackUpdate) (*domain.RacePack, error)
	// Distribute hands out quantity units from the pack's stock.
	Distribute(ctx context.Context, id, quantity int) (*domain.RacePack, error)
}
