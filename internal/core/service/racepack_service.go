package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// RacePackService implements race pack inventory accounting. Writes are
// serialized so concurrent distributions cannot overdraw stock.
type RacePackService struct {
	packs  ports.RacePackRepository
	logger zerolog.Logger
	mu     sync.Mutex
}

func NewRacePackService(packs ports.RacePackRepository, logger zerolog.Logger) *RacePackService {
	return &RacePackService{packs: packs, logger: logger}
}

func (s *RacePackService) Create(ctx context.Context, input ports.CreateRacePackInput) (*domain.RacePack, error) {
	if input.DistributedQuantity > input.StockQuantity {
		return nil, domain.ErrInsufficientStock
	}

	return s.packs.Create(ctx, &domain.RacePack{
		EventID:             input.EventID,
		Name:                input.Name,
		SKU:                 input.SKU,
		Category:            input.Category,
		StockQuantity:       input.StockQuantity,
		DistributedQuantity: input.DistributedQuantity,
	})
}

// Update applies a partial update, rejecting any combination that would
// leave more units distributed than stocked.
func (s *RacePackService) Update(ctx context.Context, id int, upd ports.RacePackUpdate) (*domain.RacePack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.packs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	stock := current.StockQuantity
	if upd.StockQuantity != nil {
		stock = *upd.StockQuantity
	}
	distributed := current.DistributedQuantity
	if upd.DistributedQuantity != nil {
		distributed = *upd.DistributedQuantity
	}
	if distributed > stock {
		return nil, domain.ErrInsufficientStock
	}

	return s.packs.Update(ctx, id, upd)
}

// Distribute hands out quantity units from the pack's remaining stock.
func (s *RacePackService) Distribute(ctx context.Context, id, quantity int) (*domain.RacePack, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pack, err := s.packs.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if quantity > pack.Remaining() {
		return nil, domain.ErrInsufficientStock
	}

	distributed := pack.DistributedQuantity + quantity
	updated, err := s.packs.Update(ctx, id, ports.RacePackUpdate{DistributedQuantity: &distributed})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("race_pack_id", id).
		Int("quantity", quantity).
		Int("remaining", updated.Remaining()).
		Msg("race pack distributed")

	return updated, nil
}
