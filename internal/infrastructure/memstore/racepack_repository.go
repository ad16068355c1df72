package memstore

import (
	"context"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
)

// RacePackRepository implements ports.RacePackRepository against the Store.
type RacePackRepository struct {
	s *Store
}

func NewRacePackRepository(s *Store) *RacePackRepository {
	return &RacePackRepository{s: s}
}

func cloneRacePack(p *domain.RacePack) *domain.RacePack {
	clone := *p
	return &clone
}

func (r *RacePackRepository) Get(_ context.Context, id int) (*domain.RacePack, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.racePacks[id]
	if !ok {
		return nil, domain.ErrRacePackNotFound
	}
	return cloneRacePack(p), nil
}

func (r *RacePackRepository) ListByEvent(_ context.Context, eventID int) ([]*domain.RacePack, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	packs := make([]*domain.RacePack, 0)
	for id := 1; id <= r.s.racePackID; id++ {
		if p, ok := r.s.racePacks[id]; ok && p.EventID == eventID {
			packs = append(packs, cloneRacePack(p))
		}
	}
	return packs, nil
}

func (r *RacePackRepository) Create(_ context.Context, pack *domain.RacePack) (*domain.RacePack, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := cloneRacePack(pack)
	stored.ID = r.s.nextRacePackID()
	r.s.racePacks[stored.ID] = stored
	return cloneRacePack(stored), nil
}

func (r *RacePackRepository) Update(_ context.Context, id int, upd ports.RacePackUpdate) (*domain.RacePack, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.racePacks[id]
	if !ok {
		return nil, domain.ErrRacePackNotFound
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.SKU != nil {
		p.SKU = *upd.SKU
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.StockQuantity != nil {
		p.StockQuantity = *upd.StockQuantity
	}
	if upd.DistributedQuantity != nil {
		p.DistributedQuantity = *upd.DistributedQuantity
	}
	return cloneRacePack(p), nil
}

func (r *RacePackRepository) Delete(_ context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.racePacks[id]; !ok {
		return domain.ErrRacePackNotFound
	}
	delete(r.s.racePacks, id)
	return nil
}
