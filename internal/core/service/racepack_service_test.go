package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/eventhub-api/internal/core/domain"
	"github.com/eventhub/eventhub-api/internal/core/ports"
	"github.com/eventhub/eventhub-api/internal/infrastructure/memstore"
)

func newRacePackService() *RacePackService {
	store := memstore.New()
	return NewRacePackService(memstore.NewRacePackRepository(store), zerolog.Nop())
}

func TestRacePackService_Create_Success(t *testing.T) {
	svc := newRacePackService()

	pack, err := svc.Create(context.Background(), ports.CreateRacePackInput{
		EventID: 1, Name: "Event T-Shirt", SKU: "TS-001", Category: "Apparel",
		StockQuantity: 100, DistributedQuantity: 20,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if pack.Remaining() != 80 {
		t.Fatalf("expected 80 remaining, got %d", pack.Remaining())
	}
}

func TestRacePackService_Create_Overdrawn(t *testing.T) {
	svc := newRacePackService()

	_, err := svc.Create(context.Background(), ports.CreateRacePackInput{
		EventID: 1, Name: "Medals", SKU: "MD-001", Category: "Awards",
		StockQuantity: 10, DistributedQuantity: 11,
	})
	if err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestRacePackService_Distribute_Success(t *testing.T) {
	svc := newRacePackService()

	pack, err := svc.Create(context.Background(), ports.CreateRacePackInput{
		EventID: 1, Name: "Drinks", SKU: "DRK-001", Category: "Refreshments", StockQuantity: 50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Distribute(context.Background(), pack.ID, 30)
	if err != nil {
		t.Fatalf("Distribute returned error: %v", err)
	}
	if updated.DistributedQuantity != 30 {
		t.Fatalf("expected 30 distributed, got %d", updated.DistributedQuantity)
	}
	if updated.Remaining() != 20 {
		t.Fatalf("expected 20 remaining, got %d", updated.Remaining())
	}
}

func TestRacePackService_Distribute_Overdrawn(t *testing.T) {
	svc := newRacePackService()

	pack, err := svc.Create(context.Background(), ports.CreateRacePackInput{
		EventID: 1, Name: "Bibs", SKU: "BIB-001", Category: "Essentials",
		StockQuantity: 10, DistributedQuantity: 8,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Distribute(context.Background(), pack.ID, 3); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// Pack is untouched after the rejected overdraw.
	updated, err := svc.Distribute(context.Background(), pack.ID, 2)
	if err != nil {
		t.Fatalf("distribute remaining failed: %v", err)
	}
	if updated.DistributedQuantity != 10 {
		t.Fatalf("expected 10 distributed, got %d", updated.DistributedQuantity)
	}
}

func TestRacePackService_Distribute_NotFound(t *testing.T) {
	svc := newRacePackService()

	if _, err := svc.Distribute(context.Background(), 42, 1); err != domain.ErrRacePackNotFound {
		t.Fatalf("expected ErrRacePackNotFound, got %v", err)
	}
}

func TestRacePackService_Update_Overdrawn(t *testing.T) {
	svc := newRacePackService()

	pack, err := svc.Create(context.Background(), ports.CreateRacePackInput{
		EventID: 1, Name: "Shirts", SKU: "TS-002", Category: "Apparel",
		StockQuantity: 100, DistributedQuantity: 60,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Shrinking stock below the distributed count must fail.
	lowStock := 50
	if _, err := svc.Update(context.Background(), pack.ID, ports.RacePackUpdate{StockQuantity: &lowStock}); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// Raising distributed past stock must fail too.
	tooMany := 101
	if _, err := svc.Update(context.Background(), pack.ID, ports.RacePackUpdate{DistributedQuantity: &tooMany}); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// A consistent pair is accepted.
	stock, distributed := 120, 110
	updated, err := svc.Update(context.Background(), pack.ID, ports.RacePackUpdate{
		StockQuantity:       &stock,
		DistributedQuantity: &distributed,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Remaining() != 10 {
		t.Fatalf("expected 10 remaining, got %d", updated.Remaining())
	}
}
