package services

import (
	"context"
	"log"
	"sync"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// StockService orchestrates the SKU stock ledger. As with the inventory
// service, mu extends the per-call repository lock across each whole
// fetch-adjust-upsert sequence, so concurrent adjustments to one SKU
// never overwrite each other.
type StockService struct {
	repo   repositories.InventoryRepository
	events EventPublisher
	mu     sync.Mutex
}

// NewStockService creates a new StockService. events may be nil.
func NewStockService(repo repositories.InventoryRepository, events EventPublisher) *StockService {
	return &StockService{
		repo:   repo,
		events: events,
	}
}

// Increase raises the on-hand quantity for a SKU by amount. An unseen
// SKU gets a fresh ledger entry starting at zero before the increase is
// applied.
func (s *StockService) Increase(ctx context.Context, sku string, amount int) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, models.ValidationErrorf("amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.GetBySku(ctx, sku)
	if err != nil {
		if !models.IsNotFound(err) {
			return nil, err
		}
		item, err = models.NewInventoryItem("", sku, 0)
		if err != nil {
			return nil, err
		}
	}

	if err := item.AdjustQuantity(amount); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	s.publish(EventStockIncreased, map[string]interface{}{
		"sku":      item.Sku,
		"amount":   amount,
		"quantity": item.Quantity,
	})
	return item, nil
}

// Reduce lowers the on-hand quantity for a SKU by amount. Unseen SKUs
// are not-found; a reduction that would go below zero is rejected
// without touching the ledger.
func (s *StockService) Reduce(ctx context.Context, sku string, amount int) (*models.InventoryItem, error) {
	if amount <= 0 {
		return nil, models.ValidationErrorf("amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.GetBySku(ctx, sku)
	if err != nil {
		return nil, err
	}

	if err := item.AdjustQuantity(-amount); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, err
	}

	s.publish(EventStockReduced, map[string]interface{}{
		"sku":      item.Sku,
		"amount":   amount,
		"quantity": item.Quantity,
	})
	return item, nil
}

// GetBySku returns the ledger entry for a SKU.
func (s *StockService) GetBySku(ctx context.Context, sku string) (*models.InventoryItem, error) {
	return s.repo.GetBySku(ctx, sku)
}

// List returns all ledger entries.
func (s *StockService) List(ctx context.Context) ([]*models.InventoryItem, error) {
	return s.repo.List(ctx)
}

func (s *StockService) publish(eventType string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
