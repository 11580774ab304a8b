package repositories

import (
	"context"
	"sync"

	"gudang/internal/models"
)

// InMemoryOrderRepository is the process-memory order store. Orders are
// append-only; GetAll returns them in the order they were placed.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*models.Order
	ids    map[string]struct{}
}

// NewInMemoryOrderRepository creates an empty order repository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		ids: make(map[string]struct{}),
	}
}

// Add stores a new order. Reusing an existing order id is a conflict.
func (r *InMemoryOrderRepository) Add(ctx context.Context, order *models.Order) error {
	if order == nil {
		return models.ValidationErrorf("order is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[order.ID]; exists {
		return models.ConflictErrorf("order with id %s already exists", order.ID)
	}
	r.orders = append(r.orders, order.Clone())
	r.ids[order.ID] = struct{}{}
	return nil
}

// GetAll returns snapshots of every order in placement order.
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, order.Clone())
	}
	return result, nil
}
