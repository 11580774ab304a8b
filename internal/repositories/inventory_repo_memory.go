package repositories

import (
	"context"
	"sync"

	"gudang/internal/models"
)

// InMemoryInventoryRepository is the process-memory stock ledger. Items
// are keyed by their normalized SKU under a single RWMutex; lookups
// normalize the caller's SKU so case and whitespace variants resolve to
// the same entry.
type InMemoryInventoryRepository struct {
	mu    sync.RWMutex
	items map[string]*models.InventoryItem
	order []string // normalized SKUs in first-seen order, for stable List
}

// NewInMemoryInventoryRepository creates an empty ledger.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{
		items: make(map[string]*models.InventoryItem),
	}
}

// GetBySku returns a snapshot of the ledger entry for the SKU. Blank and
// unseen SKUs both report not-found.
func (r *InMemoryInventoryRepository) GetBySku(ctx context.Context, sku string) (*models.InventoryItem, error) {
	key := models.NormalizeSKU(sku)
	if key == "" {
		return nil, models.NotFoundErrorf("no inventory item for blank SKU")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	if !ok {
		return nil, models.NotFoundErrorf("inventory item with SKU %s not found", key)
	}
	return item.Clone(), nil
}

// Upsert inserts or overwrites the entry keyed by the item's normalized
// SKU.
func (r *InMemoryInventoryRepository) Upsert(ctx context.Context, item *models.InventoryItem) error {
	if item == nil {
		return models.ValidationErrorf("inventory item is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.Sku]; !exists {
		r.order = append(r.order, item.Sku)
	}
	r.items[item.Sku] = item.Clone()
	return nil
}

// List returns snapshots of every ledger entry in first-seen order.
func (r *InMemoryInventoryRepository) List(ctx context.Context) ([]*models.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.InventoryItem, 0, len(r.order))
	for _, sku := range r.order {
		result = append(result, r.items[sku].Clone())
	}
	return result, nil
}
