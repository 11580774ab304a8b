package repositories

import (
	"context"

	"gudang/internal/models"
)

// InventoryRepository defines the interface for the stock ledger, keyed
// by normalized SKU.
type InventoryRepository interface {
	GetBySku(ctx context.Context, sku string) (*models.InventoryItem, error)
	Upsert(ctx context.Context, item *models.InventoryItem) error
	List(ctx context.Context) ([]*models.InventoryItem, error)
}
