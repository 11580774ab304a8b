package repositories

import (
	"context"

	"gudang/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	Add(ctx context.Context, order *models.Order) error
	GetAll(ctx context.Context) ([]*models.Order, error)
}
