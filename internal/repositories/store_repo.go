package repositories

import (
	"context"

	"gudang/internal/models"
)

// StoreRepository defines the interface for store aggregate access.
// Implementations must serialize all access and hand back snapshots so
// callers can never mutate repository state outside the lock.
type StoreRepository interface {
	GetByID(ctx context.Context, id string) (*models.Store, error)
	GetAll(ctx context.Context) ([]*models.Store, error)
	Add(ctx context.Context, store *models.Store) error
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id string) error
}
