package repositories

import (
	"context"
	"sync"

	"gudang/internal/models"
)

// InMemoryStoreRepository is the process-memory implementation of
// StoreRepository. A single RWMutex guards the backing map for the whole
// duration of every operation; stores go in and come out as deep clones.
type InMemoryStoreRepository struct {
	mu     sync.RWMutex
	stores map[string]*models.Store
	order  []string // store ids in creation order, for stable GetAll
}

// NewInMemoryStoreRepository creates an empty store repository.
func NewInMemoryStoreRepository() *InMemoryStoreRepository {
	return &InMemoryStoreRepository{
		stores: make(map[string]*models.Store),
	}
}

// GetByID returns a snapshot of the store with the given id.
func (r *InMemoryStoreRepository) GetByID(ctx context.Context, id string) (*models.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, models.NotFoundErrorf("store with id %s not found", id)
	}
	return store.Clone(), nil
}

// GetAll returns snapshots of every store in creation order.
func (r *InMemoryStoreRepository) GetAll(ctx context.Context) ([]*models.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Store, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.stores[id].Clone())
	}
	return result, nil
}

// Add inserts a new store. Adding an id that is already present is a
// conflict.
func (r *InMemoryStoreRepository) Add(ctx context.Context, store *models.Store) error {
	if store == nil {
		return models.ValidationErrorf("store is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[store.ID]; exists {
		return models.ConflictErrorf("store with id %s already exists", store.ID)
	}
	r.stores[store.ID] = store.Clone()
	r.order = append(r.order, store.ID)
	return nil
}

// Update replaces an existing store. The store must have been created
// via Add first.
func (r *InMemoryStoreRepository) Update(ctx context.Context, store *models.Store) error {
	if store == nil {
		return models.ValidationErrorf("store is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[store.ID]; !exists {
		return models.NotFoundErrorf("store with id %s not found", store.ID)
	}
	r.stores[store.ID] = store.Clone()
	return nil
}

// Delete removes a store and, with it, every product it owns.
func (r *InMemoryStoreRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stores[id]; !exists {
		return models.NotFoundErrorf("store with id %s not found", id)
	}
	delete(r.stores, id)
	for i, storeID := range r.order {
		if storeID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
