package services

import (
	"context"
	"log"
	"sync"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/google/uuid"
)

// InventoryService orchestrates the store aggregate: store lifecycle and
// the products each store owns. Mutating use cases follow the
// fetch-mutate-write pattern; mu is held across the whole sequence so
// two concurrent writers on the same store cannot lose an update. The
// repository lock still linearizes each individual call.
type InventoryService struct {
	storeRepo repositories.StoreRepository
	events    EventPublisher
	mu        sync.Mutex
}

// NewInventoryService creates a new InventoryService. events may be nil
// when no broker is configured.
func NewInventoryService(storeRepo repositories.StoreRepository, events EventPublisher) *InventoryService {
	return &InventoryService{
		storeRepo: storeRepo,
		events:    events,
	}
}

// CreateStore creates and persists a new store with a generated id.
func (s *InventoryService) CreateStore(ctx context.Context, name string) (*models.Store, error) {
	store, err := models.NewStore(uuid.NewString(), name)
	if err != nil {
		return nil, err
	}
	if err := s.storeRepo.Add(ctx, store); err != nil {
		return nil, err
	}
	s.publish(EventStoreCreated, map[string]interface{}{
		"storeID": store.ID,
		"name":    store.Name,
	})
	return store, nil
}

// GetStore returns a snapshot of the store with the given id.
func (s *InventoryService) GetStore(ctx context.Context, storeID string) (*models.Store, error) {
	return s.storeRepo.GetByID(ctx, storeID)
}

// ListStores returns snapshots of all stores.
func (s *InventoryService) ListStores(ctx context.Context) ([]*models.Store, error) {
	return s.storeRepo.GetAll(ctx)
}

// RenameStore changes a store's name.
func (s *InventoryService) RenameStore(ctx context.Context, storeID, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if err := store.Rename(newName); err != nil {
		return err
	}
	return s.storeRepo.Update(ctx, store)
}

// DeleteStore removes a store and all products it owns.
func (s *InventoryService) DeleteStore(ctx context.Context, storeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeRepo.Delete(ctx, storeID)
}

// AddProduct creates a product with a generated id and appends it to the
// store.
func (s *InventoryService) AddProduct(ctx context.Context, storeID, name, sku string, price float64, quantity int) (*models.Product, error) {
	product, err := models.NewProduct(uuid.NewString(), name, sku, price, quantity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if err := store.AddProduct(product); err != nil {
		return nil, err
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	s.publish(EventProductAdded, map[string]interface{}{
		"storeID":   storeID,
		"productID": product.ID,
		"sku":       product.Sku,
	})
	return product, nil
}

// GetProducts returns the store's products in insertion order.
func (s *InventoryService) GetProducts(ctx context.Context, storeID string) ([]*models.Product, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return store.Products(), nil
}

// GetProduct returns a single product from a store.
func (s *InventoryService) GetProduct(ctx context.Context, storeID, productID string) (*models.Product, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return store.Product(productID)
}

// UpdateProduct overwrites a product's name, price and quantity.
func (s *InventoryService) UpdateProduct(ctx context.Context, storeID, productID, name string, price float64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	product, err := store.Product(productID)
	if err != nil {
		return err
	}
	if err := product.Rename(name); err != nil {
		return err
	}
	if err := product.UpdatePrice(price); err != nil {
		return err
	}
	if err := product.SetStock(quantity); err != nil {
		return err
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return err
	}

	s.publish(EventProductUpdated, map[string]interface{}{
		"storeID":   storeID,
		"productID": productID,
	})
	return nil
}

// UpdateProductStock replaces a product's stock quantity.
func (s *InventoryService) UpdateProductStock(ctx context.Context, storeID, productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	product, err := store.Product(productID)
	if err != nil {
		return err
	}
	if err := product.SetStock(quantity); err != nil {
		return err
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return err
	}

	s.publish(EventProductUpdated, map[string]interface{}{
		"storeID":   storeID,
		"productID": productID,
		"quantity":  quantity,
	})
	return nil
}

// DeleteProduct removes a product from a store.
func (s *InventoryService) DeleteProduct(ctx context.Context, storeID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return err
	}
	if err := store.RemoveProduct(productID); err != nil {
		return err
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		return err
	}

	s.publish(EventProductRemoved, map[string]interface{}{
		"storeID":   storeID,
		"productID": productID,
	})
	return nil
}

func (s *InventoryService) publish(eventType string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
