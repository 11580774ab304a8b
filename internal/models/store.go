package models

import "strings"

// Store is the aggregate root for a retail store and the products it
// owns. Products live and die with their store; the map is never handed
// out directly.
type Store struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	products map[string]*Product
	order    []string // product ids in insertion order, for stable listing
}

// NewStore validates the fields and builds an empty store. As with
// products, the id must already be assigned.
func NewStore(id, name string) (*Store, error) {
	if id == "" {
		return nil, ValidationErrorf("store id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, ValidationErrorf("store name is required")
	}

	return &Store{
		ID:       id,
		Name:     name,
		products: make(map[string]*Product),
	}, nil
}

// Rename changes the store name. Blank names are rejected.
func (s *Store) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ValidationErrorf("store name is required")
	}
	s.Name = newName
	return nil
}

// AddProduct attaches a product to the store. Adding a product whose id
// is already present is a conflict and leaves the store unchanged.
func (s *Store) AddProduct(product *Product) error {
	if product == nil {
		return ValidationErrorf("product is required")
	}
	if _, exists := s.products[product.ID]; exists {
		return ConflictErrorf("product with id %s already exists in store %s", product.ID, s.ID)
	}
	s.products[product.ID] = product
	s.order = append(s.order, product.ID)
	return nil
}

// RemoveProduct detaches a product from the store.
func (s *Store) RemoveProduct(productID string) error {
	if _, exists := s.products[productID]; !exists {
		return NotFoundErrorf("product with id %s not found in store %s", productID, s.ID)
	}
	delete(s.products, productID)
	for i, id := range s.order {
		if id == productID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Product returns the live product with the given id. Callers holding
// the store inside a read-modify-write sequence may mutate it before
// writing the store back.
func (s *Store) Product(productID string) (*Product, error) {
	product, exists := s.products[productID]
	if !exists {
		return nil, NotFoundErrorf("product with id %s not found in store %s", productID, s.ID)
	}
	return product, nil
}

// Products returns copies of the store's products in insertion order.
func (s *Store) Products() []*Product {
	result := make([]*Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.products[id].Clone())
	}
	return result
}

// ProductCount returns the number of products in the store.
func (s *Store) ProductCount() int {
	return len(s.products)
}

// Clone returns a deep copy of the store, including its products.
func (s *Store) Clone() *Store {
	clone := &Store{
		ID:       s.ID,
		Name:     s.Name,
		products: make(map[string]*Product, len(s.products)),
		order:    append([]string(nil), s.order...),
	}
	for id, product := range s.products {
		clone.products[id] = product.Clone()
	}
	return clone
}
