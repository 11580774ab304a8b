package models

import "strings"

// Product represents a product owned by exactly one store. All mutation
// goes through methods that validate before applying, so a Product can
// never be observed in an invalid state.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Sku      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewProduct validates all fields and builds a Product. The id must be
// supplied by the caller (services generate one); an empty id is rejected.
func NewProduct(id, name, sku string, price float64, quantity int) (*Product, error) {
	if id == "" {
		return nil, ValidationErrorf("product id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, ValidationErrorf("product name is required")
	}
	if strings.TrimSpace(sku) == "" {
		return nil, ValidationErrorf("product SKU is required")
	}
	if price < 0 {
		return nil, ValidationErrorf("product price cannot be negative")
	}
	if quantity < 0 {
		return nil, ValidationErrorf("product quantity cannot be negative")
	}

	return &Product{
		ID:       id,
		Name:     name,
		Sku:      sku,
		Price:    price,
		Quantity: quantity,
	}, nil
}

// Rename changes the product name. Blank names are rejected.
func (p *Product) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ValidationErrorf("product name is required")
	}
	p.Name = newName
	return nil
}

// UpdatePrice changes the product price. Negative prices are rejected.
func (p *Product) UpdatePrice(newPrice float64) error {
	if newPrice < 0 {
		return ValidationErrorf("product price cannot be negative")
	}
	p.Price = newPrice
	return nil
}

// SetStock replaces the stock quantity with an absolute value.
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return ValidationErrorf("product quantity cannot be negative")
	}
	p.Quantity = quantity
	return nil
}

// AdjustStock applies a relative stock delta. The whole operation is
// rejected, leaving the quantity unchanged, if the result would be
// negative.
func (p *Product) AdjustStock(delta int) error {
	newQuantity := p.Quantity + delta
	if newQuantity < 0 {
		return InvariantErrorf("cannot reduce product stock below zero")
	}
	p.Quantity = newQuantity
	return nil
}

// Clone returns an independent copy of the product.
func (p *Product) Clone() *Product {
	clone := *p
	return &clone
}
