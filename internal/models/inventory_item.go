package models

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeSKU returns the canonical ledger key for a SKU: surrounding
// whitespace trimmed and the remainder upper-cased.
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// InventoryItem is a standalone stock ledger entry keyed by normalized
// SKU. It has no relationship to any store; the ledger tracks on-hand
// quantities across the whole system.
type InventoryItem struct {
	ID       string `json:"id"`
	Sku      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

// NewInventoryItem builds a ledger entry. An empty id is replaced with a
// generated one; the SKU is normalized at construction so the entry
// always carries its canonical key.
func NewInventoryItem(id, sku string, quantity int) (*InventoryItem, error) {
	normalized := NormalizeSKU(sku)
	if normalized == "" {
		return nil, ValidationErrorf("SKU is required")
	}
	if quantity < 0 {
		return nil, ValidationErrorf("quantity cannot be negative")
	}
	if id == "" {
		id = uuid.NewString()
	}

	return &InventoryItem{
		ID:       id,
		Sku:      normalized,
		Quantity: quantity,
	}, nil
}

// AdjustQuantity applies a relative delta. If the result would be
// negative the operation is rejected and the quantity is unchanged.
func (i *InventoryItem) AdjustQuantity(delta int) error {
	newQuantity := i.Quantity + delta
	if newQuantity < 0 {
		return InvariantErrorf("cannot reduce inventory below zero")
	}
	i.Quantity = newQuantity
	return nil
}

// Clone returns an independent copy of the item.
func (i *InventoryItem) Clone() *InventoryItem {
	clone := *i
	return &clone
}
