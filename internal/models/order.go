package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order represents a customer order. The creation timestamp is set once
// at construction and never changes; the total may be revised but never
// below zero.
type Order struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewOrder validates the fields and builds an order. An empty id is
// replaced with a generated one; the customer name is stored trimmed.
func NewOrder(id, customerName string, total float64) (*Order, error) {
	trimmed := strings.TrimSpace(customerName)
	if trimmed == "" {
		return nil, ValidationErrorf("customer name is required")
	}
	if total < 0 {
		return nil, ValidationErrorf("order total cannot be negative")
	}
	if id == "" {
		id = uuid.NewString()
	}

	return &Order{
		ID:           id,
		CustomerName: trimmed,
		Total:        total,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// UpdateTotal revises the order total. Negative totals are rejected.
func (o *Order) UpdateTotal(newTotal float64) error {
	if newTotal < 0 {
		return ValidationErrorf("order total cannot be negative")
	}
	o.Total = newTotal
	return nil
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}
