package services

import (
	"context"
	"log"

	"gudang/internal/models"
	"gudang/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	events    EventPublisher
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(orderRepo repositories.OrderRepository, events EventPublisher) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		events:    events,
	}
}

// CreateOrder validates the input, persists a new order with a generated
// id and publishes an order.created event.
func (s *OrderService) CreateOrder(ctx context.Context, customerName string, total float64) (*models.Order, error) {
	order, err := models.NewOrder("", customerName, total)
	if err != nil {
		return nil, err
	}
	if err := s.orderRepo.Add(ctx, order); err != nil {
		return nil, err
	}

	if s.events != nil {
		err := s.events.PublishEvent(EventOrderCreated, map[string]interface{}{
			"orderID":  order.ID,
			"customer": order.CustomerName,
			"total":    order.Total,
		})
		if err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// ListOrders returns all orders in placement order.
func (s *OrderService) ListOrders(ctx context.Context) ([]*models.Order, error) {
	return s.orderRepo.GetAll(ctx)
}
