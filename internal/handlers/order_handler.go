package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerName string  `json:"customer_name" validate:"required,max=200"`
	Total        float64 `json:"total"`
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orders := router.Group("/orders")
	orders.Get("/", h.HandleGetOrders)
	orders.Post("/", h.HandleCreateOrder)
}

// HandleGetOrders lists all orders.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext())
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleCreateOrder places a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  formatValidationErrors(err),
		})
	}

	order, err := h.service.CreateOrder(c.UserContext(), req.CustomerName, req.Total)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}
