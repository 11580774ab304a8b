package handlers

import (
	"context"
	"log"

	"gudang/internal/models"
	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StockHandler handles HTTP requests for the SKU stock ledger.
type StockHandler struct {
	service  *services.StockService
	validate *validator.Validate
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(service *services.StockService) *StockHandler {
	return &StockHandler{
		service:  service,
		validate: validator.New(),
	}
}

// AdjustStockRequest is the payload for increasing or reducing stock.
// The amount's sign rules (must be positive) are enforced by the
// service, not here.
type AdjustStockRequest struct {
	Sku    string `json:"sku" validate:"required,max=100"`
	Amount int    `json:"amount"`
}

// RegisterRoutes registers the ledger routes with the Fiber app.
func (h *StockHandler) RegisterRoutes(router fiber.Router) {
	inventory := router.Group("/inventory")
	inventory.Get("/", h.HandleListItems)
	inventory.Post("/increase", h.HandleIncrease)
	inventory.Post("/reduce", h.HandleReduce)
	inventory.Get("/:sku", h.HandleGetItem)
}

// HandleListItems lists every ledger entry.
func (h *StockHandler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.List(c.UserContext())
	if err != nil {
		log.Printf("Error listing inventory: %v", err)
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleGetItem returns the ledger entry for a SKU.
func (h *StockHandler) HandleGetItem(c *fiber.Ctx) error {
	item, err := h.service.GetBySku(c.UserContext(), c.Params("sku"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleIncrease raises the on-hand quantity for a SKU.
func (h *StockHandler) HandleIncrease(c *fiber.Ctx) error {
	return h.handleAdjust(c, h.service.Increase)
}

// HandleReduce lowers the on-hand quantity for a SKU.
func (h *StockHandler) HandleReduce(c *fiber.Ctx) error {
	return h.handleAdjust(c, h.service.Reduce)
}

func (h *StockHandler) handleAdjust(c *fiber.Ctx, adjust func(ctx context.Context, sku string, amount int) (*models.InventoryItem, error)) error {
	var req AdjustStockRequest
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

	item, err := adjust(c.UserContext(), req.Sku, req.Amount)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}
