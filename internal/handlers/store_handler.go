package handlers

import (
	"log"

	"gudang/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StoreHandler handles HTTP requests for stores and their products.
type StoreHandler struct {
	service  *services.InventoryService
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.InventoryService) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: validator.New(),
	}
}

// CreateStoreRequest is the payload for creating a store.
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// UpdateStoreRequest is the payload for renaming a store.
type UpdateStoreRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// CreateProductRequest is the payload for adding a product to a store.
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Sku      string  `json:"sku" validate:"required,max=100"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UpdateProductRequest is the payload for overwriting a product.
type UpdateProductRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UpdateStockRequest is the payload for setting a product's stock.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

// RegisterRoutes registers the store and product routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	stores := router.Group("/stores")
	stores.Get("/", h.HandleGetStores)
	stores.Post("/", h.HandleCreateStore)
	stores.Get("/:storeId", h.HandleGetStore)
	stores.Put("/:storeId", h.HandleUpdateStore)
	stores.Delete("/:storeId", h.HandleDeleteStore)

	products := stores.Group("/:storeId/products")
	products.Get("/", h.HandleGetProducts)
	products.Post("/", h.HandleCreateProduct)
	products.Get("/:productId", h.HandleGetProduct)
	products.Put("/:productId", h.HandleUpdateProduct)
	products.Delete("/:productId", h.HandleDeleteProduct)
	products.Put("/:productId/stock", h.HandleUpdateProductStock)
}

// HandleGetStores lists all stores.
func (h *StoreHandler) HandleGetStores(c *fiber.Ctx) error {
	stores, err := h.service.ListStores(c.UserContext())
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		return respondError(c, err)
	}
	return c.JSON(stores)
}

// HandleGetStore returns a single store.
func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	store, err := h.service.GetStore(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"id":       store.ID,
		"name":     store.Name,
		"products": store.Products(),
	})
}

// HandleCreateStore creates a new store.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req CreateStoreRequest
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

	store, err := h.service.CreateStore(c.UserContext(), req.Name)
	if err != nil {
		log.Printf("Error creating store: %v", err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleUpdateStore renames a store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	var req UpdateStoreRequest
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

	if err := h.service.RenameStore(c.UserContext(), c.Params("storeId"), req.Name); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteStore removes a store and all its products.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	if err := h.service.DeleteStore(c.UserContext(), c.Params("storeId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetProducts lists a store's products.
func (h *StoreHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product from a store.
func (h *StoreHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.service.GetProduct(c.UserContext(), c.Params("storeId"), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// HandleCreateProduct adds a product to a store.
func (h *StoreHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
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

	product, err := h.service.AddProduct(c.UserContext(), c.Params("storeId"), req.Name, req.Sku, req.Price, req.Quantity)
	if err != nil {
		log.Printf("Error adding product to store %s: %v", c.Params("storeId"), err)
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct overwrites a product's fields.
func (h *StoreHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req UpdateProductRequest
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

	err := h.service.UpdateProduct(c.UserContext(), c.Params("storeId"), c.Params("productId"), req.Name, req.Price, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUpdateProductStock sets a product's stock quantity.
func (h *StoreHandler) HandleUpdateProductStock(c *fiber.Ctx) error {
	var req UpdateStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	err := h.service.UpdateProductStock(c.UserContext(), c.Params("storeId"), c.Params("productId"), req.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteProduct removes a product from a store.
func (h *StoreHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	err := h.service.DeleteProduct(c.UserContext(), c.Params("storeId"), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
