package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gudang/internal/handlers"
	"gudang/internal/repositories"
	"gudang/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupApp wires a Fiber app on top of the in-memory repositories, the
// same way main does minus the broker.
func setupApp() *fiber.App {
	storeRepo := repositories.NewInMemoryStoreRepository()
	inventoryRepo := repositories.NewInMemoryInventoryRepository()
	orderRepo := repositories.NewInMemoryOrderRepository()

	inventoryService := services.NewInventoryService(storeRepo, nil)
	stockService := services.NewStockService(inventoryRepo, nil)
	orderService := services.NewOrderService(orderRepo, nil)

	app := fiber.New()
	apiV1 := app.Group("/api/v1")
	handlers.NewStoreHandler(inventoryService).RegisterRoutes(apiV1)
	handlers.NewStockHandler(stockService).RegisterRoutes(apiV1)
	handlers.NewOrderHandler(orderService).RegisterRoutes(apiV1)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestStoreEndpoints_ProductLifecycle(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/stores/", map[string]string{"name": "Acme"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var store struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	decodeBody(t, resp, &store)
	require.NotEmpty(t, store.ID)
	assert.Equal(t, "Acme", store.Name)

	productsPath := fmt.Sprintf("/api/v1/stores/%s/products/", store.ID)

	resp = doJSON(t, app, http.MethodPost, productsPath, map[string]interface{}{
		"name":     "Widget",
		"sku":      "WID-1",
		"price":    9.99,
		"quantity": 10,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var product struct {
		ID       string  `json:"id"`
		Price    float64 `json:"price"`
		Quantity int     `json:"quantity"`
	}
	decodeBody(t, resp, &product)
	assert.Equal(t, 9.99, product.Price)

	stockPath := fmt.Sprintf("%s%s/stock", productsPath, product.ID)
	resp = doJSON(t, app, http.MethodPut, stockPath, map[string]int{"quantity": 3})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, productsPath+product.ID, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, productsPath, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var products []interface{}
	decodeBody(t, resp, &products)
	assert.Empty(t, products)
}

func TestStoreEndpoints_NotFoundAndValidation(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodGet, "/api/v1/stores/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/stores/missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/stores/", map[string]string{"name": ""})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestInventoryEndpoints_IncreaseAndReduce(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/inventory/increase", map[string]interface{}{
		"sku":    "abc-123",
		"amount": 5,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/inventory/increase", map[string]interface{}{
		"sku":    "ABC-123",
		"amount": 3,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var item struct {
		Sku      string `json:"sku"`
		Quantity int    `json:"quantity"`
	}
	decodeBody(t, resp, &item)
	assert.Equal(t, "ABC-123", item.Sku)
	assert.Equal(t, 8, item.Quantity)

	// Over-reduce is an invariant violation, not a validation error.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/inventory/reduce", map[string]interface{}{
		"sku":    "ABC-123",
		"amount": 9,
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/inventory/reduce", map[string]interface{}{
		"sku":    "ABC-123",
		"amount": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/inventory/ABC-123", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &item)
	assert.Equal(t, 8, item.Quantity)
}

func TestOrderEndpoints(t *testing.T) {
	app := setupApp()

	resp := doJSON(t, app, http.MethodPost, "/api/v1/orders/", map[string]interface{}{
		"customer_name": "Test Customer",
		"total":         100,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/orders/", map[string]interface{}{
		"customer_name": "Test Customer",
		"total":         -1,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/orders/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var orders []struct {
		CustomerName string  `json:"customer_name"`
		Total        float64 `json:"total"`
	}
	decodeBody(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "Test Customer", orders[0].CustomerName)
}
