package models_test

import (
	"testing"
	"time"

	"gudang/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	order, err := models.NewOrder("", "  Test Customer  ", 100)

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "Test Customer", order.CustomerName, "customer name must be stored trimmed")
	assert.Equal(t, 100.0, order.Total)
	assert.WithinDuration(t, time.Now().UTC(), order.CreatedAt, time.Second)
}

func TestNewOrder_Invalid(t *testing.T) {
	_, err := models.NewOrder("", "   ", 100)
	assert.True(t, models.IsValidation(err))

	_, err = models.NewOrder("", "Test Customer", -1)
	assert.True(t, models.IsValidation(err))
}

func TestOrder_UpdateTotal(t *testing.T) {
	order, err := models.NewOrder("", "Test Customer", 100)
	require.NoError(t, err)

	require.NoError(t, order.UpdateTotal(0))
	assert.Equal(t, 0.0, order.Total)

	err = order.UpdateTotal(-5)
	assert.True(t, models.IsValidation(err))
	assert.Equal(t, 0.0, order.Total)
}
