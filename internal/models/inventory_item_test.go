package models_test

import (
	"testing"

	"gudang/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSKU(t *testing.T) {
	assert.Equal(t, "ABC-123", models.NormalizeSKU("  abc-123 "))
	assert.Equal(t, "ABC-123", models.NormalizeSKU("ABC-123"))
	assert.Equal(t, "", models.NormalizeSKU("   "))
}

func TestNewInventoryItem(t *testing.T) {
	item, err := models.NewInventoryItem("", " wid-1 ", 5)

	require.NoError(t, err)
	assert.NotEmpty(t, item.ID, "empty id must be replaced with a generated one")
	assert.Equal(t, "WID-1", item.Sku)
	assert.Equal(t, 5, item.Quantity)
}

func TestNewInventoryItem_Invalid(t *testing.T) {
	_, err := models.NewInventoryItem("", "  ", 5)
	assert.True(t, models.IsValidation(err))

	_, err = models.NewInventoryItem("", "WID-1", -1)
	assert.True(t, models.IsValidation(err))
}

func TestInventoryItem_AdjustQuantity(t *testing.T) {
	item, err := models.NewInventoryItem("", "WID-1", 5)
	require.NoError(t, err)

	require.NoError(t, item.AdjustQuantity(3))
	assert.Equal(t, 8, item.Quantity)

	require.NoError(t, item.AdjustQuantity(-8))
	assert.Equal(t, 0, item.Quantity)

	err = item.AdjustQuantity(-1)
	assert.True(t, models.IsInvariant(err))
	assert.Equal(t, 0, item.Quantity)
}
