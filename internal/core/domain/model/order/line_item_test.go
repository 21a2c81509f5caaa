package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, value string) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromString(value)
	require.NoError(t, err)
	return price
}

func TestNewLineItem_Valid(t *testing.T) {
	price := mustPrice(t, "19.99")

	item, err := order.NewLineItem(7, 3, price)
	require.NoError(t, err)
	require.NoError(t, item.Validate())

	assert.Equal(t, uint64(0), item.ID())
	assert.Equal(t, uint64(0), item.OrderID())
	assert.Equal(t, uint64(7), item.InventoryID())
	assert.Equal(t, 3, item.Quantity())
	assert.True(t, item.Price().IsEqual(price))
}

func TestNewLineItem_Invalid(t *testing.T) {
	price := mustPrice(t, "10")

	tests := []struct {
		name        string
		inventoryID uint64
		quantity    int
		price       kernel.Price
	}{
		{"zero inventory id", 0, 1, price},
		{"zero quantity", 7, 0, price},
		{"negative quantity", 7, -1, price},
		{"unconstructed price", 7, 1, kernel.Price{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewLineItem(tt.inventoryID, tt.quantity, tt.price)
			require.Error(t, err)
		})
	}
}

func TestLineItem_Validate_NotConstructed(t *testing.T) {
	var item order.LineItem
	require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)

	var nilItem *order.LineItem
	require.ErrorIs(t, nilItem.Validate(), order.ErrLineItemIsNotConstructed)
}

func TestLineItem_AssignIdentity(t *testing.T) {
	item, err := order.NewLineItem(7, 3, mustPrice(t, "10"))
	require.NoError(t, err)

	require.NoError(t, item.AssignIdentity(21, 9))
	assert.Equal(t, uint64(21), item.ID())
	assert.Equal(t, uint64(9), item.OrderID())

	require.ErrorIs(t, item.AssignIdentity(22, 9), order.ErrLineItemAlreadyIdentified)
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("restores persisted state", func(t *testing.T) {
		item, err := order.RestoreLineItem(21, 9, 7, 3, mustPrice(t, "19.99"))
		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, uint64(21), item.ID())
		assert.Equal(t, uint64(9), item.OrderID())
	})

	t.Run("rejects missing identity", func(t *testing.T) {
		_, err := order.RestoreLineItem(0, 9, 7, 3, mustPrice(t, "10"))
		require.Error(t, err)

		_, err = order.RestoreLineItem(21, 0, 7, 3, mustPrice(t, "10"))
		require.Error(t, err)
	})
}
