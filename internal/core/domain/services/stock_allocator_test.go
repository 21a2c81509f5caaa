package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, value string) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromString(value)
	require.NoError(t, err)
	return price
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	email, err := kernel.NewEmail("customer@example.com")
	require.NoError(t, err)
	o, err := order.NewOrder(email, time.Now())
	require.NoError(t, err)
	return o
}

func newTestInventory(t *testing.T, quantity int) *inventory.Inventory {
	t.Helper()
	item, err := inventory.NewInventory("test inventory", "test description", mustPrice(t, "10"), quantity)
	require.NoError(t, err)
	require.NoError(t, item.AssignID(7))
	return item
}

func TestStockAllocator_Reserve(t *testing.T) {
	allocator := services.NewStockAllocator()

	t.Run("reserves stock and attaches line item", func(t *testing.T) {
		o := newTestOrder(t)
		item := newTestInventory(t, 100)

		require.NoError(t, allocator.Reserve(o, item, 10))

		assert.Equal(t, 90, item.Quantity())
		require.Len(t, o.Items(), 1)
		lineItem := o.Items()[0]
		assert.Equal(t, uint64(7), lineItem.InventoryID())
		assert.Equal(t, 10, lineItem.Quantity())
		assert.True(t, lineItem.Price().IsEqual(item.Price()))
	})

	t.Run("price snapshot survives later price change", func(t *testing.T) {
		o := newTestOrder(t)
		item := newTestInventory(t, 100)
		originalPrice := item.Price()

		require.NoError(t, allocator.Reserve(o, item, 10))

		newPrice := mustPrice(t, "99.99")
		require.NoError(t, item.ApplyUpdate(nil, nil, &newPrice, nil))

		assert.True(t, o.Items()[0].Price().IsEqual(originalPrice))
	})

	t.Run("insufficient stock leaves both aggregates unchanged", func(t *testing.T) {
		o := newTestOrder(t)
		item := newTestInventory(t, 100)

		err := allocator.Reserve(o, item, 1000)

		require.ErrorIs(t, err, inventory.ErrInsufficientStock)
		assert.Equal(t, 100, item.Quantity())
		assert.Empty(t, o.Items())
	})

	t.Run("canceled order restores the decrement", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Cancel())
		item := newTestInventory(t, 100)

		err := allocator.Reserve(o, item, 10)

		require.ErrorIs(t, err, order.ErrOrderIsNotEditable)
		assert.Equal(t, 100, item.Quantity())
		assert.Empty(t, o.Items())
	})

	t.Run("rejects invalid quantity", func(t *testing.T) {
		o := newTestOrder(t)
		item := newTestInventory(t, 100)

		require.Error(t, allocator.Reserve(o, item, 0))
		assert.Equal(t, 100, item.Quantity())
	})
}

func TestStockAllocator_Release(t *testing.T) {
	allocator := services.NewStockAllocator()

	t.Run("returns the reserved quantity", func(t *testing.T) {
		item := newTestInventory(t, 90)
		lineItem, err := order.RestoreLineItem(21, 9, 7, 10, mustPrice(t, "10"))
		require.NoError(t, err)

		require.NoError(t, allocator.Release(lineItem, item))
		assert.Equal(t, 100, item.Quantity())
	})

	t.Run("rejects mismatched inventory", func(t *testing.T) {
		item := newTestInventory(t, 90)
		lineItem, err := order.RestoreLineItem(21, 9, 8, 10, mustPrice(t, "10"))
		require.NoError(t, err)

		require.Error(t, allocator.Release(lineItem, item))
		assert.Equal(t, 90, item.Quantity())
	})
}

func TestStockAllocator_ReserveReleaseNetsToZero(t *testing.T) {
	allocator := services.NewStockAllocator()
	o := newTestOrder(t)
	item := newTestInventory(t, 100)

	require.NoError(t, allocator.Reserve(o, item, 10))
	require.NoError(t, allocator.Reserve(o, item, 5))

	detached, err := o.ClearItems()
	require.NoError(t, err)
	for _, lineItem := range detached {
		require.NoError(t, allocator.Release(lineItem, item))
	}

	assert.Equal(t, 100, item.Quantity())
}
