package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id uint64) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, id uint64) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetForRelease(ctx context.Context, id uint64) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) GetAll(ctx context.Context) ([]*inventory.Inventory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*inventory.Inventory), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id uint64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteLineItems(ctx context.Context, orderID uint64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

func mustEmail(t *testing.T, address string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail(address)
	require.NoError(t, err)
	return email
}

func mustPrice(t *testing.T, value string) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromString(value)
	require.NoError(t, err)
	return price
}

func mustItemSpec(t *testing.T, inventoryID uint64, quantity int) commands.ItemSpec {
	t.Helper()
	spec, err := commands.NewItemSpec(inventoryID, quantity)
	require.NoError(t, err)
	return spec
}

func restoredInventory(t *testing.T, id uint64, quantity int) *inventory.Inventory {
	t.Helper()
	item, err := inventory.RestoreInventory(id, "test inventory", "test description",
		mustPrice(t, "10"), quantity, nil)
	require.NoError(t, err)
	return item
}

func restoredOrder(t *testing.T, id uint64, status order.Status, items []*order.LineItem) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, mustEmail(t, "customer@example.com"), time.Now(), status, items)
	require.NoError(t, err)
	return o
}

func restoredLineItem(t *testing.T, id, orderID, inventoryID uint64, quantity int) *order.LineItem {
	t.Helper()
	item, err := order.RestoreLineItem(id, orderID, inventoryID, quantity, mustPrice(t, "10"))
	require.NoError(t, err)
	return item
}
