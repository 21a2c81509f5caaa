package postgres_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction coordination across
// the order and inventory repositories.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&inventoryrepo.InventoryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE line_items, orders, inventories RESTART IDENTITY").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// Begin is idempotent within one unit of work
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	// Commit without an active transaction fails
	suite.Require().Error(uow.Commit(ctx))
	suite.Require().Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReservationAndOrderCommitTogether() {
	ctx := context.Background()
	item := suite.seedInventory("Keyboard", 10)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.InventoryRepository().GetForUpdate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Reserve(4))
	suite.Require().NoError(uow.InventoryRepository().Update(ctx, locked))

	newOrder := suite.newOrderWithItem(locked, 4)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().InventoryRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(6, stored.Quantity())

	storedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.Len(storedOrder.Items(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsReservationAndOrder() {
	ctx := context.Background()
	item := suite.seedInventory("Keyboard", 10)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	locked, err := uow.InventoryRepository().GetForUpdate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Reserve(4))
	suite.Require().NoError(uow.InventoryRepository().Update(ctx, locked))

	newOrder := suite.newOrderWithItem(locked, 4)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.Rollback(ctx))

	stored, err := suite.factory.Create().InventoryRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(10, stored.Quantity(), "rolled back reservation must not consume stock")

	_, err = suite.factory.Create().OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestEditOrderReleasesAndReservesSameInventoryRow drives the edit handler
// against real Postgres with the replacement set hitting the same inventory
// row the order already holds: the released quantity must be visible to the
// locked re-read that the new reservation goes against.
func (suite *UnitOfWorkIntegrationTestSuite) TestEditOrderReleasesAndReservesSameInventoryRow() {
	ctx := context.Background()
	item := suite.seedInventory("Keyboard", 100)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	locked, err := uow.InventoryRepository().GetForUpdate(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Reserve(10))
	suite.Require().NoError(uow.InventoryRepository().Update(ctx, locked))
	placed := suite.newOrderWithItem(locked, 10)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	spec, err := commands.NewItemSpec(item.ID(), 5)
	suite.Require().NoError(err)
	cmd, err := commands.NewEditOrderCommand(placed.ID(), nil, nil, []commands.ItemSpec{spec})
	suite.Require().NoError(err)

	handler := commands.NewEditOrderCommandHandler(uowFactoryFunc(func() commands.UoW {
		return suite.factory.Create()
	}))
	suite.Require().NoError(handler.Handle(ctx, cmd))

	stored, err := suite.factory.Create().InventoryRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(95, stored.Quantity(), "10 released then 5 reserved from 90 on hand")

	storedOrder, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Require().Len(storedOrder.Items(), 1)
	suite.Equal(item.ID(), storedOrder.Items()[0].InventoryID())
	suite.Equal(5, storedOrder.Items()[0].Quantity())
}

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransactionUseMainConnection() {
	ctx := context.Background()
	uow := suite.factory.Create()

	item := suite.newInventory("Keyboard", 5)
	suite.Require().NoError(uow.InventoryRepository().Add(ctx, item))

	stored, err := suite.factory.Create().InventoryRepository().Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Keyboard", stored.Name())
}

func (suite *UnitOfWorkIntegrationTestSuite) newInventory(name string, quantity int) *inventory.Inventory {
	price, err := kernel.PriceFromString("79.99")
	suite.Require().NoError(err)

	item, err := inventory.NewInventory(name, "integration test item", price, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) seedInventory(name string, quantity int) *inventory.Inventory {
	item := suite.newInventory(name, quantity)
	uow := suite.factory.Create()
	suite.Require().NoError(uow.InventoryRepository().Add(context.Background(), item))
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrderWithItem(item *inventory.Inventory, quantity int) *order.Order {
	email, err := kernel.NewEmail("customer@example.com")
	suite.Require().NoError(err)

	o, err := order.NewOrder(email, time.Now())
	suite.Require().NoError(err)

	lineItem, err := order.NewLineItem(item.ID(), quantity, item.Price())
	suite.Require().NoError(err)
	suite.Require().NoError(o.AttachItem(lineItem))
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
