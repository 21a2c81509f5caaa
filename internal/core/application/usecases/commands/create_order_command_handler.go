package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order row and reserves stock for every requested item inside
// one transaction: either the whole order is placed or nothing changes.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, inventory.ErrInsufficientStock) {
//	    // Nothing was reserved and no order was created
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires a UoWFactory spanning both order and inventory repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle processes the order creation command and returns the new order's ID.
//
// Items are reserved in request order, each against a row-locked inventory
// read, so concurrent orders for the same item serialize and the quantity
// on hand never goes negative. Any failure - unknown inventory,
// insufficient stock, storage error - rolls back the order row and every
// reservation made before it.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	date := cmd.Date()
	if date.IsZero() {
		date = time.Now()
	}

	newOrder, err := order.NewOrder(cmd.Email(), date)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	for _, spec := range cmd.Items() {
		item, getErr := inventoryRepo.GetForUpdate(ctx, spec.InventoryID())
		if getErr != nil {
			return 0, getErr
		}

		if reserveErr := h.allocator.Reserve(newOrder, item, spec.Quantity()); reserveErr != nil {
			return 0, reserveErr
		}

		if updateErr := inventoryRepo.Update(ctx, item); updateErr != nil {
			return 0, updateErr
		}
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
