package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// CancelOrderCommandHandler handles order cancellation.
//
// Cancellation flips the order to its terminal canceled status and returns
// every line item's reserved quantity to inventory, in one transaction.
// Line items are kept as history; only their stock effect is reversed.
// Canceling an already-canceled order fails with order.ErrOrderAlreadyCanceled
// and releases nothing, so stock is never returned twice.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires a UoWFactory spanning both order and inventory repositories.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle processes the cancellation command.
//
// The order is loaded with a row lock, so a second concurrent cancel
// blocks until this one commits and then sees the canceled status.
// Releases go against freshly locked inventory rows read inside the
// transaction, never against quantities remembered from an earlier load,
// so concurrent reservations cannot be lost.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.Cancel(); err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	for _, lineItem := range existing.Items() {
		item, getErr := inventoryRepo.GetForRelease(ctx, lineItem.InventoryID())
		if getErr != nil {
			return getErr
		}

		if releaseErr := h.allocator.Release(lineItem, item); releaseErr != nil {
			return releaseErr
		}

		if updateErr := inventoryRepo.Update(ctx, item); updateErr != nil {
			return updateErr
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
