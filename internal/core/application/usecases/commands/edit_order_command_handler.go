package commands

import (
	"context"

	"storefront/internal/core/domain/services"
)

// EditOrderCommandHandler handles order edits: partial contact updates and
// full line-item replacement.
//
// Replacing items is release-then-reserve: every current reservation is
// returned to inventory and its row deleted, then the new set is reserved
// with fresh price snapshots. The whole exchange runs in one transaction,
// so a failure while reserving the new set restores the original
// reservation state exactly.
type EditOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.StockAllocator
}

// NewEditOrderCommandHandler creates a handler for order edits.
// Requires a UoWFactory spanning both order and inventory repositories.
func NewEditOrderCommandHandler(uowFactory UoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewStockAllocator(),
	}
}

// Handle processes the edit command.
//
// Returns errs.ErrObjectNotFound when the order does not exist. Item
// replacement is only valid while the order is in created status; the
// order aggregate rejects it otherwise. The order is loaded with a row
// lock, so an edit racing a cancel of the same order serializes and the
// loser observes the terminal status.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	if err = existing.ChangeContact(cmd.Email(), cmd.Date()); err != nil {
		return err
	}

	if specs, replace := cmd.Items(); replace {
		inventoryRepo := uow.InventoryRepository()

		detached, clearErr := existing.ClearItems()
		if clearErr != nil {
			return clearErr
		}

		for _, lineItem := range detached {
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

		if err = orderRepo.DeleteLineItems(ctx, existing.ID()); err != nil {
			return err
		}

		for _, spec := range specs {
			item, getErr := inventoryRepo.GetForUpdate(ctx, spec.InventoryID())
			if getErr != nil {
				return getErr
			}

			if reserveErr := h.allocator.Reserve(existing, item, spec.Quantity()); reserveErr != nil {
				return reserveErr
			}

			if updateErr := inventoryRepo.Update(ctx, item); updateErr != nil {
				return updateErr
			}
		}
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
