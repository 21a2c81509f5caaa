package commands

import (
	"context"
)

// UpdateInventoryCommandHandler handles administrative edits of inventory
// items. Edits go against a row-locked read so they cannot race with
// concurrent reservations on the same item.
type UpdateInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewUpdateInventoryCommandHandler creates a handler for inventory edits.
func NewUpdateInventoryCommandHandler(uowFactory InventoryUoWFactory) UpdateInventoryCommandHandler {
	return UpdateInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit command.
// Returns errs.ErrObjectNotFound when the item does not exist or is deleted.
func (h *UpdateInventoryCommandHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) error {
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

	inventoryRepo := uow.InventoryRepository()
	item, err := inventoryRepo.GetForUpdate(ctx, cmd.InventoryID())
	if err != nil {
		return err
	}

	if err = item.ApplyUpdate(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Quantity()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
