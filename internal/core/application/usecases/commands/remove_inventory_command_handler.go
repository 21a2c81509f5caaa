package commands

import (
	"context"
	"time"
)

// RemoveInventoryCommandHandler handles soft deletion of inventory items.
// A second removal of the same item fails with
// inventory.ErrInventoryAlreadyDeleted.
type RemoveInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewRemoveInventoryCommandHandler creates a handler for inventory removal.
func NewRemoveInventoryCommandHandler(uowFactory InventoryUoWFactory) RemoveInventoryCommandHandler {
	return RemoveInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns errs.ErrObjectNotFound when the item never existed.
func (h *RemoveInventoryCommandHandler) Handle(ctx context.Context, cmd RemoveInventoryCommand) error {
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
	item, err := inventoryRepo.GetForRelease(ctx, cmd.InventoryID())
	if err != nil {
		return err
	}

	if err = item.MarkDeleted(time.Now()); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
