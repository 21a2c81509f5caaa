package commands

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
)

// CreateInventoryCommandHandler handles registration of new inventory items.
type CreateInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewCreateInventoryCommandHandler creates a handler for inventory creation.
func NewCreateInventoryCommandHandler(uowFactory InventoryUoWFactory) CreateInventoryCommandHandler {
	return CreateInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the new item's ID.
func (h *CreateInventoryCommandHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) (uint64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	item, err := inventory.NewInventory(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Quantity())
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

	if err = uow.InventoryRepository().Add(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.ID(), nil
}
