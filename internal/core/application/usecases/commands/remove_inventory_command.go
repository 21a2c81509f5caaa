package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrRemoveInventoryCommandIsNotConstructed = errors.New(
	"RemoveInventoryCommand must be created via NewRemoveInventoryCommand constructor",
)

// RemoveInventoryCommand represents a request to soft-delete an inventory
// item. The row is kept for line-item history but excluded from lookups
// and reservations from then on.
type RemoveInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID uint64

	guard guard.ConstructorGuard
}

// NewRemoveInventoryCommand creates a command to soft-delete the given item.
func NewRemoveInventoryCommand(inventoryID uint64) (RemoveInventoryCommand, error) {
	cmd := RemoveInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setInventoryID(inventoryID); err != nil {
		return RemoveInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveInventoryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveInventoryCommandIsNotConstructed)
}

// InventoryID returns the identifier of the item to soft-delete.
func (c RemoveInventoryCommand) InventoryID() uint64 {
	return c.inventoryID
}

func (c *RemoveInventoryCommand) setInventoryID(inventoryID uint64) error {
	if inventoryID == 0 {
		return ErrInventoryIDIsRequired
	}

	c.inventoryID = inventoryID
	return nil
}
