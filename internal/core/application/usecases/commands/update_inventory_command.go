package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateInventoryCommandIsNotConstructed = errors.New(
		"UpdateInventoryCommand must be created via NewUpdateInventoryCommand constructor",
	)
	ErrInventoryQuantityIsNegative = errors.New("quantity must not be negative")
)

// UpdateInventoryCommand represents an administrative partial edit of an
// inventory item. A quantity set through this command is a new set-point
// and does not go through reserve/release accounting.
type UpdateInventoryCommand struct { //nolint:recvcheck //using for validation
	inventoryID uint64
	name        *string
	description *string
	price       *kernel.Price
	quantity    *int

	guard guard.ConstructorGuard
}

// NewUpdateInventoryCommand creates a command to edit an inventory item.
// Nil fields are left untouched; supplied fields are validated up front.
func NewUpdateInventoryCommand(
	inventoryID uint64,
	name, description *string,
	price *kernel.Price,
	quantity *int,
) (UpdateInventoryCommand, error) {
	cmd := UpdateInventoryCommand{
		name:        name,
		description: description,
		price:       price,
		quantity:    quantity,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setInventoryID(inventoryID); err != nil {
		return UpdateInventoryCommand{}, err
	}

	if name != nil && *name == "" {
		return UpdateInventoryCommand{}, ErrNameIsRequired
	}
	if description != nil && *description == "" {
		return UpdateInventoryCommand{}, ErrDescriptionIsRequired
	}
	if price != nil {
		if err := price.Validate(); err != nil {
			return UpdateInventoryCommand{}, err
		}
	}
	if quantity != nil && *quantity < 0 {
		return UpdateInventoryCommand{}, ErrInventoryQuantityIsNegative
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInventoryCommandIsNotConstructed)
}

// InventoryID returns the identifier of the item to edit.
func (c UpdateInventoryCommand) InventoryID() uint64 {
	return c.inventoryID
}

// Name returns the replacement name, or nil to keep the current one.
func (c UpdateInventoryCommand) Name() *string {
	return c.name
}

// Description returns the replacement description, or nil to keep the current one.
func (c UpdateInventoryCommand) Description() *string {
	return c.description
}

// Price returns the replacement unit price, or nil to keep the current one.
func (c UpdateInventoryCommand) Price() *kernel.Price {
	return c.price
}

// Quantity returns the replacement quantity set-point, or nil to keep the current one.
func (c UpdateInventoryCommand) Quantity() *int {
	return c.quantity
}

func (c *UpdateInventoryCommand) setInventoryID(inventoryID uint64) error {
	if inventoryID == 0 {
		return ErrInventoryIDIsRequired
	}

	c.inventoryID = inventoryID
	return nil
}
