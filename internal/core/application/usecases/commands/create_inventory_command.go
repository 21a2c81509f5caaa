package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrCreateInventoryCommandIsNotConstructed = errors.New(
		"CreateInventoryCommand must be created via NewCreateInventoryCommand constructor",
	)
	ErrNameIsRequired        = errors.New("name is required")
	ErrDescriptionIsRequired = errors.New("description is required")
	ErrPriceIsInvalid        = errors.New("price must be greater than 0")
)

// CreateInventoryCommand represents a request to add a new product to the
// inventory ledger with an initial stock level.
type CreateInventoryCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Price
	quantity    int

	guard guard.ConstructorGuard
}

// NewCreateInventoryCommand creates a command to register a new inventory item.
// Name and description are required, the price must be strictly positive,
// and the initial quantity must be at least 1.
func NewCreateInventoryCommand(
	name, description string,
	price kernel.Price,
	quantity int,
) (CreateInventoryCommand, error) {
	cmd := CreateInventoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setDescription(description),
		cmd.setPrice(price),
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateInventoryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryCommandIsNotConstructed)
}

// Name returns the product's display name.
func (c CreateInventoryCommand) Name() string {
	return c.name
}

// Description returns the product's description.
func (c CreateInventoryCommand) Description() string {
	return c.description
}

// Price returns the product's unit price.
func (c CreateInventoryCommand) Price() kernel.Price {
	return c.price
}

// Quantity returns the initial stock level.
func (c CreateInventoryCommand) Quantity() int {
	return c.quantity
}

func (c *CreateInventoryCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateInventoryCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *CreateInventoryCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return ErrPriceIsInvalid
	}

	c.price = price
	return nil
}

func (c *CreateInventoryCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
