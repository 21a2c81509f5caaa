package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents a request to mark an order as fulfilled.
// Completion is a pure status transition: reserved stock stays consumed.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the given order.
func NewCompleteOrderCommand(orderID uint64) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() uint64 {
	return c.orderID
}

func (c *CompleteOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
