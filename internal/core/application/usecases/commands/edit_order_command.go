package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrEditOrderCommandIsNotConstructed = errors.New(
		"EditOrderCommand must be created via NewEditOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// EditOrderCommand represents a request to edit an existing order.
// Email and date are partial updates; a non-nil items slice is a full
// replacement of the order's line items, never a merge. A nil items slice
// leaves the order's reservations untouched.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	email   *kernel.Email
	date    *time.Time
	items   []ItemSpec
	// replaceItems distinguishes "replace with empty set" from "leave alone"
	replaceItems bool

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit an order.
// Pass a nil items slice to keep the current line items; any non-nil slice
// (including an empty one) replaces them wholesale.
func NewEditOrderCommand(
	orderID uint64,
	email *kernel.Email,
	date *time.Time,
	items []ItemSpec,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		email:        email,
		date:         date,
		items:        items,
		replaceItems: items != nil,
		guard:        guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return EditOrderCommand{}, err
	}

	if email != nil {
		if err := email.Validate(); err != nil {
			return EditOrderCommand{}, err
		}
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return EditOrderCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c EditOrderCommand) OrderID() uint64 {
	return c.orderID
}

// Email returns the replacement contact address, or nil to keep the current one.
func (c EditOrderCommand) Email() *kernel.Email {
	return c.email
}

// Date returns the replacement order date, or nil to keep the current one.
func (c EditOrderCommand) Date() *time.Time {
	return c.date
}

// Items returns the replacement order lines and whether a replacement was
// requested at all.
func (c EditOrderCommand) Items() ([]ItemSpec, bool) {
	return c.items, c.replaceItems
}

func (c *EditOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}
