package commands

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new customer order
// with an initial set of stock reservations.
//
// Example:
//
//	email, _ := kernel.NewEmail("customer@example.com")
//	item, _ := NewItemSpec(inventoryID, 10)
//	cmd, err := NewCreateOrderCommand(email, time.Time{}, []ItemSpec{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	email kernel.Email
	date  time.Time
	items []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The date may be the zero time, in which case the handler defaults it to
// the current time. Every item spec must have been built via NewItemSpec.
func NewCreateOrderCommand(email kernel.Email, date time.Time, items []ItemSpec) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		date:  date,
		items: items,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return CreateOrderCommand{}, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Email returns the customer's contact address.
func (c CreateOrderCommand) Email() kernel.Email {
	return c.email
}

// Date returns the requested order date, or the zero time when omitted.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

// Items returns the requested order lines in request order.
func (c CreateOrderCommand) Items() []ItemSpec {
	return c.items
}

func (c *CreateOrderCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}
