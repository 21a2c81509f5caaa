package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when attempting to assign a storage
	// identity to an order that already has one.
	ErrOrderIDAlreadyAssigned = errors.New("order ID is already assigned")

	// ErrOrderIsNotEditable is returned when line items are attached to or
	// detached from an order outside the Created status. Terminal orders keep
	// their line items frozen as history.
	ErrOrderIsNotEditable = errors.New("order line items can only change while the order is in created status")
)

// Order represents a customer order. It is the aggregate root that owns the
// order's line items and manages the lifecycle from creation to a terminal
// canceled or completed state.
//
// Order follows these invariants:
//   - Must have a valid customer email and a non-zero order date
//   - Status transitions follow the Created -> Canceled | Completed machine
//   - Line items always belong to exactly this order
//   - Line items change only while the order is in Created status;
//     cancellation keeps them as history
//   - Can only be created through NewOrder or RestoreOrder
//
// Identity is assigned by storage: a freshly constructed order carries ID 0
// until the repository persists it and calls AssignID.
type Order struct {
	// id is the storage-assigned identifier (0 until persisted)
	id uint64

	// email is the customer's contact address
	email kernel.Email

	// date is the order date
	date time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items are the line items owned by this order
	items []*LineItem

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Created status with no line items.
// The email must be a constructed kernel.Email and the date must not be
// the zero time; callers default an omitted date to the current time.
func NewOrder(email kernel.Email, date time.Time) (*Order, error) {
	o := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setEmail(email),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persisted state,
// including its line items. Every line item must already belong to the
// restored order.
func RestoreOrder(id uint64, email kernel.Email, date time.Time, status Status, items []*LineItem) (*Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setEmail(email),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if item.OrderID() != id {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderId",
				fmt.Errorf("line item %d belongs to order %d, not %d", item.ID(), item.OrderID(), id))
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their storage identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// AssignID records the storage-assigned identifier after the first insert
// and attributes any already-attached line items to it.
// Returns ErrOrderIDAlreadyAssigned if the order already has an identity.
func (o *Order) AssignID(id uint64) error {
	if o.id != 0 {
		return ErrOrderIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}

	o.id = id
	for _, item := range o.items {
		item.orderID = id
	}
	return nil
}

// ID returns the order's storage identifier (0 until persisted).
func (o *Order) ID() uint64 {
	return o.id
}

// Email returns the customer's contact address.
func (o *Order) Email() kernel.Email {
	return o.email
}

// Date returns the order date.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items owned by this order.
func (o *Order) Items() []*LineItem {
	return o.items
}

// ChangeContact updates the customer email and/or order date.
// Nil fields are left untouched and line items are never affected.
// Terminal orders are frozen and reject edits with ErrOrderIsNotEditable.
func (o *Order) ChangeContact(email *kernel.Email, date *time.Time) error {
	if o.status != Created {
		return ErrOrderIsNotEditable
	}
	if email != nil {
		if err := o.setEmail(*email); err != nil {
			return err
		}
	}
	if date != nil {
		if err := o.setDate(*date); err != nil {
			return err
		}
	}

	return nil
}

// AttachItem takes ownership of a line item. The item must be freshly
// constructed (no identity yet) and the order must still be in Created
// status; terminal orders keep their item set frozen.
func (o *Order) AttachItem(item *LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if o.status != Created {
		return ErrOrderIsNotEditable
	}
	if item.id != 0 && item.orderID != o.id {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("line item %d already belongs to order %d", item.ID(), item.OrderID()))
	}

	item.orderID = o.id
	o.items = append(o.items, item)
	return nil
}

// ClearItems detaches and returns all line items so their reservations can
// be released and the rows deleted. Only valid in Created status: replacing
// the item set is the first half of a full replacement, never a merge.
func (o *Order) ClearItems() ([]*LineItem, error) {
	if o.status != Created {
		return nil, ErrOrderIsNotEditable
	}

	detached := o.items
	o.items = nil
	return detached, nil
}

// Cancel transitions the order to the terminal Canceled status.
//
// Returns ErrOrderAlreadyCanceled if the order is already canceled -
// cancellation is not idempotent by design. Line items are kept as
// history; the caller is responsible for releasing their reservations
// exactly once, in the same transaction as this status change.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete transitions the order to the terminal Completed status.
// Completion has no stock side effects: reservations stay consumed.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	o.email = email
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}
