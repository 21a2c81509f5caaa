package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem or RestoreLineItem factory methods.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrLineItemAlreadyIdentified is returned when attempting to assign a
	// storage identity to a line item that already has one.
	ErrLineItemAlreadyIdentified = errors.New("line item identity is already assigned")
)

// LineItem records a reservation of inventory on behalf of an order:
// which inventory item, how many units, and the unit price captured at
// reservation time. The price is a snapshot and never changes after
// creation, preserving price history even when the inventory item's
// price later changes.
//
// A line item belongs to exactly one order. Identity and order ownership
// are assigned by storage: a freshly constructed item carries zero IDs
// until the owning order is persisted.
type LineItem struct {
	// id is the storage-assigned identifier (0 until persisted)
	id uint64

	// orderID is the owning order's identifier (0 until persisted)
	orderID uint64

	// inventoryID references the reserved inventory item
	inventoryID uint64

	// quantity is the number of units reserved (at least 1)
	quantity int

	// price is the unit price snapshot taken at reservation time
	price kernel.Price

	// isConstructed ensures the line item was created via a factory method
	isConstructed bool
}

// NewLineItem creates a line item for a reservation of quantity units of
// the given inventory item at the given snapshot price.
func NewLineItem(inventoryID uint64, quantity int, price kernel.Price) (*LineItem, error) {
	item := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setInventoryID(inventoryID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreLineItem reconstructs a LineItem from persisted state.
func RestoreLineItem(id, orderID, inventoryID uint64, quantity int, price kernel.Price) (*LineItem, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if orderID == 0 {
		return nil, errs.NewValueIsRequiredError("orderId")
	}

	item := &LineItem{
		id:            id,
		orderID:       orderID,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setInventoryID(inventoryID),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the LineItem was properly constructed through a factory
// method. Returns ErrLineItemIsNotConstructed otherwise.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}

	return nil
}

// AssignIdentity records the storage-assigned identity and owning order
// after the first insert. Returns ErrLineItemAlreadyIdentified if the item
// already has an identity.
func (li *LineItem) AssignIdentity(id, orderID uint64) error {
	if li.id != 0 {
		return ErrLineItemAlreadyIdentified
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	li.id = id
	li.orderID = orderID
	return nil
}

// ID returns the line item's storage identifier (0 until persisted).
func (li *LineItem) ID() uint64 {
	return li.id
}

// OrderID returns the owning order's identifier (0 until persisted).
func (li *LineItem) OrderID() uint64 {
	return li.orderID
}

// InventoryID returns the reserved inventory item's identifier.
func (li *LineItem) InventoryID() uint64 {
	return li.inventoryID
}

// Quantity returns the number of units reserved.
func (li *LineItem) Quantity() int {
	return li.quantity
}

// Price returns the unit price snapshot taken at reservation time.
func (li *LineItem) Price() kernel.Price {
	return li.price
}

func (li *LineItem) setInventoryID(inventoryID uint64) error {
	if inventoryID == 0 {
		return errs.NewValueIsRequiredError("inventoryId")
	}
	li.inventoryID = inventoryID
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}

func (li *LineItem) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	li.price = price
	return nil
}
