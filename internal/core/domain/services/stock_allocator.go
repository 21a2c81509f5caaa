package services

import (
	"fmt"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
)

// StockAllocator is a domain service that coordinates stock movement between
// the order and inventory aggregates. Reserving stock for an order and
// releasing it back are two-aggregate operations: the inventory quantity
// changes and the order's line item set changes, and the two must agree.
//
// The allocator performs no persistence. Callers load the inventory item
// (under a row lock when concurrent reservations are possible), invoke the
// allocator, and persist both aggregates inside one transaction.
//
// Business rules:
//   - A reservation captures the item's current price as a snapshot
//   - A reservation that exceeds the quantity on hand fails without
//     mutating either aggregate
//   - A release returns exactly the line item's reserved quantity
type StockAllocator struct{}

// NewStockAllocator creates a new StockAllocator instance.
func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Reserve commits qty units of the inventory item to the order: decrements
// the quantity on hand, snapshots the current price, and attaches a new
// line item to the order.
//
// Returns an error leaving both aggregates unchanged when the order or
// item is invalid, the order is not editable, the item is deleted, or the
// requested quantity exceeds the stock on hand (inventory.ErrInsufficientStock).
func (StockAllocator) Reserve(o *order.Order, item *inventory.Inventory, qty int) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	lineItem, err := order.NewLineItem(item.ID(), qty, item.Price())
	if err != nil {
		return err
	}

	if err = item.Reserve(qty); err != nil {
		return err
	}

	if err = o.AttachItem(lineItem); err != nil {
		// Undo the decrement so a failed attach leaves the item untouched.
		_ = item.Release(qty)
		return err
	}

	return nil
}

// Release returns a line item's reserved quantity to its inventory item.
// The line item must reference the given inventory item.
func (StockAllocator) Release(lineItem *order.LineItem, item *inventory.Inventory) error {
	if err := lineItem.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if lineItem.InventoryID() != item.ID() {
		return errs.NewValueIsInvalidErrorWithCause("inventoryId",
			fmt.Errorf("line item references inventory %d, got %d", lineItem.InventoryID(), item.ID()))
	}

	return item.Release(lineItem.Quantity())
}
