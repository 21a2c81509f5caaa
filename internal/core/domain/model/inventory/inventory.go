package inventory

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var (
	// ErrInventoryIsNotConstructed is returned when an Inventory instance was not created
	// through the NewInventory or RestoreInventory factory methods.
	ErrInventoryIsNotConstructed = errors.New("Inventory must be created via NewInventory constructor")

	// ErrInsufficientStock is returned when a reservation requests more units
	// than the item currently has on hand.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInventoryAlreadyDeleted is returned when soft-deleting an item that
	// has already been removed.
	ErrInventoryAlreadyDeleted = errors.New("inventory is already deleted")

	// ErrIDAlreadyAssigned is returned when attempting to assign a storage
	// identity to an item that already has one.
	ErrIDAlreadyAssigned = errors.New("inventory ID is already assigned")
)

// Inventory represents a sellable product and its authoritative stock level.
// It is the aggregate root of the inventory ledger: the quantity on hand is
// mutated only through Reserve and Release (issued by the order lifecycle)
// or through an explicit administrative ApplyUpdate.
//
// Inventory follows these invariants:
//   - Quantity on hand is never negative after any operation completes
//   - A soft-deleted item is never reservable
//   - Can only be created through NewInventory or RestoreInventory
//
// Identity is assigned by storage: a freshly constructed item carries ID 0
// until the repository persists it and calls AssignID.
type Inventory struct {
	// id is the storage-assigned identifier (0 until persisted)
	id uint64

	// name is the product's display name
	name string

	// description is the product's free-form description
	description string

	// price is the current unit price, snapshotted into line items on reservation
	price kernel.Price

	// quantity is the number of units on hand (never negative)
	quantity int

	// deletedAt marks the item soft-deleted; nil while active
	deletedAt *time.Time

	// isConstructed ensures the item was created via a factory method
	isConstructed bool
}

// NewInventory creates a new Inventory item with validation.
//
// The name and description are required, the price must be strictly
// positive, and the initial quantity must be greater than zero. The item
// starts active (not deleted) with no storage identity yet.
func NewInventory(name, description string, price kernel.Price, quantity int) (*Inventory, error) {
	item := &Inventory{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setName(name),
		item.setDescription(description),
		item.setInitialPrice(price),
		item.setInitialQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreInventory reconstructs an Inventory item from persisted state.
// Unlike NewInventory it accepts zero quantity and a deletion marker,
// since both are legal persisted states.
func RestoreInventory(
	id uint64,
	name, description string,
	price kernel.Price,
	quantity int,
	deletedAt *time.Time,
) (*Inventory, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}

	item := &Inventory{
		id:            id,
		name:          name,
		description:   description,
		price:         price,
		quantity:      quantity,
		deletedAt:     deletedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setName(name),
		item.setDescription(description),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Inventory instance was properly constructed through
// a factory method. Returns ErrInventoryIsNotConstructed otherwise.
func (i *Inventory) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInventoryIsNotConstructed
	}

	return nil
}

// AssignID records the storage-assigned identifier after the first insert.
// Returns ErrIDAlreadyAssigned if the item already has an identity.
func (i *Inventory) AssignID(id uint64) error {
	if i.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("id")
	}

	i.id = id
	return nil
}

// ID returns the item's storage identifier (0 until persisted).
func (i *Inventory) ID() uint64 {
	return i.id
}

// Name returns the product's display name.
func (i *Inventory) Name() string {
	return i.name
}

// Description returns the product's description.
func (i *Inventory) Description() string {
	return i.description
}

// Price returns the current unit price.
func (i *Inventory) Price() kernel.Price {
	return i.price
}

// Quantity returns the number of units on hand.
func (i *Inventory) Quantity() int {
	return i.quantity
}

// DeletedAt returns the soft-deletion timestamp, or nil while active.
func (i *Inventory) DeletedAt() *time.Time {
	return i.deletedAt
}

// IsDeleted reports whether the item has been soft-deleted.
func (i *Inventory) IsDeleted() bool {
	return i.deletedAt != nil
}

// Reserve decrements the quantity on hand by qty to commit stock to an
// order line item.
//
// Returns an error without mutating the item when:
//   - qty is not at least 1
//   - the item is soft-deleted (treated as not found by callers)
//   - qty exceeds the quantity on hand (ErrInsufficientStock)
func (i *Inventory) Reserve(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if i.IsDeleted() {
		return errs.NewObjectNotFoundError("inventoryId", i.id)
	}
	if qty > i.quantity {
		return fmt.Errorf("%w: inventory %d has %d on hand, requested %d",
			ErrInsufficientStock, i.id, i.quantity, qty)
	}

	i.quantity -= qty
	return nil
}

// Release increments the quantity on hand by qty, undoing a prior
// reservation. A soft-deleted item still accepts releases so that
// canceling an order always returns its reserved stock.
func (i *Inventory) Release(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}

	i.quantity += qty
	return nil
}

// ApplyUpdate performs an administrative partial edit of the item.
// Nil fields are left untouched. Updating the quantity through this path
// sets a new administrative set-point and does not go through
// reserve/release semantics.
func (i *Inventory) ApplyUpdate(name, description *string, price *kernel.Price, quantity *int) error {
	if name != nil {
		if err := i.setName(*name); err != nil {
			return err
		}
	}
	if description != nil {
		if err := i.setDescription(*description); err != nil {
			return err
		}
	}
	if price != nil {
		if err := price.Validate(); err != nil {
			return err
		}
		i.price = *price
	}
	if quantity != nil {
		if *quantity < 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is negative", *quantity))
		}
		i.quantity = *quantity
	}

	return nil
}

// MarkDeleted soft-deletes the item: it is excluded from normal lookups
// thereafter but retained for line-item history. Returns
// ErrInventoryAlreadyDeleted when the item is already deleted.
func (i *Inventory) MarkDeleted(now time.Time) error {
	if i.IsDeleted() {
		return ErrInventoryAlreadyDeleted
	}

	i.deletedAt = &now
	return nil
}

func (i *Inventory) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Inventory) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Inventory) setInitialPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price")
	}
	i.price = price
	return nil
}

func (i *Inventory) setInitialQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
