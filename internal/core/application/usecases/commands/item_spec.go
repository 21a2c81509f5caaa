package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrItemSpecIsNotConstructed = errors.New(
		"ItemSpec must be created via NewItemSpec constructor",
	)
	ErrInventoryIDIsRequired = errors.New("inventory id is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
)

// ItemSpec describes one requested order line: which inventory item and how
// many units. It is shared by the create-order and edit-order commands; the
// price is never part of the request, it is snapshotted from inventory at
// reservation time.
type ItemSpec struct { //nolint:recvcheck //using for validation
	inventoryID uint64
	quantity    int

	guard guard.ConstructorGuard
}

// NewItemSpec creates a requested order line.
// Validates that the inventory id is set and the quantity is at least 1.
func NewItemSpec(inventoryID uint64, quantity int) (ItemSpec, error) {
	spec := ItemSpec{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setInventoryID(inventoryID),
		spec.setQuantity(quantity),
	); err != nil {
		return ItemSpec{}, err
	}

	return spec, nil
}

// Validate ensures the spec was created through the constructor.
func (s ItemSpec) Validate() error {
	return s.guard.Validate(ErrItemSpecIsNotConstructed)
}

// InventoryID returns the requested inventory item's identifier.
func (s ItemSpec) InventoryID() uint64 {
	return s.inventoryID
}

// Quantity returns the requested number of units.
func (s ItemSpec) Quantity() int {
	return s.quantity
}

func (s *ItemSpec) setInventoryID(inventoryID uint64) error {
	if inventoryID == 0 {
		return ErrInventoryIDIsRequired
	}

	s.inventoryID = inventoryID
	return nil
}

func (s *ItemSpec) setQuantity(quantity int) error {
	if quantity < 1 {
		return ErrQuantityIsInvalid
	}

	s.quantity = quantity
	return nil
}
