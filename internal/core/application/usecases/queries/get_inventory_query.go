package queries

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetInventoryQueryIsNotConstructed = errors.New(
	"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
)

// GetInventoryQuery retrieves a single catalog entry by ID.
//
// Example:
//
//	query, err := NewGetInventoryQuery(inventoryID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetInventoryQueryHandler(db)
//	item, err := handler.Handle(ctx, query)
type GetInventoryQuery struct { //nolint:recvcheck //using for validation
	inventoryID uint64

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a query to retrieve one inventory item.
func NewGetInventoryQuery(inventoryID uint64) (GetInventoryQuery, error) {
	query := GetInventoryQuery{guard: guard.NewConstructorGuard()}

	if err := query.setInventoryID(inventoryID); err != nil {
		return GetInventoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetInventoryQueryIsNotConstructed if validation fails.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// InventoryID returns the identifier of the requested item.
func (q GetInventoryQuery) InventoryID() uint64 {
	return q.inventoryID
}

func (q *GetInventoryQuery) setInventoryID(inventoryID uint64) error {
	if inventoryID == 0 {
		return errs.NewValueIsRequiredError("inventoryID")
	}

	q.inventoryID = inventoryID
	return nil
}

// GetInventoryQueryResponse represents a single catalog entry read model.
type GetInventoryQueryResponse struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}
