package queries

import (
	"errors"

	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAllInventoriesQueryIsNotConstructed = errors.New(
	"GetAllInventoriesQuery must be created via NewGetAllInventoriesQuery constructor",
)

// GetAllInventoriesQuery retrieves the full product catalog.
// Soft-deleted items are excluded: they exist only so historical orders
// can still resolve their line items.
//
// Example:
//
//	query := NewGetAllInventoriesQuery()
//	handler := NewGetAllInventoriesQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get catalog: %w", err)
//	}
type GetAllInventoriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInventoriesQuery creates a query to retrieve the active catalog.
// This is a parameterless query that fetches all non-deleted inventory items.
func NewGetAllInventoriesQuery() GetAllInventoriesQuery {
	return GetAllInventoriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllInventoriesQueryIsNotConstructed if validation fails.
func (q GetAllInventoriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInventoriesQueryIsNotConstructed)
}

// GetAllInventoriesQueryResponse represents a catalog entry read model.
type GetAllInventoriesQueryResponse struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}
