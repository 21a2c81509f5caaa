package queries

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	order, err := handler.Handle(ctx, query)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(orderID uint64) (GetOrderQuery, error) {
	query := GetOrderQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() uint64 {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("orderID")
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse represents a full order read model including
// line items resolved against the catalog.
type GetOrderQueryResponse struct {
	ID     uint64
	Email  string
	Date   time.Time
	Status string
	Items  []GetOrderItemResponse
}

// GetOrderItemResponse represents one order line in the read model.
// The price is the snapshot taken at reservation time; the current
// catalog record rides along as Inventory.
type GetOrderItemResponse struct {
	ID          uint64
	InventoryID uint64
	Quantity    int
	Price       decimal.Decimal
	Inventory   GetOrderItemInventoryResponse
}

// GetOrderItemInventoryResponse is the catalog record behind one order
// line, resolved even for soft-deleted entries. Its price and quantity
// are the current catalog values and may differ from the line snapshot.
type GetOrderItemInventoryResponse struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}
