package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its line items from
// the database. Line items are joined against the catalog so responses
// carry the full inventory record alongside the snapshotted price.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order and its line items.
// Returns errs.ErrObjectNotFound when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			date,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.Email,
		&resp.Date,
		&resp.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	items, err := h.loadItems(ctx, resp.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Items = items

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID uint64) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			li.id,
			li.inventory_id,
			li.quantity,
			li.price,
			i.name,
			i.description,
			i.price,
			i.quantity
		FROM line_items li
		JOIN inventories i ON i.id = li.inventory_id
		WHERE li.order_id = ?
		ORDER BY li.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse

		err = rows.Scan(
			&item.ID,
			&item.InventoryID,
			&item.Quantity,
			&item.Price,
			&item.Inventory.Name,
			&item.Inventory.Description,
			&item.Inventory.Price,
			&item.Inventory.Quantity,
		)
		if err != nil {
			return nil, err
		}

		item.Inventory.ID = item.InventoryID
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
