package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves order summaries from the database.
// Aggregates line items in SQL so listings stay a single round trip.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all order summaries.
// Results are sorted by order ID for consistent output.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.email,
			o.date,
			o.status,
			COUNT(li.id),
			COALESCE(SUM(li.quantity * li.price), 0)
		FROM orders o
		LEFT JOIN line_items li ON li.order_id = o.id
		GROUP BY o.id, o.email, o.date, o.status
		ORDER BY o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetAllOrdersQueryResponse

		err = rows.Scan(
			&summary.ID,
			&summary.Email,
			&summary.Date,
			&summary.Status,
			&summary.ItemCount,
			&summary.Total,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
