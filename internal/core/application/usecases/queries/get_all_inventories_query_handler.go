package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllInventoriesQueryHandler retrieves the active catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllInventoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInventoriesQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetAllInventoriesQueryHandler(db *gorm.DB) GetAllInventoriesQueryHandler {
	return GetAllInventoriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all active inventory items.
// Results are sorted by ID for consistent output.
func (h GetAllInventoriesQueryHandler) Handle(
	ctx context.Context,
	query GetAllInventoriesQuery,
) ([]GetAllInventoriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetAllInventoriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			quantity
		FROM inventories
		WHERE deleted_at IS NULL
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetAllInventoriesQueryResponse

		err = rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
