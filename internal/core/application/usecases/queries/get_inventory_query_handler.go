package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetInventoryQueryHandler retrieves a single catalog entry from the database.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for single-item catalog queries.
// Requires a GORM database connection for query execution.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the query to retrieve one active inventory item.
// Returns errs.ErrObjectNotFound for unknown or soft-deleted items.
func (h GetInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetInventoryQuery,
) (GetInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInventoryQueryResponse{}, err
	}

	var item GetInventoryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			quantity
		FROM inventories
		WHERE id = ? AND deleted_at IS NULL
	`, query.InventoryID()).Row()

	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.Price,
		&item.Quantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetInventoryQueryResponse{},
				errs.NewObjectNotFoundError("inventory", query.InventoryID())
		}
		return GetInventoryQueryResponse{}, err
	}

	return item, nil
}
