package ports

import (
	"context"

	"storefront/internal/core/domain/model/inventory"
)

// InventoryRepository defines the persistence contract for inventory items.
// Normal lookups exclude soft-deleted items; their rows are retained for
// line-item history only.
type InventoryRepository interface {
	// Add persists a new inventory item and assigns its storage identity.
	Add(ctx context.Context, aggregate *inventory.Inventory) error

	// Update persists changes to an existing inventory item, including its
	// quantity on hand and soft-deletion marker.
	Update(ctx context.Context, aggregate *inventory.Inventory) error

	// Get retrieves an active inventory item by its identifier.
	// Soft-deleted items are treated as not found.
	Get(ctx context.Context, id uint64) (*inventory.Inventory, error)

	// GetForUpdate retrieves an active inventory item with a pessimistic
	// row lock held until the surrounding transaction ends. Concurrent
	// reservations against the same item serialize on this lock, which is
	// what keeps the quantity from going negative under race.
	GetForUpdate(ctx context.Context, id uint64) (*inventory.Inventory, error)

	// GetForRelease retrieves an inventory item with the same row lock as
	// GetForUpdate but including soft-deleted items. Releases must reach
	// deleted items so a canceled order always returns its reserved stock.
	GetForRelease(ctx context.Context, id uint64) (*inventory.Inventory, error)

	// GetAll retrieves all active inventory items ordered by identifier.
	GetAll(ctx context.Context) ([]*inventory.Inventory, error)
}
