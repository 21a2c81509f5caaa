package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with the line items they own; loading an
// order always loads its full item set.
type OrderRepository interface {
	// Add persists a new order aggregate and its line items, assigning
	// storage identities to the order and every item.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// newly attached line items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate with a pessimistic lock
	// on the order row. Lifecycle transitions (cancel, edit, complete)
	// must load through here so concurrent callers serialize on the row
	// and re-read the committed status instead of a stale one.
	GetForUpdate(ctx context.Context, id uint64) (*order.Order, error)

	// GetAllCreatedBefore retrieves orders still in Created status whose
	// order date lies before the cutoff. Used by the completion sweep.
	GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// DeleteLineItems removes all line item rows belonging to the order.
	// Called when an edit replaces the order's item set; the caller
	// releases the detached reservations in the same transaction.
	DeleteLineItems(ctx context.Context, orderID uint64) error
}
