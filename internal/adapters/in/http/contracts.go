package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse is returned by creation endpoints.
type IDResponse struct {
	ID uint64 `json:"id"`
}

// NewInventory is the request body for creating a catalog entry.
type NewInventory struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// InventoryUpdate is the request body for editing a catalog entry.
// Absent fields keep their current value.
type InventoryUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int             `json:"quantity"`
}

// Inventory is the catalog entry representation.
type Inventory struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// NewOrderItem is one requested order line.
type NewOrderItem struct {
	InventoryID uint64 `json:"inventoryId"`
	Quantity    int    `json:"quantity"`
}

// NewOrder is the request body for placing an order.
// The date is optional and defaults to the time of creation.
type NewOrder struct {
	Email string         `json:"email"`
	Date  *time.Time     `json:"date"`
	Items []NewOrderItem `json:"items"`
}

// OrderUpdate is the request body for editing an order.
// Absent fields keep their current value; an absent items array keeps the
// current reservations, while an empty array releases them all.
type OrderUpdate struct {
	Email *string        `json:"email"`
	Date  *time.Time     `json:"date"`
	Items []NewOrderItem `json:"items"`
}

// OrderSummary is the listing representation of an order.
type OrderSummary struct {
	ID        uint64          `json:"id"`
	Email     string          `json:"email"`
	Date      time.Time       `json:"date"`
	Status    string          `json:"status"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

// Order is the detailed representation of an order.
type Order struct {
	ID     uint64      `json:"id"`
	Email  string      `json:"email"`
	Date   time.Time   `json:"date"`
	Status string      `json:"status"`
	Items  []OrderItem `json:"items"`
}

// OrderItem is one order line with its reservation-time price snapshot
// and the catalog entry it was reserved from.
type OrderItem struct {
	ID          uint64             `json:"id"`
	InventoryID uint64             `json:"inventoryId"`
	Quantity    int                `json:"quantity"`
	Price       decimal.Decimal    `json:"price"`
	Inventory   OrderItemInventory `json:"inventory"`
}

// OrderItemInventory is the catalog record nested in an order line. Its
// price and quantity reflect the catalog now, not the reservation time.
type OrderItemInventory struct {
	ID          uint64          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}
