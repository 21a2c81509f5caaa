// Package order provides domain entities and business logic for customer
// orders in the storefront system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns line items and the order lifecycle
//   - LineItem: A reservation of inventory with a price snapshot
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid customer email and order date
//   - Order status follows a defined workflow: created -> canceled | completed
//   - Canceled and completed are terminal states
//   - Canceling an already-canceled order is rejected
//   - Line items belong to exactly one order; replacing an order's items
//     detaches the old set in full before the new set is attached
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
