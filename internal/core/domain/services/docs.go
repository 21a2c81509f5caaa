// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the storefront system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - StockAllocator: A domain service coordinating stock reservations
//     between orders and inventory items
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
