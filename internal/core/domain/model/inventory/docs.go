// Package inventory implements the inventory ledger aggregate.
// An Inventory item holds the authoritative quantity on hand for a product
// and exposes reservation and release operations with a non-negativity
// guarantee, plus administrative edits and soft deletion.
package inventory
