// Package inventoryrepo provides data transfer objects and mapping functions for inventory persistence.
// This package implements the repository pattern for the inventory domain aggregate, handling
// the conversion between domain entities and database representations.
package inventoryrepo

import (
	"time"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// InventoryDTO represents the database structure for persisting inventory aggregates.
// The identifier is assigned by the database on insert. Deleted items keep their
// row with deleted_at set so historical orders can still resolve their line items.
type InventoryDTO struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"type:int;not null"`
	DeletedAt   *time.Time      `gorm:"index"`
}

// TableName specifies the database table name for inventory entities.
// Overrides GORM's default naming convention to use "inventories".
func (InventoryDTO) TableName() string {
	return "inventories"
}

// fromDomain converts an inventory domain aggregate to its database representation.
func fromDomain(item *inventory.Inventory) InventoryDTO {
	return InventoryDTO{
		ID:          item.ID(),
		Name:        item.Name(),
		Description: item.Description(),
		Price:       item.Price().Amount(),
		Quantity:    item.Quantity(),
		DeletedAt:   item.DeletedAt(),
	}
}

// toDomain converts a database DTO to an inventory domain aggregate.
// Reconstructs the complete aggregate including soft-delete state using RestoreInventory.
func toDomain(dto InventoryDTO) (*inventory.Inventory, error) {
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreInventory(dto.ID, dto.Name, dto.Description, price, dto.Quantity, dto.DeletedAt)
}
