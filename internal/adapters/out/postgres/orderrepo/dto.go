// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in their own table and cascade on order deletion. The
// status column stores the lowercase status name so raw queries stay readable.
type OrderDTO struct {
	ID     uint64        `gorm:"primaryKey;autoIncrement"`
	Email  string        `gorm:"type:varchar(255);not null"`
	Date   time.Time     `gorm:"not null"`
	Status string        `gorm:"type:varchar(16);not null;index"`
	Items  []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database structure for persisting order line items.
// The price column snapshots the inventory price at reservation time.
type LineItemDTO struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID     uint64          `gorm:"not null;index"`
	InventoryID uint64          `gorm:"not null;index"`
	Quantity    int             `gorm:"type:int;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "line_items".
func (LineItemDTO) TableName() string {
	return "line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Unpersisted line items carry a zero ID so the database assigns one on insert.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:          item.ID(),
			OrderID:     item.OrderID(),
			InventoryID: item.InventoryID(),
			Quantity:    item.Quantity(),
			Price:       item.Price().Amount(),
		})
	}

	return OrderDTO{
		ID:     aggregate.ID(),
		Email:  aggregate.Email().String(),
		Date:   aggregate.Date(),
		Status: aggregate.Status().String(),
		Items:  items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		price, priceErr := kernel.NewPrice(itemDto.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.RestoreLineItem(
			itemDto.ID, itemDto.OrderID, itemDto.InventoryID, itemDto.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(dto.ID, email, dto.Date, status, items)
}
