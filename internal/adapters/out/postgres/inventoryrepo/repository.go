package inventoryrepo

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/inventory"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory item and assigns its database-generated ID
// back to the aggregate.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing inventory item to the database.
// Uses a full save so zero quantities and soft-delete timestamps persist.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an active inventory item by ID. Soft-deleted items are
// treated as missing.
func (r *GormInventoryRepository) Get(ctx context.Context, id uint64) (*inventory.Inventory, error) {
	var dto InventoryDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an active inventory item by ID with a row-level
// write lock. Concurrent reservations for the same item block here until
// the owning transaction commits or rolls back.
func (r *GormInventoryRepository) GetForUpdate(ctx context.Context, id uint64) (*inventory.Inventory, error) {
	var dto InventoryDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ? AND deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForRelease retrieves an inventory item by ID with a row-level write
// lock, including soft-deleted items. Releases must reach deleted items so
// a canceled order always returns its reserved stock.
func (r *GormInventoryRepository) GetForRelease(ctx context.Context, id uint64) (*inventory.Inventory, error) {
	var dto InventoryDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all active inventory items sorted by ID.
func (r *GormInventoryRepository) GetAll(ctx context.Context) ([]*inventory.Inventory, error) {
	var dtos []InventoryDTO
	if err := r.db.WithContext(ctx).
		Where("deleted_at IS NULL").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*inventory.Inventory, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
