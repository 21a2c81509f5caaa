package orderrepo

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id uint64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items and assigns the
// database-generated identities back to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

	for i, item := range aggregate.Items() {
		if err := item.AssignIdentity(dto.Items[i].ID, dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database, upserting line items.
// Items attached since the last save get their database identity assigned.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	for i, item := range aggregate.Items() {
		if item.ID() != 0 {
			continue
		}
		if err := item.AssignIdentity(dto.Items[i].ID, dto.ID); err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an order by ID with a row-level write lock,
// including its line items. A lifecycle transition that loads through
// here blocks concurrent transitions for the same order; once the lock
// is granted the status read reflects the latest committed state, so a
// second cancel sees canceled instead of a stale created.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id uint64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCreatedBefore retrieves all orders still in created status whose
// order date is before the cutoff, locking the matched rows. Used by the
// completion sweep; the lock keeps a concurrent cancel from flipping an
// order while the sweep completes it.
func (r *GormOrderRepository) GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items").
		Where("status = ? AND date < ?", order.Created.String(), cutoff).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// DeleteLineItems removes all line item rows belonging to an order.
// Called when an order's item set is replaced; the caller is responsible
// for releasing the reservations first.
func (r *GormOrderRepository) DeleteLineItems(ctx context.Context, orderID uint64) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&LineItemDTO{}).Error
}
