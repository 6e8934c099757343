package orderrepo

import (
	"context"
	"errors"

	"foodorders/internal/adapters/out/postgres/dberr"
	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/ports"
	"foodorders/internal/pkg/errs"

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
	TrackAggregate(id kernel.ID, aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// NextID draws the next value of the orders id sequence. Drawn values are not
// returned on rollback.
func (r *GormOrderRepository) NextID(ctx context.Context) (kernel.ID, error) {
	var next int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('orders', 'id'))").
		Scan(&next).Error
	if err != nil {
		return kernel.ID{}, dberr.Wrap("next order id", err)
	}
	return kernel.NewID(next)
}

// Add saves a new order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap("add order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the mutable columns of an existing order and replaces its lines.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("address", "started_at", "sent_at", "delivered_at").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return dberr.Wrap("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
		return dberr.Wrap("replace order lines", err)
	}
	if len(dto.Lines) > 0 {
		if err := db.Create(&dto.Lines).Error; err != nil {
			return dberr.Wrap("replace order lines", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the order; its lines go with it.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	db := r.db.WithContext(ctx)
	id := aggregate.ID().Value()

	if err := db.Where("order_id = ?", id).Delete(&OrderLineDTO{}).Error; err != nil {
		return dberr.Wrap("delete order lines", err)
	}

	result := db.Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return dberr.Wrap("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID and locks its row until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// List returns orders newest first. A status filter is translated to the timestamp
// columns it is derived from.
func (r *GormOrderRepository) List(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Preload("Lines", byPosition)

	if filter.RestaurantID != nil {
		query = query.Where("restaurant_id = ?", filter.RestaurantID.Value())
	}
	if filter.Status != nil {
		switch *filter.Status {
		case order.Pending:
			query = query.Where("started_at IS NULL")
		case order.Started:
			query = query.Where("started_at IS NOT NULL AND sent_at IS NULL")
		case order.Sent:
			query = query.Where("sent_at IS NOT NULL AND delivered_at IS NULL")
		case order.Delivered:
			query = query.Where("delivered_at IS NOT NULL")
		default:
			return nil, filter.Status.Validate()
		}
	}

	var dtos []OrderDTO
	if err := query.Order("created_at DESC").Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, dberr.Wrap("list orders", err)
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

func (r *GormOrderRepository) get(_ context.Context, db *gorm.DB, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := db.Preload("Lines", byPosition).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Value())
		}
		return nil, dberr.Wrap("get order", err)
	}

	return toDomain(dto)
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
