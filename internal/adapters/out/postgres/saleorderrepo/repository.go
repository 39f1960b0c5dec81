package saleorderrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/saleorder"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSaleOrderRepository implements SaleOrderRepository using GORM.
type GormSaleOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSaleOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormSaleOrderRepository {
	return &GormSaleOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormSaleOrderRepository) Add(ctx context.Context, aggregate *saleorder.SaleOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormSaleOrderRepository) Get(ctx context.Context, id kernel.UUID) (*saleorder.SaleOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SaleOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sale order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
