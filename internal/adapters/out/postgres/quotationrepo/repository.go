package quotationrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/adapters/out/postgres/costlinerepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuotationRepository implements QuotationRepository using GORM.
type GormQuotationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormQuotationRepository(db *gorm.DB, tracker aggregateTracker) *GormQuotationRepository {
	return &GormQuotationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quotation with its cost lines.
func (r *GormQuotationRepository) Add(ctx context.Context, aggregate *quotation.Quotation) error {
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

// Update saves the header and replaces the stored cost lines.
func (r *GormQuotationRepository) Update(ctx context.Context, aggregate *quotation.Quotation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	lines := dto.CostLines
	dto.CostLines = nil

	result := r.db.WithContext(ctx).Model(&QuotationDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("CostLines").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("quotation", aggregate.ID().String())
	}

	if err := costlinerepo.Replace(ctx, r.db, owner(aggregate.ID()), lines); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quotation by ID.
func (r *GormQuotationRepository) Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuotationDTO
	if err := r.db.WithContext(ctx).Preload("CostLines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quotation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOverdue retrieves open quotations whose validity date has passed.
func (r *GormQuotationRepository) GetAllOverdue(ctx context.Context, asOf time.Time) ([]*quotation.Quotation, error) {
	var dtos []QuotationDTO
	err := r.db.WithContext(ctx).Preload("CostLines").
		Where("status IN ? AND validity_date < ?", []string{quotation.Draft.String(), quotation.Sent.String()}, quotation.DateOf(asOf)).
		Order("validity_date, reference").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	quotations := make([]*quotation.Quotation, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotations = append(quotations, q)
	}

	return quotations, nil
}
