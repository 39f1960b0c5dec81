package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
)

// QuotationRepository persists quotations together with their cost lines.
type QuotationRepository interface {
	Add(ctx context.Context, aggregate *quotation.Quotation) error

	// Update saves the quotation header and replaces its cost lines.
	Update(ctx context.Context, aggregate *quotation.Quotation) error

	Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error)

	// GetAllOverdue returns draft and sent quotations whose validity date is
	// before the calendar date of asOf.
	GetAllOverdue(ctx context.Context, asOf time.Time) ([]*quotation.Quotation, error)
}
