// Package costlinerepo maps cost lines to the cost_lines table shared by
// quotations and shipments. A row belongs to exactly one of them and is
// removed with its parent.
package costlinerepo

import (
	"context"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CostLineDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuotationID    *uuid.UUID      `gorm:"type:uuid;index;check:chk_cost_lines_single_owner,(quotation_id IS NULL) <> (shipment_id IS NULL)"`
	ShipmentID     *uuid.UUID      `gorm:"type:uuid;index"`
	Sequence       int             `gorm:"not null"`
	CostType       string          `gorm:"type:varchar(4);not null"`
	Category       string          `gorm:"type:varchar(16);not null"`
	Description    string          `gorm:"type:varchar(255);not null"`
	Partner        string          `gorm:"type:varchar(255)"`
	Quantity       decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	Amount         decimal.Decimal `gorm:"type:numeric(16,2);not null"`
	InvoiceLineRef string          `gorm:"type:varchar(64)"`
	Invoiced       bool            `gorm:"not null"`
}

func (CostLineDTO) TableName() string {
	return "cost_lines"
}

// FromDomain maps the lines of one owner.
func FromDomain(owner costline.Owner, lines []*costline.CostLine) []CostLineDTO {
	ownerID := owner.ID.Bytes()
	dtos := make([]CostLineDTO, 0, len(lines))
	for _, l := range lines {
		dto := CostLineDTO{
			ID:             l.ID().Bytes(),
			Sequence:       l.Sequence(),
			CostType:       string(l.Type()),
			Category:       string(l.Category()),
			Description:    l.Description(),
			Partner:        l.Partner(),
			Quantity:       l.Quantity(),
			UnitPrice:      l.UnitPrice(),
			Amount:         l.Amount(),
			InvoiceLineRef: l.InvoiceLineRef(),
			Invoiced:       l.Invoiced(),
		}
		if owner.Kind == costline.OwnerQuotation {
			dto.QuotationID = &ownerID
		} else {
			dto.ShipmentID = &ownerID
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

// ToDomain rebuilds the line collection. Amounts are recomputed by the domain.
func ToDomain(dtos []CostLineDTO) (costline.Lines, error) {
	items := make([]*costline.CostLine, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return costline.Lines{}, err
		}

		line, err := costline.RestoreCostLine(id, costline.Spec{
			Sequence:    dto.Sequence,
			Type:        costline.Type(dto.CostType),
			Category:    costline.Category(dto.Category),
			Description: dto.Description,
			Partner:     dto.Partner,
			Quantity:    decimal.NewNullDecimal(dto.Quantity),
			UnitPrice:   dto.UnitPrice,
		}, dto.InvoiceLineRef)
		if err != nil {
			return costline.Lines{}, err
		}
		items = append(items, line)
	}
	return costline.NewLines(items...)
}

// Replace makes the stored lines of owner equal to dtos: rows no longer present
// are deleted, the others are upserted.
func Replace(ctx context.Context, db *gorm.DB, owner costline.Owner, dtos []CostLineDTO) error {
	column := "shipment_id"
	if owner.Kind == costline.OwnerQuotation {
		column = "quotation_id"
	}

	stale := db.WithContext(ctx).Where(column+" = ?", owner.ID.Bytes())
	if len(dtos) > 0 {
		ids := make([]uuid.UUID, 0, len(dtos))
		for _, dto := range dtos {
			ids = append(ids, dto.ID)
		}
		stale = stale.Where("id NOT IN ?", ids)
	}
	if err := stale.Delete(&CostLineDTO{}).Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}
	return db.WithContext(ctx).Save(&dtos).Error
}
