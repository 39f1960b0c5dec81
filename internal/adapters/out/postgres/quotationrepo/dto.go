// Package quotationrepo persists quotations and their cost lines.
package quotationrepo

import (
	"time"

	"freight/internal/adapters/out/postgres/costlinerepo"
	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotationDTO is the quotations row. TotalAmount is denormalized for list
// queries; the domain recomputes it from the lines.
type QuotationDTO struct {
	ID                uuid.UUID                  `gorm:"type:uuid;primaryKey"`
	Reference         string                     `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status            string                     `gorm:"type:varchar(16);not null;index"`
	Customer          string                     `gorm:"type:varchar(255);not null"`
	OriginPortID      uuid.UUID                  `gorm:"type:uuid;not null"`
	DestinationPortID uuid.UUID                  `gorm:"type:uuid;not null"`
	TransportMode     string                     `gorm:"type:varchar(8);not null"`
	Direction         string                     `gorm:"type:varchar(8);not null"`
	ServiceType       string                     `gorm:"type:varchar(16)"`
	Cargo             CargoDTO                   `gorm:"embedded;embeddedPrefix:cargo_"`
	QuotationDate     time.Time                  `gorm:"type:date;not null"`
	ValidityDate      time.Time                  `gorm:"type:date;not null;index"`
	Currency          string                     `gorm:"type:char(3);not null"`
	Conditions        string                     `gorm:"type:text"`
	InternalNotes     string                     `gorm:"type:text"`
	ShipmentID        *uuid.UUID                 `gorm:"type:uuid"`
	SaleOrderID       *uuid.UUID                 `gorm:"type:uuid"`
	TotalAmount       decimal.Decimal            `gorm:"type:numeric(16,2);not null;default:0"`
	CostLines         []costlinerepo.CostLineDTO `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
}

type CargoDTO struct {
	Description     string `gorm:"type:text"`
	EstimatedWeight float64
	EstimatedVolume float64
}

func (QuotationDTO) TableName() string {
	return "quotations"
}

func fromDomain(q *quotation.Quotation) QuotationDTO {
	t := q.Terms()
	dto := QuotationDTO{
		ID:                q.ID().Bytes(),
		Reference:         q.Reference(),
		Status:            q.Status().String(),
		Customer:          t.Customer,
		OriginPortID:      t.Origin.Bytes(),
		DestinationPortID: t.Destination.Bytes(),
		TransportMode:     t.Mode.String(),
		Direction:         string(t.Direction),
		ServiceType:       string(t.ServiceType),
		Cargo: CargoDTO{
			Description:     t.Cargo.Description,
			EstimatedWeight: t.Cargo.EstimatedWeight,
			EstimatedVolume: t.Cargo.EstimatedVolume,
		},
		QuotationDate: t.QuotationDate,
		ValidityDate:  t.ValidityDate,
		Currency:      t.Currency.String(),
		Conditions:    t.Conditions,
		InternalNotes: t.InternalNotes,
		TotalAmount:   q.TotalAmount(),
		CostLines:     costlinerepo.FromDomain(owner(q.ID()), q.CostLines()),
	}
	if id := q.ShipmentID(); id != nil {
		raw := id.Bytes()
		dto.ShipmentID = &raw
	}
	if id := q.SaleOrderID(); id != nil {
		raw := id.Bytes()
		dto.SaleOrderID = &raw
	}
	return dto
}

func toDomain(dto QuotationDTO) (*quotation.Quotation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines, err := costlinerepo.ToDomain(dto.CostLines)
	if err != nil {
		return nil, err
	}

	var shipmentID, saleOrderID *kernel.UUID
	if dto.ShipmentID != nil {
		sID := kernel.UUIDFromGoogle(*dto.ShipmentID)
		shipmentID = &sID
	}
	if dto.SaleOrderID != nil {
		soID := kernel.UUIDFromGoogle(*dto.SaleOrderID)
		saleOrderID = &soID
	}

	terms := quotation.Terms{
		Customer:    dto.Customer,
		Origin:      kernel.UUIDFromGoogle(dto.OriginPortID),
		Destination: kernel.UUIDFromGoogle(dto.DestinationPortID),
		Mode:        kernel.TransportMode(dto.TransportMode),
		Direction:   kernel.Direction(dto.Direction),
		ServiceType: kernel.ServiceType(dto.ServiceType),
		Cargo: quotation.Cargo{
			Description:     dto.Cargo.Description,
			EstimatedWeight: dto.Cargo.EstimatedWeight,
			EstimatedVolume: dto.Cargo.EstimatedVolume,
		},
		QuotationDate: dto.QuotationDate,
		ValidityDate:  dto.ValidityDate,
		Currency:      kernel.Currency(dto.Currency),
		Conditions:    dto.Conditions,
		InternalNotes: dto.InternalNotes,
	}

	return quotation.RestoreQuotation(id, dto.Reference, quotation.Status(dto.Status), terms, lines, shipmentID, saleOrderID)
}

func owner(id kernel.UUID) costline.Owner {
	return costline.Owner{Kind: costline.OwnerQuotation, ID: id}
}
