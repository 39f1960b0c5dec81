// Package saleorderrepo persists the sale orders generated by quotation confirmation.
package saleorderrepo

import (
	"time"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/saleorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleOrderDTO struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Reference   string             `gorm:"type:varchar(32);not null;uniqueIndex"`
	QuotationID uuid.UUID          `gorm:"type:uuid;not null;index"`
	Customer    string             `gorm:"type:varchar(255);not null"`
	Currency    string             `gorm:"type:char(3);not null"`
	AmountTotal decimal.Decimal    `gorm:"type:numeric(16,2);not null"`
	CreatedAt   time.Time          `gorm:"not null"`
	Lines       []SaleOrderLineDTO `gorm:"foreignKey:SaleOrderID;constraint:OnDelete:CASCADE"`
}

func (SaleOrderDTO) TableName() string {
	return "sale_orders"
}

type SaleOrderLineDTO struct {
	ID          uint            `gorm:"primaryKey"`
	SaleOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null"`
	Product     string          `gorm:"type:varchar(16);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Quantity    decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(16,2);not null"`
}

func (SaleOrderLineDTO) TableName() string {
	return "sale_order_lines"
}

func fromDomain(order *saleorder.SaleOrder) SaleOrderDTO {
	lines := make([]SaleOrderLineDTO, 0, len(order.Lines()))
	for i, l := range order.Lines() {
		lines = append(lines, SaleOrderLineDTO{
			Position:    i + 1,
			Product:     string(l.Product),
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return SaleOrderDTO{
		ID:          order.ID().Bytes(),
		Reference:   order.Reference(),
		QuotationID: order.QuotationID().Bytes(),
		Customer:    order.Customer(),
		Currency:    order.Currency().String(),
		AmountTotal: order.Total(),
		CreatedAt:   order.CreatedAt(),
		Lines:       lines,
	}
}

func toDomain(dto SaleOrderDTO) (*saleorder.SaleOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	quotationID, err := kernel.UUIDFromBytes(dto.QuotationID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]saleorder.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lines = append(lines, saleorder.Line{
			Product:     costline.Category(l.Product),
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}

	return saleorder.RestoreSaleOrder(id, dto.Reference, quotationID, dto.Customer,
		kernel.Currency(dto.Currency), lines, dto.CreatedAt)
}
