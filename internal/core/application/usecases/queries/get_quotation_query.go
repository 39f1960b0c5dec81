package queries

import (
	"errors"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetQuotationQueryIsNotConstructed = errors.New(
	"GetQuotationQuery must be created via NewGetQuotationQuery constructor",
)

type GetQuotationQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetQuotationQuery(id kernel.UUID) (GetQuotationQuery, error) {
	if err := id.Validate(); err != nil {
		return GetQuotationQuery{}, err
	}
	return GetQuotationQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetQuotationQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotationQueryIsNotConstructed)
}

func (q GetQuotationQuery) ID() kernel.UUID {
	return q.id
}

// PortSummary is a port referenced by a document, labelled the way list views show it.
type PortSummary struct {
	ID          kernel.UUID
	DisplayName string
}

// GetQuotationQueryResponse is the quotation form. SaleOrder and Shipment open the
// documents generated from it and are nil until they exist.
type GetQuotationQueryResponse struct {
	ID               kernel.UUID
	Reference        string
	Status           string
	Customer         string
	Origin           PortSummary
	Destination      PortSummary
	TransportMode    string
	Direction        string
	ServiceType      string
	CargoDescription string
	EstimatedWeight  float64
	EstimatedVolume  float64
	QuotationDate    time.Time
	ValidityDate     time.Time
	Currency         string
	Conditions       string
	InternalNotes    string
	TotalAmount      decimal.Decimal
	CostLines        []CostLineResponse
	SaleOrder        *commands.Action
	Shipment         *commands.Action
}
