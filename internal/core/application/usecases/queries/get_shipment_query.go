package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

type GetShipmentQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(id kernel.UUID) (GetShipmentQuery, error) {
	if err := id.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	return GetShipmentQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

func (q GetShipmentQuery) ID() kernel.UUID {
	return q.id
}

// GetShipmentQueryResponse is the shipment form with its totals and cost lines.
type GetShipmentQueryResponse struct {
	ID                  kernel.UUID
	Reference           string
	Status              string
	Customer            string
	Shipper             string
	Consignee           string
	NotifyParty         string
	Origin              PortSummary
	Destination         PortSummary
	TransportMode       string
	Direction           string
	ServiceType         string
	IncotermID          *kernel.UUID
	CargoDescription    string
	TotalWeight         float64
	TotalVolume         float64
	Packages            int
	ContainerIDs        []kernel.UUID
	AirlineID           *kernel.UUID
	VesselID            *kernel.UUID
	VoyageFlightNumber  string
	BookingDate         time.Time
	EstimatedDeparture  *time.Time
	EstimatedArrival    *time.Time
	ActualDeparture     *time.Time
	ActualArrival       *time.Time
	DeliveryDate        *time.Time
	DaysInTransit       int
	Currency            string
	SpecialInstructions string
	InternalNotes       string
	TotalSellCost       decimal.Decimal
	TotalBuyCost        decimal.Decimal
	ProfitMargin        decimal.Decimal
	Active              bool
	CostLines           []CostLineResponse
}
