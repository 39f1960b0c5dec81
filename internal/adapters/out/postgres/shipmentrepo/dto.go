// Package shipmentrepo persists shipments and their cost lines.
package shipmentrepo

import (
	"time"

	"freight/internal/adapters/out/postgres/costlinerepo"
	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// ShipmentDTO is the shipments row. Container ids are kept as a text[] column,
// sell/buy totals are denormalized for list queries.
type ShipmentDTO struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Reference           string         `gorm:"type:varchar(32);not null;uniqueIndex"`
	Status              string         `gorm:"type:varchar(16);not null;index"`
	Customer            string         `gorm:"type:varchar(255);not null"`
	Shipper             string         `gorm:"type:varchar(255)"`
	Consignee           string         `gorm:"type:varchar(255)"`
	NotifyParty         string         `gorm:"type:varchar(255)"`
	OriginPortID        uuid.UUID      `gorm:"type:uuid;not null"`
	DestinationPortID   uuid.UUID      `gorm:"type:uuid;not null"`
	TransportMode       string         `gorm:"type:varchar(8);not null"`
	Direction           string         `gorm:"type:varchar(8);not null"`
	ServiceType         string         `gorm:"type:varchar(16)"`
	IncotermID          *uuid.UUID     `gorm:"type:uuid"`
	CargoDescription    string         `gorm:"type:text;not null"`
	TotalWeight         float64        `gorm:"not null;default:0"`
	TotalVolume         float64        `gorm:"not null;default:0"`
	Packages            int            `gorm:"not null;default:1"`
	ContainerIDs        pq.StringArray `gorm:"type:text[]"`
	AirlineID           *uuid.UUID     `gorm:"type:uuid"`
	VesselID            *uuid.UUID     `gorm:"type:uuid"`
	VoyageFlightNumber  string         `gorm:"type:varchar(32)"`
	BookingDate         time.Time      `gorm:"not null"`
	EstimatedDeparture  *time.Time
	EstimatedArrival    *time.Time
	ActualDeparture     *time.Time
	ActualArrival       *time.Time
	DeliveryDate        *time.Time
	Currency            string                     `gorm:"type:char(3);not null"`
	SpecialInstructions string                     `gorm:"type:text"`
	InternalNotes       string                     `gorm:"type:text"`
	TotalSell           decimal.Decimal            `gorm:"type:numeric(16,2);not null;default:0"`
	TotalBuy            decimal.Decimal            `gorm:"type:numeric(16,2);not null;default:0"`
	Active              bool                       `gorm:"not null;index"`
	CostLines           []costlinerepo.CostLineDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	b := s.Booking()
	t := s.Tracking()

	containers := make(pq.StringArray, 0, len(b.Cargo.ContainerIDs))
	for _, id := range b.Cargo.ContainerIDs {
		containers = append(containers, id.String())
	}

	return ShipmentDTO{
		ID:                  s.ID().Bytes(),
		Reference:           s.Reference(),
		Status:              s.Status().String(),
		Customer:            b.Parties.Customer,
		Shipper:             b.Parties.Shipper,
		Consignee:           b.Parties.Consignee,
		NotifyParty:         b.Parties.NotifyParty,
		OriginPortID:        b.Route.Origin().Bytes(),
		DestinationPortID:   b.Route.Destination().Bytes(),
		TransportMode:       b.Route.Mode().String(),
		Direction:           string(b.Direction),
		ServiceType:         string(b.ServiceType),
		IncotermID:          optionalID(b.IncotermID),
		CargoDescription:    b.Cargo.Description,
		TotalWeight:         b.Cargo.TotalWeight,
		TotalVolume:         b.Cargo.TotalVolume,
		Packages:            b.Cargo.Packages,
		ContainerIDs:        containers,
		AirlineID:           optionalID(b.Carrier.AirlineID),
		VesselID:            optionalID(b.Carrier.VesselID),
		VoyageFlightNumber:  b.Carrier.VoyageFlightNumber,
		BookingDate:         b.BookingDate,
		EstimatedDeparture:  b.EstimatedDeparture,
		EstimatedArrival:    b.EstimatedArrival,
		ActualDeparture:     t.ActualDeparture,
		ActualArrival:       t.ActualArrival,
		DeliveryDate:        t.DeliveryDate,
		Currency:            b.Currency.String(),
		SpecialInstructions: b.SpecialInstructions,
		InternalNotes:       b.InternalNotes,
		TotalSell:           s.TotalSellCost(),
		TotalBuy:            s.TotalBuyCost(),
		Active:              s.IsActive(),
		CostLines:           costlinerepo.FromDomain(owner(s.ID()), s.CostLines()),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	route, err := shipment.RestoreRoute(
		kernel.UUIDFromGoogle(dto.OriginPortID),
		kernel.UUIDFromGoogle(dto.DestinationPortID),
		kernel.TransportMode(dto.TransportMode),
	)
	if err != nil {
		return nil, err
	}

	containers := make([]kernel.UUID, 0, len(dto.ContainerIDs))
	for _, raw := range dto.ContainerIDs {
		cID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		containers = append(containers, cID)
	}

	lines, err := costlinerepo.ToDomain(dto.CostLines)
	if err != nil {
		return nil, err
	}

	booking := shipment.Booking{
		Parties: shipment.Parties{
			Customer:    dto.Customer,
			Shipper:     dto.Shipper,
			Consignee:   dto.Consignee,
			NotifyParty: dto.NotifyParty,
		},
		Route:       route,
		Direction:   kernel.Direction(dto.Direction),
		ServiceType: kernel.ServiceType(dto.ServiceType),
		IncotermID:  restoreID(dto.IncotermID),
		Cargo: shipment.Cargo{
			Description:  dto.CargoDescription,
			TotalWeight:  dto.TotalWeight,
			TotalVolume:  dto.TotalVolume,
			Packages:     dto.Packages,
			ContainerIDs: containers,
		},
		Carrier: shipment.Carrier{
			AirlineID:          restoreID(dto.AirlineID),
			VesselID:           restoreID(dto.VesselID),
			VoyageFlightNumber: dto.VoyageFlightNumber,
		},
		BookingDate:         dto.BookingDate,
		EstimatedDeparture:  dto.EstimatedDeparture,
		EstimatedArrival:    dto.EstimatedArrival,
		Currency:            kernel.Currency(dto.Currency),
		SpecialInstructions: dto.SpecialInstructions,
		InternalNotes:       dto.InternalNotes,
	}
	tracking := shipment.Tracking{
		ActualDeparture: dto.ActualDeparture,
		ActualArrival:   dto.ActualArrival,
		DeliveryDate:    dto.DeliveryDate,
	}

	return shipment.RestoreShipment(id, dto.Reference, shipment.Status(dto.Status), booking, tracking, lines, dto.Active)
}

func owner(id kernel.UUID) costline.Owner {
	return costline.Owner{Kind: costline.OwnerShipment, ID: id}
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func restoreID(id *uuid.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	restored := kernel.UUIDFromGoogle(*id)
	return &restored
}
