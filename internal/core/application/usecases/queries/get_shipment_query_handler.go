package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetShipmentQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

func (h GetShipmentQueryHandler) Handle(ctx context.Context, query GetShipmentQuery) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var (
		resp                         GetShipmentQueryResponse
		origin, destination          uuid.UUID
		incoterm, airline, vessel    uuid.NullUUID
		containers                   pq.StringArray
		estDeparture, estArrival     sql.NullTime
		departure, arrival, delivery sql.NullTime
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.reference,
			s.status,
			s.customer,
			COALESCE(s.shipper, ''),
			COALESCE(s.consignee, ''),
			COALESCE(s.notify_party, ''),
			s.origin_port_id,
			'[' || o.code || '] ' || o.name || ', ' || o.country,
			s.destination_port_id,
			'[' || d.code || '] ' || d.name || ', ' || d.country,
			s.transport_mode,
			s.direction,
			COALESCE(s.service_type, ''),
			s.incoterm_id,
			s.cargo_description,
			s.total_weight,
			s.total_volume,
			s.packages,
			s.container_ids,
			s.airline_id,
			s.vessel_id,
			COALESCE(s.voyage_flight_number, ''),
			s.booking_date,
			s.estimated_departure,
			s.estimated_arrival,
			s.actual_departure,
			s.actual_arrival,
			s.delivery_date,
			s.currency,
			COALESCE(s.special_instructions, ''),
			COALESCE(s.internal_notes, ''),
			s.total_sell,
			s.total_buy,
			s.active
		FROM shipments s
		JOIN ports o ON o.id = s.origin_port_id
		JOIN ports d ON d.id = s.destination_port_id
		WHERE s.id = ?
	`, query.ID().Bytes()).Row().Scan(
		&resp.Reference,
		&resp.Status,
		&resp.Customer,
		&resp.Shipper,
		&resp.Consignee,
		&resp.NotifyParty,
		&origin,
		&resp.Origin.DisplayName,
		&destination,
		&resp.Destination.DisplayName,
		&resp.TransportMode,
		&resp.Direction,
		&resp.ServiceType,
		&incoterm,
		&resp.CargoDescription,
		&resp.TotalWeight,
		&resp.TotalVolume,
		&resp.Packages,
		&containers,
		&airline,
		&vessel,
		&resp.VoyageFlightNumber,
		&resp.BookingDate,
		&estDeparture,
		&estArrival,
		&departure,
		&arrival,
		&delivery,
		&resp.Currency,
		&resp.SpecialInstructions,
		&resp.InternalNotes,
		&resp.TotalSellCost,
		&resp.TotalBuyCost,
		&resp.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ID())
	}
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	resp.ID = query.ID()
	resp.Origin.ID = kernel.UUIDFromGoogle(origin)
	resp.Destination.ID = kernel.UUIDFromGoogle(destination)
	resp.IncotermID = optionalUUID(incoterm)
	resp.AirlineID = optionalUUID(airline)
	resp.VesselID = optionalUUID(vessel)
	resp.EstimatedDeparture = optionalTime(estDeparture)
	resp.EstimatedArrival = optionalTime(estArrival)
	resp.ActualDeparture = optionalTime(departure)
	resp.ActualArrival = optionalTime(arrival)
	resp.DeliveryDate = optionalTime(delivery)
	resp.ProfitMargin = resp.TotalSellCost.Sub(resp.TotalBuyCost)
	if departure.Valid && arrival.Valid {
		resp.DaysInTransit = shipment.TransitDays(departure.Time, arrival.Time)
	}

	resp.ContainerIDs = make([]kernel.UUID, 0, len(containers))
	for _, raw := range containers {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return GetShipmentQueryResponse{}, err
		}
		resp.ContainerIDs = append(resp.ContainerIDs, id)
	}

	resp.CostLines, err = loadCostLines(ctx, h.db, "shipment_id", query.ID())
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	return resp, nil
}
