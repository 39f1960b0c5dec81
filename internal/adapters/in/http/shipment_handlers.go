package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var body ShipmentInput
	if err := bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	fields, err := shipmentFieldsOf(body)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateShipmentCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}

	action, err := s.shipments.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

// GetShipment handles GET /api/v1/shipments/{id}.
func (s *Server) GetShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.shipments.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, shipmentOf(response))
}

// UpdateShipment handles PUT /api/v1/shipments/{id}. An omitted currency keeps
// the current one.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body ShipmentInput
	if err = bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	fields, err := shipmentFieldsOf(body)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateShipmentCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.shipments.Update.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateShipmentRoute handles PUT /api/v1/shipments/{id}/route.
func (s *Server) UpdateShipmentRoute(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body RouteInput
	if err = bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateShipmentRouteCommand(id, commands.RouteFields{
		Origin:      kernel.UUIDFromGoogle(body.OriginPortID),
		Destination: kernel.UUIDFromGoogle(body.DestinationPortID),
		Mode:        kernel.TransportMode(body.TransportMode),
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.shipments.Reroute.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceShipment handles POST /api/v1/shipments/{id}/actions/{action} and
// answers with the stage the shipment is in afterwards.
func (s *Server) AdvanceShipment(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := shipment.ParseAction(ctx.Param("action"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewAdvanceShipmentCommand(id, action)
	if err != nil {
		return s.writeError(ctx, err)
	}
	status, err := s.shipments.Advance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, ShipmentStatus{Status: string(status)})
}

func shipmentFieldsOf(body ShipmentInput) (commands.ShipmentFields, error) {
	currency, err := optionalCurrency(body.Currency)
	if err != nil {
		return commands.ShipmentFields{}, err
	}
	return commands.ShipmentFields{
		Parties: shipment.Parties{
			Customer:    body.Customer,
			Shipper:     body.Shipper,
			Consignee:   body.Consignee,
			NotifyParty: body.NotifyParty,
		},
		Route: commands.RouteFields{
			Origin:      kernel.UUIDFromGoogle(body.OriginPortID),
			Destination: kernel.UUIDFromGoogle(body.DestinationPortID),
			Mode:        kernel.TransportMode(body.TransportMode),
		},
		Direction:   kernel.Direction(body.Direction),
		ServiceType: kernel.ServiceType(body.ServiceType),
		IncotermID:  optionalUUID(body.IncotermID),
		Cargo: shipment.Cargo{
			Description:  body.CargoDescription,
			TotalWeight:  body.TotalWeight,
			TotalVolume:  body.TotalVolume,
			Packages:     body.Packages,
			ContainerIDs: containerIDsOf(body.ContainerIDs),
		},
		Carrier: shipment.Carrier{
			AirlineID:          optionalUUID(body.AirlineID),
			VesselID:           optionalUUID(body.VesselID),
			VoyageFlightNumber: body.VoyageFlightNumber,
		},
		EstimatedDeparture:  body.EstimatedDeparture,
		EstimatedArrival:    body.EstimatedArrival,
		Currency:            currency,
		SpecialInstructions: body.SpecialInstructions,
		InternalNotes:       body.InternalNotes,
	}, nil
}
