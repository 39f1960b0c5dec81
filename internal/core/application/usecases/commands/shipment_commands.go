package commands

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand",
	)
	ErrUpdateShipmentCommandIsNotConstructed = errors.New(
		"UpdateShipmentCommand must be created via NewUpdateShipmentCommand",
	)
	ErrUpdateShipmentRouteCommandIsNotConstructed = errors.New(
		"UpdateShipmentRouteCommand must be created via NewUpdateShipmentRouteCommand",
	)
	ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
		"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand",
	)
)

// RouteFields reference the ports a shipment moves between.
type RouteFields struct {
	Origin      kernel.UUID
	Destination kernel.UUID
	Mode        kernel.TransportMode
}

func (r RouteFields) validate() error {
	return errors.Join(r.Origin.Validate(), r.Destination.Validate(), r.Mode.Validate())
}

// ShipmentFields are the editable attributes of a shipment. On creation an
// empty currency takes the configured default; on update it keeps the current one.
type ShipmentFields struct {
	Parties             shipment.Parties
	Route               RouteFields
	Direction           kernel.Direction
	ServiceType         kernel.ServiceType
	IncotermID          *kernel.UUID
	Cargo               shipment.Cargo
	Carrier             shipment.Carrier
	EstimatedDeparture  *time.Time
	EstimatedArrival    *time.Time
	Currency            kernel.Currency
	SpecialInstructions string
	InternalNotes       string
}

type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	fields ShipmentFields

	guard guard.ConstructorGuard
}

func (f ShipmentFields) validate() error {
	var errCustomer, errCargo error
	if strings.TrimSpace(f.Parties.Customer) == "" {
		errCustomer = errs.NewValueIsRequiredError("customer")
	}
	if strings.TrimSpace(f.Cargo.Description) == "" {
		errCargo = errs.NewValueIsRequiredError("cargo description")
	}
	return errors.Join(errCustomer, errCargo, f.Route.validate())
}

func NewCreateShipmentCommand(fields ShipmentFields) (CreateShipmentCommand, error) {
	if err := fields.validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	return CreateShipmentCommand{fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Fields() ShipmentFields {
	return c.fields
}

// UpdateShipmentCommand edits every booking attribute of a shipment. The
// reference, status, booking date and tracking stamps are left alone.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	fields     ShipmentFields

	guard guard.ConstructorGuard
}

func NewUpdateShipmentCommand(shipmentID kernel.UUID, fields ShipmentFields) (UpdateShipmentCommand, error) {
	if err := errors.Join(shipmentID.Validate(), fields.validate()); err != nil {
		return UpdateShipmentCommand{}, err
	}
	return UpdateShipmentCommand{shipmentID: shipmentID, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateShipmentCommand) Fields() ShipmentFields {
	return c.fields
}

// UpdateShipmentRouteCommand moves a shipment to a new pair of ports or transport mode.
type UpdateShipmentRouteCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	route      RouteFields

	guard guard.ConstructorGuard
}

func NewUpdateShipmentRouteCommand(shipmentID kernel.UUID, route RouteFields) (UpdateShipmentRouteCommand, error) {
	if err := errors.Join(shipmentID.Validate(), route.validate()); err != nil {
		return UpdateShipmentRouteCommand{}, err
	}
	return UpdateShipmentRouteCommand{shipmentID: shipmentID, route: route, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateShipmentRouteCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentRouteCommandIsNotConstructed)
}

func (c UpdateShipmentRouteCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c UpdateShipmentRouteCommand) Route() RouteFields {
	return c.route
}

// AdvanceShipmentCommand runs one lifecycle action such as depart or mark_paid.
type AdvanceShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	action     shipment.Action

	guard guard.ConstructorGuard
}

func NewAdvanceShipmentCommand(shipmentID kernel.UUID, action shipment.Action) (AdvanceShipmentCommand, error) {
	_, errAction := shipment.ParseAction(string(action))
	if err := errors.Join(shipmentID.Validate(), errAction); err != nil {
		return AdvanceShipmentCommand{}, err
	}
	return AdvanceShipmentCommand{shipmentID: shipmentID, action: action, guard: guard.NewConstructorGuard()}, nil
}

func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

func (c AdvanceShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c AdvanceShipmentCommand) Action() shipment.Action {
	return c.action
}
