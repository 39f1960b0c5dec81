package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
)

// loadRoute resolves both ports and checks they support the transport mode.
func loadRoute(ctx context.Context, repo ports.RegistryRepository[*port.Port], r RouteFields) (shipment.Route, error) {
	origin, err := repo.Get(ctx, r.Origin)
	if err != nil {
		return shipment.Route{}, err
	}
	destination, err := repo.Get(ctx, r.Destination)
	if err != nil {
		return shipment.Route{}, err
	}
	return shipment.NewRoute(origin, destination, r.Mode)
}

// CreateShipmentCommandHandler opens a draft shipment booked today.
type CreateShipmentCommandHandler struct {
	uowFactory      ShipmentUoWFactory
	defaultCurrency kernel.Currency
	now             Clock
}

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	defaultCurrency kernel.Currency,
	now Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:      uowFactory,
		defaultCurrency: defaultCurrency,
		now:             now,
	}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (Action, error) {
	if err := cmd.Validate(); err != nil {
		return Action{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return Action{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	f := cmd.Fields()
	route, err := loadRoute(ctx, uow.PortRepository(), f.Route)
	if err != nil {
		return Action{}, err
	}

	reference, err := uow.SequenceGenerator().Next(ctx, ports.SequenceShipment)
	if err != nil {
		return Action{}, err
	}

	currency := f.Currency
	if currency == "" {
		currency = h.defaultCurrency
	}

	s, err := shipment.NewShipment(kernel.NewUUID(), reference, bookingOf(f, route, h.now(), currency))
	if err != nil {
		return Action{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return Action{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Action{}, err
	}

	return OpenForm(ModelShipment, s.ID()), nil
}

// UpdateShipmentCommandHandler edits a shipment's booking. The route follows
// the same port and transport mode rules as on creation.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{uowFactory: uowFactory}
}

func (h UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	f := cmd.Fields()
	route, err := loadRoute(ctx, uow.PortRepository(), f.Route)
	if err != nil {
		return err
	}

	currency := f.Currency
	if currency == "" {
		currency = s.Currency()
	}

	if err = s.Update(bookingOf(f, route, s.Booking().BookingDate, currency)); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func bookingOf(f ShipmentFields, route shipment.Route, bookingDate time.Time, currency kernel.Currency) shipment.Booking {
	return shipment.Booking{
		Parties:             f.Parties,
		Route:               route,
		Direction:           f.Direction,
		ServiceType:         f.ServiceType,
		IncotermID:          f.IncotermID,
		Cargo:               f.Cargo,
		Carrier:             f.Carrier,
		BookingDate:         bookingDate,
		EstimatedDeparture:  f.EstimatedDeparture,
		EstimatedArrival:    f.EstimatedArrival,
		Currency:            currency,
		SpecialInstructions: f.SpecialInstructions,
		InternalNotes:       f.InternalNotes,
	}
}

// UpdateShipmentRouteCommandHandler reroutes a shipment. The same port and
// transport mode rules as on creation apply.
type UpdateShipmentRouteCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewUpdateShipmentRouteCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentRouteCommandHandler {
	return UpdateShipmentRouteCommandHandler{uowFactory: uowFactory}
}

func (h UpdateShipmentRouteCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	route, err := loadRoute(ctx, uow.PortRepository(), cmd.Route())
	if err != nil {
		return err
	}

	if err = s.Reroute(route); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// AdvanceShipmentCommandHandler applies a lifecycle action and returns the new status.
type AdvanceShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	now        Clock
}

func NewAdvanceShipmentCommandHandler(uowFactory ShipmentUoWFactory, now Clock) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h AdvanceShipmentCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentCommand) (shipment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ShipmentRepository()
	s, err := repo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return "", err
	}

	if err = s.Apply(cmd.Action(), h.now()); err != nil {
		return "", err
	}

	if err = repo.Update(ctx, s); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return s.Status(), nil
}
