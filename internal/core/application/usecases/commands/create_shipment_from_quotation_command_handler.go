package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// CreateShipmentFromQuotationCommandHandler books the shipment of a confirmed quotation.
// A quotation that is not confirmed, or already converted, yields OK == false and
// leaves the database untouched.
type CreateShipmentFromQuotationCommandHandler struct {
	uowFactory UoWFactory
	now        Clock
}

func NewCreateShipmentFromQuotationCommandHandler(uowFactory UoWFactory, now Clock) CreateShipmentFromQuotationCommandHandler {
	return CreateShipmentFromQuotationCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h CreateShipmentFromQuotationCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentFromQuotationCommand,
) (ConversionResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConversionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConversionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quotationRepo := uow.QuotationRepository()
	q, err := quotationRepo.Get(ctx, cmd.QuotationID())
	if err != nil {
		return ConversionResult{}, err
	}

	if !q.CanCreateShipment() {
		return ConversionResult{}, nil
	}

	portRepo := uow.PortRepository()
	origin, err := portRepo.Get(ctx, q.Terms().Origin)
	if err != nil {
		return ConversionResult{}, err
	}
	destination, err := portRepo.Get(ctx, q.Terms().Destination)
	if err != nil {
		return ConversionResult{}, err
	}

	reference, err := uow.SequenceGenerator().Next(ctx, ports.SequenceShipment)
	if err != nil {
		return ConversionResult{}, err
	}

	s, ok, err := services.NewQuotationConverter().CreateShipment(q, origin, destination, kernel.NewUUID(), reference, h.now())
	if err != nil || !ok {
		return ConversionResult{}, err
	}

	if err = uow.ShipmentRepository().Add(ctx, s); err != nil {
		return ConversionResult{}, err
	}

	if err = quotationRepo.Update(ctx, q); err != nil {
		return ConversionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ConversionResult{}, err
	}

	return ConversionResult{OK: true, Action: OpenForm(ModelShipment, s.ID())}, nil
}
