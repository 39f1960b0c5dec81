package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/ports"
)

// QuotationDefaults fill the fields a new quotation may leave empty.
type QuotationDefaults struct {
	ValidityDays int
	Currency     kernel.Currency
}

// CreateQuotationCommandHandler opens a quotation after checking both ports exist.
type CreateQuotationCommandHandler struct {
	uowFactory QuotationUoWFactory
	defaults   QuotationDefaults
	now        Clock
}

func NewCreateQuotationCommandHandler(
	uowFactory QuotationUoWFactory,
	defaults QuotationDefaults,
	now Clock,
) CreateQuotationCommandHandler {
	return CreateQuotationCommandHandler{
		uowFactory: uowFactory,
		defaults:   defaults,
		now:        now,
	}
}

func (h CreateQuotationCommandHandler) Handle(ctx context.Context, cmd CreateQuotationCommand) (Action, error) {
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
	portRepo := uow.PortRepository()
	if _, err := portRepo.Get(ctx, f.Origin); err != nil {
		return Action{}, err
	}
	if _, err := portRepo.Get(ctx, f.Destination); err != nil {
		return Action{}, err
	}

	reference, err := uow.SequenceGenerator().Next(ctx, ports.SequenceQuotation)
	if err != nil {
		return Action{}, err
	}

	q, err := quotation.NewQuotation(kernel.NewUUID(), reference, h.terms(f))
	if err != nil {
		return Action{}, err
	}

	if err = uow.QuotationRepository().Add(ctx, q); err != nil {
		return Action{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Action{}, err
	}

	return OpenForm(ModelQuotation, q.ID()), nil
}

func (h CreateQuotationCommandHandler) terms(f QuotationFields) quotation.Terms {
	quotationDate := f.QuotationDate
	if quotationDate.IsZero() {
		quotationDate = h.now()
	}
	quotationDate = quotation.DateOf(quotationDate)

	validityDate := f.ValidityDate
	if validityDate.IsZero() {
		validityDate = quotationDate.AddDate(0, 0, h.defaults.ValidityDays)
	}

	currency := f.Currency
	if currency == "" {
		currency = h.defaults.Currency
	}

	return quotation.Terms{
		Customer:      f.Customer,
		Origin:        f.Origin,
		Destination:   f.Destination,
		Mode:          f.Mode,
		Direction:     f.Direction,
		ServiceType:   f.ServiceType,
		Cargo:         f.Cargo,
		QuotationDate: quotationDate,
		ValidityDate:  validityDate,
		Currency:      currency,
		Conditions:    f.Conditions,
		InternalNotes: f.InternalNotes,
	}
}
