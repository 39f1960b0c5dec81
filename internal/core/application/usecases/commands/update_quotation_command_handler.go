package commands

import (
	"context"

	"freight/internal/core/domain/model/quotation"
)

// UpdateQuotationCommandHandler rewrites a quotation header after checking both ports exist.
type UpdateQuotationCommandHandler struct {
	uowFactory QuotationUoWFactory
}

func NewUpdateQuotationCommandHandler(uowFactory QuotationUoWFactory) UpdateQuotationCommandHandler {
	return UpdateQuotationCommandHandler{uowFactory: uowFactory}
}

func (h UpdateQuotationCommandHandler) Handle(ctx context.Context, cmd UpdateQuotationCommand) error {
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

	repo := uow.QuotationRepository()
	q, err := repo.Get(ctx, cmd.QuotationID())
	if err != nil {
		return err
	}

	f := cmd.Fields()
	portRepo := uow.PortRepository()
	if _, err = portRepo.Get(ctx, f.Origin); err != nil {
		return err
	}
	if _, err = portRepo.Get(ctx, f.Destination); err != nil {
		return err
	}

	if err = q.Update(updatedTerms(q.Terms(), f)); err != nil {
		return err
	}

	if err = repo.Update(ctx, q); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func updatedTerms(current quotation.Terms, f QuotationFields) quotation.Terms {
	terms := quotation.Terms{
		Customer:      f.Customer,
		Origin:        f.Origin,
		Destination:   f.Destination,
		Mode:          f.Mode,
		Direction:     f.Direction,
		ServiceType:   f.ServiceType,
		Cargo:         f.Cargo,
		QuotationDate: f.QuotationDate,
		ValidityDate:  f.ValidityDate,
		Currency:      f.Currency,
		Conditions:    f.Conditions,
		InternalNotes: f.InternalNotes,
	}
	if terms.QuotationDate.IsZero() {
		terms.QuotationDate = current.QuotationDate
	}
	if terms.ValidityDate.IsZero() {
		terms.ValidityDate = current.ValidityDate
	}
	if terms.Currency == "" {
		terms.Currency = current.Currency
	}
	return terms
}
