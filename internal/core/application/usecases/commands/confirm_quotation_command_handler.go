package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
)

// ConfirmQuotationCommandHandler confirms a quotation and stores the sale order built
// from its sell lines. Both writes share one transaction.
//
// Example:
//
//	handler := NewConfirmQuotationCommandHandler(uowFactory, SystemClock)
//	action, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, quotation.ErrNoCostLines):
//	    // nothing to sell yet
//	case err != nil:
//	    return err
//	}
//	// action opens the sale order form
type ConfirmQuotationCommandHandler struct {
	uowFactory UoWFactory
	now        Clock
}

func NewConfirmQuotationCommandHandler(uowFactory UoWFactory, now Clock) ConfirmQuotationCommandHandler {
	return ConfirmQuotationCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h ConfirmQuotationCommandHandler) Handle(ctx context.Context, cmd ConfirmQuotationCommand) (Action, error) {
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

	quotationRepo := uow.QuotationRepository()
	q, err := quotationRepo.Get(ctx, cmd.QuotationID())
	if err != nil {
		return Action{}, err
	}

	if err = q.ValidateConfirm(); err != nil {
		return Action{}, err
	}

	reference, err := uow.SequenceGenerator().Next(ctx, ports.SequenceSaleOrder)
	if err != nil {
		return Action{}, err
	}

	order, err := services.NewQuotationConverter().Confirm(q, kernel.NewUUID(), reference, h.now())
	if err != nil {
		return Action{}, err
	}

	if err = uow.SaleOrderRepository().Add(ctx, order); err != nil {
		return Action{}, err
	}

	if err = quotationRepo.Update(ctx, q); err != nil {
		return Action{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return Action{}, err
	}

	return OpenForm(ModelSaleOrder, order.ID()), nil
}
