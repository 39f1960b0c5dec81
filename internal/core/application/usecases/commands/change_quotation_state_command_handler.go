package commands

import (
	"context"

	"freight/internal/core/domain/model/quotation"
)

// ChangeQuotationStateCommandHandler applies send, expire, cancel and reset to draft.
// Only send checks the current state; the other three overwrite it.
type ChangeQuotationStateCommandHandler struct {
	uowFactory QuotationUoWFactory
}

func NewChangeQuotationStateCommandHandler(uowFactory QuotationUoWFactory) ChangeQuotationStateCommandHandler {
	return ChangeQuotationStateCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangeQuotationStateCommandHandler) Handle(ctx context.Context, cmd ChangeQuotationStateCommand) error {
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

	if err = applyQuotationAction(q, cmd.Action()); err != nil {
		return err
	}

	if err = repo.Update(ctx, q); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyQuotationAction(q *quotation.Quotation, action QuotationAction) error {
	switch action {
	case QuotationActionSend:
		return q.Send()
	case QuotationActionExpire:
		q.Expire()
	case QuotationActionCancel:
		q.Cancel()
	case QuotationActionResetToDraft:
		q.ResetToDraft()
	default:
		_, err := ParseQuotationAction(string(action))
		return err
	}
	return nil
}
