package commands

import (
	"context"
)

type ExpireOverdueQuotationsCommandHandler struct {
	uowFactory QuotationUoWFactory
}

func NewExpireOverdueQuotationsCommandHandler(uowFactory QuotationUoWFactory) ExpireOverdueQuotationsCommandHandler {
	return ExpireOverdueQuotationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns how many quotations were expired. Either all of them are saved or none.
func (h ExpireOverdueQuotationsCommandHandler) Handle(ctx context.Context, cmd ExpireOverdueQuotationsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.QuotationRepository()
	overdue, err := repo.GetAllOverdue(ctx, cmd.AsOf())
	if err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	for _, q := range overdue {
		q.Expire()
		if err = repo.Update(ctx, q); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
