package commands

import (
	"errors"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrExpireOverdueQuotationsCommandIsNotConstructed = errors.New(
	"ExpireOverdueQuotationsCommand must be created via NewExpireOverdueQuotationsCommand",
)

// ExpireOverdueQuotationsCommand expires every open quotation whose validity
// date lies before the calendar date of asOf.
type ExpireOverdueQuotationsCommand struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

func NewExpireOverdueQuotationsCommand(asOf time.Time) (ExpireOverdueQuotationsCommand, error) {
	if asOf.IsZero() {
		return ExpireOverdueQuotationsCommand{}, errs.NewValueIsRequiredError("asOf")
	}
	return ExpireOverdueQuotationsCommand{asOf: asOf, guard: guard.NewConstructorGuard()}, nil
}

func (c ExpireOverdueQuotationsCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueQuotationsCommandIsNotConstructed)
}

func (c ExpireOverdueQuotationsCommand) AsOf() time.Time {
	return c.asOf
}
