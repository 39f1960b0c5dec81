package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrChangeQuotationStateCommandIsNotConstructed = errors.New(
	"ChangeQuotationStateCommand must be created via NewChangeQuotationStateCommand",
)

// QuotationAction names a state change that does not create documents.
type QuotationAction string

const (
	QuotationActionSend         QuotationAction = "send"
	QuotationActionExpire       QuotationAction = "expire"
	QuotationActionCancel       QuotationAction = "cancel"
	QuotationActionResetToDraft QuotationAction = "reset_to_draft"
)

func ParseQuotationAction(s string) (QuotationAction, error) {
	switch a := QuotationAction(s); a {
	case QuotationActionSend, QuotationActionExpire, QuotationActionCancel, QuotationActionResetToDraft:
		return a, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("quotation action", fmt.Errorf("%q is not a quotation action", s))
	}
}

type ChangeQuotationStateCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	action      QuotationAction

	guard guard.ConstructorGuard
}

func NewChangeQuotationStateCommand(quotationID kernel.UUID, action QuotationAction) (ChangeQuotationStateCommand, error) {
	_, errAction := ParseQuotationAction(string(action))
	if err := errors.Join(quotationID.Validate(), errAction); err != nil {
		return ChangeQuotationStateCommand{}, err
	}
	return ChangeQuotationStateCommand{
		quotationID: quotationID,
		action:      action,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeQuotationStateCommand) Validate() error {
	return c.guard.Validate(ErrChangeQuotationStateCommandIsNotConstructed)
}

func (c ChangeQuotationStateCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

func (c ChangeQuotationStateCommand) Action() QuotationAction {
	return c.action
}
