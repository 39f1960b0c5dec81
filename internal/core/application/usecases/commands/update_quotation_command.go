package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrUpdateQuotationCommandIsNotConstructed = errors.New(
	"UpdateQuotationCommand must be created via NewUpdateQuotationCommand",
)

// UpdateQuotationCommand edits the header of a draft or sent quotation. Zero
// dates and an empty currency keep the current values.
type UpdateQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID
	fields      QuotationFields

	guard guard.ConstructorGuard
}

func NewUpdateQuotationCommand(quotationID kernel.UUID, fields QuotationFields) (UpdateQuotationCommand, error) {
	header, err := NewCreateQuotationCommand(fields)
	if err = errors.Join(quotationID.Validate(), err); err != nil {
		return UpdateQuotationCommand{}, err
	}
	return UpdateQuotationCommand{
		quotationID: quotationID,
		fields:      header.Fields(),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateQuotationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuotationCommandIsNotConstructed)
}

func (c UpdateQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

func (c UpdateQuotationCommand) Fields() QuotationFields {
	return c.fields
}
