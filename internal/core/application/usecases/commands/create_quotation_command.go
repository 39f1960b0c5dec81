package commands

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateQuotationCommandIsNotConstructed = errors.New(
	"CreateQuotationCommand must be created via NewCreateQuotationCommand",
)

// QuotationFields are the header attributes supplied when a quotation is opened.
// Zero dates and an empty currency take the configured defaults.
type QuotationFields struct {
	Customer      string
	Origin        kernel.UUID
	Destination   kernel.UUID
	Mode          kernel.TransportMode
	Direction     kernel.Direction
	ServiceType   kernel.ServiceType
	Cargo         quotation.Cargo
	QuotationDate time.Time
	ValidityDate  time.Time
	Currency      kernel.Currency
	Conditions    string
	InternalNotes string
}

// CreateQuotationCommand opens a draft quotation numbered from the quotation sequence.
//
// Example:
//
//	cmd, err := NewCreateQuotationCommand(QuotationFields{
//	    Customer:    "Acme Trading LLC",
//	    Origin:      jebelAli.ID(),
//	    Destination: rotterdam.ID(),
//	    Mode:        kernel.TransportModeOcean,
//	    Direction:   kernel.DirectionExport,
//	    Cargo:       quotation.Cargo{Description: "Machinery parts"},
//	})
type CreateQuotationCommand struct { //nolint:recvcheck //using for validation
	fields QuotationFields

	guard guard.ConstructorGuard
}

func NewCreateQuotationCommand(fields QuotationFields) (CreateQuotationCommand, error) {
	cmd := CreateQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(fields.Customer),
		fields.Origin.Validate(),
		fields.Destination.Validate(),
		fields.Mode.Validate(),
	); err != nil {
		return CreateQuotationCommand{}, err
	}

	fields.Customer = cmd.fields.Customer
	cmd.fields = fields
	return cmd, nil
}

func (c CreateQuotationCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuotationCommandIsNotConstructed)
}

func (c CreateQuotationCommand) Fields() QuotationFields {
	return c.fields
}

func (c *CreateQuotationCommand) setCustomer(customer string) error {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	c.fields.Customer = customer
	return nil
}
