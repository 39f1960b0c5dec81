package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var (
	ErrConfirmQuotationCommandIsNotConstructed = errors.New(
		"ConfirmQuotationCommand must be created via NewConfirmQuotationCommand",
	)
	ErrCreateShipmentFromQuotationCommandIsNotConstructed = errors.New(
		"CreateShipmentFromQuotationCommand must be created via NewCreateShipmentFromQuotationCommand",
	)
)

// ConfirmQuotationCommand accepts a quotation on behalf of the customer, which
// generates its sale order.
type ConfirmQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewConfirmQuotationCommand(quotationID kernel.UUID) (ConfirmQuotationCommand, error) {
	if err := quotationID.Validate(); err != nil {
		return ConfirmQuotationCommand{}, err
	}
	return ConfirmQuotationCommand{quotationID: quotationID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmQuotationCommand) Validate() error {
	return c.guard.Validate(ErrConfirmQuotationCommandIsNotConstructed)
}

func (c ConfirmQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}

// CreateShipmentFromQuotationCommand converts a confirmed quotation into a shipment.
type CreateShipmentFromQuotationCommand struct { //nolint:recvcheck //using for validation
	quotationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateShipmentFromQuotationCommand(quotationID kernel.UUID) (CreateShipmentFromQuotationCommand, error) {
	if err := quotationID.Validate(); err != nil {
		return CreateShipmentFromQuotationCommand{}, err
	}
	return CreateShipmentFromQuotationCommand{quotationID: quotationID, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateShipmentFromQuotationCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentFromQuotationCommandIsNotConstructed)
}

func (c CreateShipmentFromQuotationCommand) QuotationID() kernel.UUID {
	return c.quotationID
}
