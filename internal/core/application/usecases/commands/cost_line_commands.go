package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddCostLineCommandIsNotConstructed         = errors.New("AddCostLineCommand must be created via NewAddCostLineCommand")
	ErrUpdateCostLineCommandIsNotConstructed      = errors.New("UpdateCostLineCommand must be created via NewUpdateCostLineCommand")
	ErrRemoveCostLineCommandIsNotConstructed      = errors.New("RemoveCostLineCommand must be created via NewRemoveCostLineCommand")
	ErrLinkCostLineInvoiceCommandIsNotConstructed = errors.New(
		"LinkCostLineInvoiceCommand must be created via NewLinkCostLineInvoiceCommand",
	)
	ErrNoCostLineChanges = errs.NewValueIsRequiredError("cost line changes")
)

// AddCostLineCommand appends a charge to a quotation or a shipment.
//
// Example:
//
//	owner := costline.Owner{Kind: costline.OwnerQuotation, ID: quotationID}
//	cmd, err := NewAddCostLineCommand(owner, costline.Spec{
//	    Type:        costline.TypeSell,
//	    Category:    costline.CategoryFreight,
//	    Description: "Ocean freight AEJEA-NLRTM",
//	    Quantity:    decimal.NewNullDecimal(decimal.NewFromInt(2)),
//	    UnitPrice:   decimal.NewFromInt(1450),
//	})
type AddCostLineCommand struct { //nolint:recvcheck //using for validation
	owner costline.Owner
	spec  costline.Spec

	guard guard.ConstructorGuard
}

func NewAddCostLineCommand(owner costline.Owner, spec costline.Spec) (AddCostLineCommand, error) {
	if err := owner.Validate(); err != nil {
		return AddCostLineCommand{}, err
	}
	return AddCostLineCommand{owner: owner, spec: spec, guard: guard.NewConstructorGuard()}, nil
}

func (c AddCostLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCostLineCommandIsNotConstructed)
}

func (c AddCostLineCommand) Owner() costline.Owner {
	return c.owner
}

func (c AddCostLineCommand) Spec() costline.Spec {
	return c.spec
}

// CostLineChanges lists the attributes to overwrite. Unset fields keep their value.
type CostLineChanges struct {
	Quantity    decimal.NullDecimal
	UnitPrice   decimal.NullDecimal
	Description *string
	Partner     *string
}

func (c CostLineChanges) empty() bool {
	return !c.Quantity.Valid && !c.UnitPrice.Valid && c.Description == nil && c.Partner == nil
}

type UpdateCostLineCommand struct { //nolint:recvcheck //using for validation
	owner   costline.Owner
	lineID  kernel.UUID
	changes CostLineChanges

	guard guard.ConstructorGuard
}

func NewUpdateCostLineCommand(owner costline.Owner, lineID kernel.UUID, changes CostLineChanges) (UpdateCostLineCommand, error) {
	var errChanges error
	if changes.empty() {
		errChanges = ErrNoCostLineChanges
	}
	if err := errors.Join(owner.Validate(), lineID.Validate(), errChanges); err != nil {
		return UpdateCostLineCommand{}, err
	}
	return UpdateCostLineCommand{owner: owner, lineID: lineID, changes: changes, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateCostLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCostLineCommandIsNotConstructed)
}

func (c UpdateCostLineCommand) Owner() costline.Owner {
	return c.owner
}

func (c UpdateCostLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c UpdateCostLineCommand) Changes() CostLineChanges {
	return c.changes
}

type RemoveCostLineCommand struct { //nolint:recvcheck //using for validation
	owner  costline.Owner
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCostLineCommand(owner costline.Owner, lineID kernel.UUID) (RemoveCostLineCommand, error) {
	if err := errors.Join(owner.Validate(), lineID.Validate()); err != nil {
		return RemoveCostLineCommand{}, err
	}
	return RemoveCostLineCommand{owner: owner, lineID: lineID, guard: guard.NewConstructorGuard()}, nil
}

func (c RemoveCostLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCostLineCommandIsNotConstructed)
}

func (c RemoveCostLineCommand) Owner() costline.Owner {
	return c.owner
}

func (c RemoveCostLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// LinkCostLineInvoiceCommand records the external invoice line a cost line was billed on.
type LinkCostLineInvoiceCommand struct { //nolint:recvcheck //using for validation
	owner          costline.Owner
	lineID         kernel.UUID
	invoiceLineRef string

	guard guard.ConstructorGuard
}

func NewLinkCostLineInvoiceCommand(owner costline.Owner, lineID kernel.UUID, invoiceLineRef string) (LinkCostLineInvoiceCommand, error) {
	var errRef error
	invoiceLineRef = strings.TrimSpace(invoiceLineRef)
	if invoiceLineRef == "" {
		errRef = errs.NewValueIsRequiredError("invoice line reference")
	}
	if err := errors.Join(owner.Validate(), lineID.Validate(), errRef); err != nil {
		return LinkCostLineInvoiceCommand{}, err
	}
	return LinkCostLineInvoiceCommand{
		owner:          owner,
		lineID:         lineID,
		invoiceLineRef: invoiceLineRef,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c LinkCostLineInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrLinkCostLineInvoiceCommandIsNotConstructed)
}

func (c LinkCostLineInvoiceCommand) Owner() costline.Owner {
	return c.owner
}

func (c LinkCostLineInvoiceCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c LinkCostLineInvoiceCommand) InvoiceLineRef() string {
	return c.invoiceLineRef
}
