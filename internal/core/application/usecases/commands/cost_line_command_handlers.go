package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
)

// lineOwner is implemented by both quotations and shipments.
type lineOwner interface {
	CostLine(id kernel.UUID) (*costline.CostLine, error)
	AddCostLine(line *costline.CostLine) error
	RemoveCostLine(id kernel.UUID) error
}

// editLines loads the owner, applies edit and saves the owner with its replaced
// line set, all inside one transaction.
func editLines(ctx context.Context, uowFactory CostLineUoWFactory, owner costline.Owner, edit func(lineOwner) error) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	switch owner.Kind {
	case costline.OwnerQuotation:
		repo := uow.QuotationRepository()
		q, err := repo.Get(ctx, owner.ID)
		if err != nil {
			return err
		}
		if err = edit(q); err != nil {
			return err
		}
		if err = repo.Update(ctx, q); err != nil {
			return err
		}
	case costline.OwnerShipment:
		repo := uow.ShipmentRepository()
		s, err := repo.Get(ctx, owner.ID)
		if err != nil {
			return err
		}
		if err = edit(s); err != nil {
			return err
		}
		if err = repo.Update(ctx, s); err != nil {
			return err
		}
	default:
		return owner.Validate()
	}

	return uow.Commit(ctx)
}

// AddCostLineCommandHandler creates the line and attaches it to its owner. Totals
// of the owner follow on the next read.
type AddCostLineCommandHandler struct {
	uowFactory CostLineUoWFactory
}

func NewAddCostLineCommandHandler(uowFactory CostLineUoWFactory) AddCostLineCommandHandler {
	return AddCostLineCommandHandler{uowFactory: uowFactory}
}

// Handle returns the id of the created line.
func (h AddCostLineCommandHandler) Handle(ctx context.Context, cmd AddCostLineCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	line, err := costline.NewCostLine(kernel.NewUUID(), cmd.Spec())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = editLines(ctx, h.uowFactory, cmd.Owner(), func(o lineOwner) error {
		return o.AddCostLine(line)
	}); err != nil {
		return kernel.UUID{}, err
	}

	return line.ID(), nil
}

type UpdateCostLineCommandHandler struct {
	uowFactory CostLineUoWFactory
}

func NewUpdateCostLineCommandHandler(uowFactory CostLineUoWFactory) UpdateCostLineCommandHandler {
	return UpdateCostLineCommandHandler{uowFactory: uowFactory}
}

// Handle applies the changes; the amount is recomputed by the line itself.
func (h UpdateCostLineCommandHandler) Handle(ctx context.Context, cmd UpdateCostLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	changes := cmd.Changes()
	return editLines(ctx, h.uowFactory, cmd.Owner(), func(o lineOwner) error {
		line, err := o.CostLine(cmd.LineID())
		if err != nil {
			return err
		}

		var errQuantity, errPrice, errDescription error
		if changes.Quantity.Valid {
			errQuantity = line.SetQuantity(changes.Quantity.Decimal)
		}
		if changes.UnitPrice.Valid {
			errPrice = line.SetUnitPrice(changes.UnitPrice.Decimal)
		}
		if changes.Description != nil {
			errDescription = line.SetDescription(*changes.Description)
		}
		if changes.Partner != nil {
			line.SetPartner(*changes.Partner)
		}
		return errors.Join(errQuantity, errPrice, errDescription)
	})
}

// RemoveCostLineCommandHandler deletes a line that has not been invoiced.
type RemoveCostLineCommandHandler struct {
	uowFactory CostLineUoWFactory
}

func NewRemoveCostLineCommandHandler(uowFactory CostLineUoWFactory) RemoveCostLineCommandHandler {
	return RemoveCostLineCommandHandler{uowFactory: uowFactory}
}

func (h RemoveCostLineCommandHandler) Handle(ctx context.Context, cmd RemoveCostLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return editLines(ctx, h.uowFactory, cmd.Owner(), func(o lineOwner) error {
		return o.RemoveCostLine(cmd.LineID())
	})
}

// LinkCostLineInvoiceCommandHandler marks a line as invoiced. A line already
// linked to another invoice line keeps its reference and the command fails.
type LinkCostLineInvoiceCommandHandler struct {
	uowFactory CostLineUoWFactory
}

func NewLinkCostLineInvoiceCommandHandler(uowFactory CostLineUoWFactory) LinkCostLineInvoiceCommandHandler {
	return LinkCostLineInvoiceCommandHandler{uowFactory: uowFactory}
}

func (h LinkCostLineInvoiceCommandHandler) Handle(ctx context.Context, cmd LinkCostLineInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return editLines(ctx, h.uowFactory, cmd.Owner(), func(o lineOwner) error {
		line, err := o.CostLine(cmd.LineID())
		if err != nil {
			return err
		}
		return line.LinkInvoiceLine(cmd.InvoiceLineRef())
	})
}
