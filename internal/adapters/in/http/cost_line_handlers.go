package http

import (
	"net/http"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/costline"

	"github.com/labstack/echo/v4"
)

func (s *Server) AddQuotationCostLine(ctx echo.Context) error {
	return s.addCostLine(ctx, costline.OwnerQuotation)
}

func (s *Server) UpdateQuotationCostLine(ctx echo.Context) error {
	return s.updateCostLine(ctx, costline.OwnerQuotation)
}

func (s *Server) RemoveQuotationCostLine(ctx echo.Context) error {
	return s.removeCostLine(ctx, costline.OwnerQuotation)
}

func (s *Server) AddShipmentCostLine(ctx echo.Context) error {
	return s.addCostLine(ctx, costline.OwnerShipment)
}

func (s *Server) UpdateShipmentCostLine(ctx echo.Context) error {
	return s.updateCostLine(ctx, costline.OwnerShipment)
}

func (s *Server) RemoveShipmentCostLine(ctx echo.Context) error {
	return s.removeCostLine(ctx, costline.OwnerShipment)
}

// LinkShipmentCostLineInvoice handles POST /api/v1/shipments/{id}/cost-lines/{lineId}/invoice.
func (s *Server) LinkShipmentCostLineInvoice(ctx echo.Context) error {
	owner, err := costLineOwner(ctx, costline.OwnerShipment)
	if err != nil {
		return s.writeError(ctx, err)
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body InvoiceLink
	if err = bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewLinkCostLineInvoiceCommand(owner, lineID, body.InvoiceLineRef)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.costLines.LinkInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) addCostLine(ctx echo.Context, kind costline.OwnerKind) error {
	owner, err := costLineOwner(ctx, kind)
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body CostLineInput
	if err = bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewAddCostLineCommand(owner, costline.Spec{
		Sequence:    body.Sequence,
		Type:        costline.Type(body.CostType),
		Category:    costline.Category(body.Category),
		Description: body.Description,
		Partner:     body.Partner,
		Quantity:    body.Quantity,
		UnitPrice:   body.UnitPrice,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}

	id, err := s.costLines.Add.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

func (s *Server) updateCostLine(ctx echo.Context, kind costline.OwnerKind) error {
	owner, err := costLineOwner(ctx, kind)
	if err != nil {
		return s.writeError(ctx, err)
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body CostLineChanges
	if err = bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateCostLineCommand(owner, lineID, commands.CostLineChanges{
		Quantity:    body.Quantity,
		UnitPrice:   body.UnitPrice,
		Description: body.Description,
		Partner:     body.Partner,
	})
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.costLines.Update.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) removeCostLine(ctx echo.Context, kind costline.OwnerKind) error {
	owner, err := costLineOwner(ctx, kind)
	if err != nil {
		return s.writeError(ctx, err)
	}
	lineID, err := pathUUID(ctx, "lineId")
	if err != nil {
		return s.writeError(ctx, err)
	}

	cmd, err := commands.NewRemoveCostLineCommand(owner, lineID)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.costLines.Remove.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func costLineOwner(ctx echo.Context, kind costline.OwnerKind) (costline.Owner, error) {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return costline.Owner{}, err
	}
	return costline.Owner{Kind: kind, ID: id}, nil
}
