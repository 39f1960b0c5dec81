package http

import (
	"net/http"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateQuotation handles POST /api/v1/quotations.
func (s *Server) CreateQuotation(ctx echo.Context) error {
	var body QuotationInput
	if err := bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	fields, err := quotationFieldsOf(body)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateQuotationCommand(fields)
	if err != nil {
		return s.writeError(ctx, err)
	}

	action, err := s.quotations.Create.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, actionOf(action))
}

// UpdateQuotation handles PUT /api/v1/quotations/{id}. Omitted dates and
// currency keep their current values.
func (s *Server) UpdateQuotation(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	var body QuotationInput
	if err = bindBody(ctx, &body); err != nil {
		return s.writeError(ctx, err)
	}

	fields, err := quotationFieldsOf(body)
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewUpdateQuotationCommand(id, fields)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.quotations.Update.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetQuotation handles GET /api/v1/quotations/{id}.
func (s *Server) GetQuotation(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetQuotationQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.quotations.Get.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, quotationOf(response))
}

// ChangeQuotationState handles POST /api/v1/quotations/{id}/actions/{action}.
func (s *Server) ChangeQuotationState(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := commands.ParseQuotationAction(ctx.Param("action"))
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewChangeQuotationStateCommand(id, action)
	if err != nil {
		return s.writeError(ctx, err)
	}
	if err = s.quotations.ChangeState.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmQuotation handles POST /api/v1/quotations/{id}/confirm and answers with
// the generated sale order.
func (s *Server) ConfirmQuotation(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewConfirmQuotationCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	action, err := s.quotations.Confirm.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, actionOf(action))
}

// CreateShipmentFromQuotation handles POST /api/v1/quotations/{id}/shipment.
// A quotation that is not confirmed, or already converted, yields ok=false.
func (s *Server) CreateShipmentFromQuotation(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	cmd, err := commands.NewCreateShipmentFromQuotationCommand(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	result, err := s.quotations.ToShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := ConversionResult{OK: result.OK}
	if result.OK {
		action := actionOf(result.Action)
		response.Action = &action
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetSaleOrder handles GET /api/v1/sale-orders/{id}.
func (s *Server) GetSaleOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx, "id")
	if err != nil {
		return s.writeError(ctx, err)
	}
	query, err := queries.NewGetSaleOrderQuery(id)
	if err != nil {
		return s.writeError(ctx, err)
	}
	response, err := s.quotations.GetSaleOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, saleOrderOf(response))
}

func quotationFieldsOf(body QuotationInput) (commands.QuotationFields, error) {
	currency, err := optionalCurrency(body.Currency)
	if err != nil {
		return commands.QuotationFields{}, err
	}
	return commands.QuotationFields{
		Customer:    body.Customer,
		Origin:      kernel.UUIDFromGoogle(body.OriginPortID),
		Destination: kernel.UUIDFromGoogle(body.DestinationPortID),
		Mode:        kernel.TransportMode(body.TransportMode),
		Direction:   kernel.Direction(body.Direction),
		ServiceType: kernel.ServiceType(body.ServiceType),
		Cargo: quotation.Cargo{
			Description:     body.CargoDescription,
			EstimatedWeight: body.EstimatedWeight,
			EstimatedVolume: body.EstimatedVolume,
		},
		QuotationDate: dateOf(body.QuotationDate),
		ValidityDate:  dateOf(body.ValidityDate),
		Currency:      currency,
		Conditions:    body.Conditions,
		InternalNotes: body.InternalNotes,
	}, nil
}

func optionalCurrency(s string) (kernel.Currency, error) {
	if s == "" {
		return "", nil
	}
	return kernel.NewCurrency(s)
}

func dateOf(d *openapi_types.Date) time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
