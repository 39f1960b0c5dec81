package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetQuotationQueryHandler struct {
	db *gorm.DB
}

func NewGetQuotationQueryHandler(db *gorm.DB) GetQuotationQueryHandler {
	return GetQuotationQueryHandler{db: db}
}

func (h GetQuotationQueryHandler) Handle(ctx context.Context, query GetQuotationQuery) (GetQuotationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuotationQueryResponse{}, err
	}

	var (
		resp                    GetQuotationQueryResponse
		origin, destination     uuid.UUID
		shipmentID, saleOrderID uuid.NullUUID
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			q.reference,
			q.status,
			q.customer,
			q.origin_port_id,
			'[' || o.code || '] ' || o.name || ', ' || o.country,
			q.destination_port_id,
			'[' || d.code || '] ' || d.name || ', ' || d.country,
			q.transport_mode,
			q.direction,
			COALESCE(q.service_type, ''),
			COALESCE(q.cargo_description, ''),
			q.cargo_estimated_weight,
			q.cargo_estimated_volume,
			q.quotation_date,
			q.validity_date,
			q.currency,
			COALESCE(q.conditions, ''),
			COALESCE(q.internal_notes, ''),
			q.total_amount,
			q.shipment_id,
			q.sale_order_id
		FROM quotations q
		JOIN ports o ON o.id = q.origin_port_id
		JOIN ports d ON d.id = q.destination_port_id
		WHERE q.id = ?
	`, query.ID().Bytes()).Row().Scan(
		&resp.Reference,
		&resp.Status,
		&resp.Customer,
		&origin,
		&resp.Origin.DisplayName,
		&destination,
		&resp.Destination.DisplayName,
		&resp.TransportMode,
		&resp.Direction,
		&resp.ServiceType,
		&resp.CargoDescription,
		&resp.EstimatedWeight,
		&resp.EstimatedVolume,
		&resp.QuotationDate,
		&resp.ValidityDate,
		&resp.Currency,
		&resp.Conditions,
		&resp.InternalNotes,
		&resp.TotalAmount,
		&shipmentID,
		&saleOrderID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetQuotationQueryResponse{}, errs.NewObjectNotFoundError("quotation", query.ID())
	}
	if err != nil {
		return GetQuotationQueryResponse{}, err
	}

	resp.ID = query.ID()
	resp.Origin.ID = kernel.UUIDFromGoogle(origin)
	resp.Destination.ID = kernel.UUIDFromGoogle(destination)
	if id := optionalUUID(saleOrderID); id != nil {
		action := commands.OpenForm(commands.ModelSaleOrder, *id)
		resp.SaleOrder = &action
	}
	if id := optionalUUID(shipmentID); id != nil {
		action := commands.OpenForm(commands.ModelShipment, *id)
		resp.Shipment = &action
	}

	resp.CostLines, err = loadCostLines(ctx, h.db, "quotation_id", query.ID())
	if err != nil {
		return GetQuotationQueryResponse{}, err
	}
	return resp, nil
}
