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

type GetSaleOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetSaleOrderQueryHandler(db *gorm.DB) GetSaleOrderQueryHandler {
	return GetSaleOrderQueryHandler{db: db}
}

func (h GetSaleOrderQueryHandler) Handle(ctx context.Context, query GetSaleOrderQuery) (GetSaleOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSaleOrderQueryResponse{}, err
	}

	var (
		resp        GetSaleOrderQueryResponse
		quotationID uuid.UUID
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT reference, quotation_id, customer, currency, amount_total, created_at
		FROM sale_orders
		WHERE id = ?
	`, query.ID().Bytes()).Row().Scan(
		&resp.Reference,
		&quotationID,
		&resp.Customer,
		&resp.Currency,
		&resp.Total,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetSaleOrderQueryResponse{}, errs.NewObjectNotFoundError("sale order", query.ID())
	}
	if err != nil {
		return GetSaleOrderQueryResponse{}, err
	}
	resp.ID = query.ID()
	resp.Quotation = commands.OpenForm(commands.ModelQuotation, kernel.UUIDFromGoogle(quotationID))

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product, description, quantity, unit_price
		FROM sale_order_lines
		WHERE sale_order_id = ?
		ORDER BY position
	`, query.ID().Bytes()).Rows()
	if err != nil {
		return GetSaleOrderQueryResponse{}, err
	}
	defer rows.Close()

	resp.Lines = make([]SaleOrderLineResponse, 0)
	for rows.Next() {
		var line SaleOrderLineResponse
		if err = rows.Scan(&line.Product, &line.Description, &line.Quantity, &line.UnitPrice); err != nil {
			return GetSaleOrderQueryResponse{}, err
		}
		line.Subtotal = line.Quantity.Mul(line.UnitPrice).Round(kernel.MoneyPlaces)
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return GetSaleOrderQueryResponse{}, err
	}
	return resp, nil
}
