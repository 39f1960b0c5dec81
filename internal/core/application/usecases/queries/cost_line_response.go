package queries

import (
	"context"
	"database/sql"
	"time"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CostLineResponse struct {
	ID             kernel.UUID
	Sequence       int
	CostType       string
	Category       string
	Description    string
	Partner        string
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	Amount         decimal.Decimal
	InvoiceLineRef string
	Invoiced       bool
}

// ownerColumn is quotation_id or shipment_id; it never comes from user input.
func loadCostLines(ctx context.Context, db *gorm.DB, ownerColumn string, ownerID kernel.UUID) ([]CostLineResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			cost_type,
			category,
			description,
			COALESCE(partner, ''),
			quantity,
			unit_price,
			amount,
			COALESCE(invoice_line_ref, ''),
			invoiced
		FROM cost_lines
		WHERE `+ownerColumn+` = ?
		ORDER BY sequence, id
	`, ownerID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]CostLineResponse, 0)
	for rows.Next() {
		var line CostLineResponse
		var id uuid.UUID
		err = rows.Scan(
			&id,
			&line.Sequence,
			&line.CostType,
			&line.Category,
			&line.Description,
			&line.Partner,
			&line.Quantity,
			&line.UnitPrice,
			&line.Amount,
			&line.InvoiceLineRef,
			&line.Invoiced,
		)
		if err != nil {
			return nil, err
		}
		line.ID = kernel.UUIDFromGoogle(id)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func optionalUUID(id uuid.NullUUID) *kernel.UUID {
	if !id.Valid {
		return nil
	}
	v := kernel.UUIDFromGoogle(id.UUID)
	return &v
}

func optionalTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
