package queries

import (
	"errors"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetSaleOrderQueryIsNotConstructed = errors.New(
	"GetSaleOrderQuery must be created via NewGetSaleOrderQuery constructor",
)

type GetSaleOrderQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSaleOrderQuery(id kernel.UUID) (GetSaleOrderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetSaleOrderQuery{}, err
	}
	return GetSaleOrderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSaleOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetSaleOrderQueryIsNotConstructed)
}

func (q GetSaleOrderQuery) ID() kernel.UUID {
	return q.id
}

type SaleOrderLineResponse struct {
	Product     string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// GetSaleOrderQueryResponse carries Quotation, the action opening the quotation
// the order was generated from.
type GetSaleOrderQueryResponse struct {
	ID        kernel.UUID
	Reference string
	Customer  string
	Currency  string
	Total     decimal.Decimal
	CreatedAt time.Time
	Lines     []SaleOrderLineResponse
	Quotation commands.Action
}
