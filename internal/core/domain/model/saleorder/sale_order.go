package saleorder

import (
	"errors"
	"strings"
	"time"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSaleOrderIsNotConstructed = errors.New("SaleOrder must be created via NewSaleOrder or RestoreSaleOrder")

// Line is one product line of a sale order. The product is the cost category.
type Line struct {
	Product     costline.Category
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// Subtotal is quantity × unit price rounded to cents, like a cost line amount.
func (l Line) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Round(kernel.MoneyPlaces)
}

func (l Line) validate() error {
	var errDescription error
	if strings.TrimSpace(l.Description) == "" {
		errDescription = errs.NewValueIsRequiredError("sale order line description")
	}
	var errQuantity error
	if l.Quantity.IsNegative() {
		errQuantity = errs.NewValueIsInvalidError("sale order line quantity")
	}
	return errors.Join(l.Product.Validate(), errDescription, errQuantity)
}

type SaleOrder struct {
	id          kernel.UUID
	reference   string
	quotationID kernel.UUID
	customer    string
	currency    kernel.Currency
	lines       []Line
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

func NewSaleOrder(
	id kernel.UUID,
	reference string,
	quotationID kernel.UUID,
	customer string,
	currency kernel.Currency,
	lines []Line,
	createdAt time.Time,
) (*SaleOrder, error) {
	return RestoreSaleOrder(id, reference, quotationID, customer, currency, lines, createdAt)
}

func RestoreSaleOrder(
	id kernel.UUID,
	reference string,
	quotationID kernel.UUID,
	customer string,
	currency kernel.Currency,
	lines []Line,
	createdAt time.Time,
) (*SaleOrder, error) {
	reference = strings.TrimSpace(reference)
	customer = strings.TrimSpace(customer)

	var errReference, errCustomer, errLines error
	if reference == "" {
		errReference = errs.NewValueIsRequiredError("reference")
	}
	if customer == "" {
		errCustomer = errs.NewValueIsRequiredError("customer")
	}
	for _, l := range lines {
		errLines = errors.Join(errLines, l.validate())
	}
	currency, errCurrency := kernel.NewCurrency(currency.String())

	if err := errors.Join(
		id.Validate(),
		quotationID.Validate(),
		errReference,
		errCustomer,
		errCurrency,
		errLines,
	); err != nil {
		return nil, err
	}

	return &SaleOrder{
		id:          id,
		reference:   reference,
		quotationID: quotationID,
		customer:    customer,
		currency:    currency,
		lines:       append([]Line(nil), lines...),
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (o *SaleOrder) Validate() error {
	if o == nil {
		return ErrSaleOrderIsNotConstructed
	}
	return o.guard.Validate(ErrSaleOrderIsNotConstructed)
}

func (o *SaleOrder) ID() kernel.UUID {
	return o.id
}

func (o *SaleOrder) Reference() string {
	return o.reference
}

func (o *SaleOrder) QuotationID() kernel.UUID {
	return o.quotationID
}

func (o *SaleOrder) Customer() string {
	return o.customer
}

func (o *SaleOrder) Currency() kernel.Currency {
	return o.currency
}

func (o *SaleOrder) Lines() []Line {
	return append([]Line(nil), o.lines...)
}

func (o *SaleOrder) CreatedAt() time.Time {
	return o.createdAt
}

func (o *SaleOrder) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
