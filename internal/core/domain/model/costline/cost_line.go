package costline

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const DefaultSequence = 10

var (
	ErrCostLineIsNotConstructed = errors.New("CostLine must be created via NewCostLine or RestoreCostLine")

	ErrAlreadyInvoiced = errs.NewBusinessRuleViolationError("cost line is already linked to another invoice line")
)

// Type says who the line is charged to: the customer (sell) or paid to a vendor (buy).
type Type string

const (
	TypeSell Type = "sell"
	TypeBuy  Type = "buy"
)

func (t Type) Validate() error {
	if t != TypeSell && t != TypeBuy {
		return errs.NewValueIsInvalidErrorWithCause("cost type", fmt.Errorf("%q is neither sell nor buy", string(t)))
	}
	return nil
}

// Spec carries the writable attributes of a cost line. A Quantity that is not
// Valid defaults to one.
type Spec struct {
	Sequence    int
	Type        Type
	Category    Category
	Description string
	Partner     string
	Quantity    decimal.NullDecimal
	UnitPrice   decimal.Decimal
}

// CostLine is one charge on a quotation or a shipment. Unit price is kept in
// cents and quantity in four places; amount is always quantity × unit price
// rounded to cents. A line is invoiced once it is linked to an invoice line
// reference and stays invoiced.
type CostLine struct {
	id             kernel.UUID
	sequence       int
	costType       Type
	category       Category
	description    string
	partner        string
	quantity       decimal.Decimal
	unitPrice      decimal.Decimal
	amount         decimal.Decimal
	invoiceLineRef string
	guard          guard.ConstructorGuard
}

func NewCostLine(id kernel.UUID, spec Spec) (*CostLine, error) {
	return RestoreCostLine(id, spec, "")
}

// RestoreCostLine rebuilds a stored line. The amount is recomputed, never read back.
func RestoreCostLine(id kernel.UUID, spec Spec, invoiceLineRef string) (*CostLine, error) {
	line := &CostLine{
		sequence:       spec.Sequence,
		partner:        strings.TrimSpace(spec.Partner),
		invoiceLineRef: strings.TrimSpace(invoiceLineRef),
		guard:          guard.NewConstructorGuard(),
	}
	if line.sequence == 0 {
		line.sequence = DefaultSequence
	}

	quantity := decimal.NewFromInt(1)
	if spec.Quantity.Valid {
		quantity = spec.Quantity.Decimal
	}

	if err := errors.Join(
		line.setID(id),
		line.setType(spec.Type),
		line.setCategory(spec.Category),
		line.SetDescription(spec.Description),
		line.SetQuantity(quantity),
		line.SetUnitPrice(spec.UnitPrice),
	); err != nil {
		return nil, err
	}

	return line, nil
}

func (l *CostLine) Validate() error {
	if l == nil {
		return ErrCostLineIsNotConstructed
	}
	return l.guard.Validate(ErrCostLineIsNotConstructed)
}

func (l *CostLine) ID() kernel.UUID {
	return l.id
}

func (l *CostLine) Sequence() int {
	return l.sequence
}

func (l *CostLine) Type() Type {
	return l.costType
}

func (l *CostLine) Category() Category {
	return l.category
}

func (l *CostLine) Description() string {
	return l.description
}

// Partner is the vendor of a buy line or the customer of a sell line.
func (l *CostLine) Partner() string {
	return l.partner
}

func (l *CostLine) Quantity() decimal.Decimal {
	return l.quantity
}

func (l *CostLine) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

func (l *CostLine) Amount() decimal.Decimal {
	return l.amount
}

func (l *CostLine) InvoiceLineRef() string {
	return l.invoiceLineRef
}

func (l *CostLine) Invoiced() bool {
	return l.invoiceLineRef != ""
}

// Spec returns the line's writable attributes, e.g. to copy it onto another parent.
func (l *CostLine) Spec() Spec {
	return Spec{
		Sequence:    l.sequence,
		Type:        l.costType,
		Category:    l.category,
		Description: l.description,
		Partner:     l.partner,
		Quantity:    decimal.NewNullDecimal(l.quantity),
		UnitPrice:   l.unitPrice,
	}
}

func (l *CostLine) SetQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%s must not be negative", quantity))
	}
	l.quantity = quantity.Round(kernel.QuantityPlaces)
	l.recompute()
	return nil
}

// SetUnitPrice accepts negative prices, which is how discounts are booked.
func (l *CostLine) SetUnitPrice(price decimal.Decimal) error {
	l.unitPrice = price.Round(kernel.MoneyPlaces)
	l.recompute()
	return nil
}

func (l *CostLine) SetDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	l.description = description
	return nil
}

func (l *CostLine) SetPartner(partner string) {
	l.partner = strings.TrimSpace(partner)
}

// LinkInvoiceLine marks the line as invoiced. Linking the same reference again is a
// no-op; linking a different one fails with ErrAlreadyInvoiced.
func (l *CostLine) LinkInvoiceLine(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("invoice line reference")
	}
	if l.invoiceLineRef != "" && l.invoiceLineRef != ref {
		return ErrAlreadyInvoiced
	}
	l.invoiceLineRef = ref
	return nil
}

func (l *CostLine) recompute() {
	l.amount = l.quantity.Mul(l.unitPrice).Round(kernel.MoneyPlaces)
}

func (l *CostLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *CostLine) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	l.costType = t
	return nil
}

func (l *CostLine) setCategory(c Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	l.category = c
	return nil
}
