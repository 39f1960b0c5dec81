package quotation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuotationIsNotConstructed = errors.New("Quotation must be created via NewQuotation or RestoreQuotation")

	// ErrNoCostLines is returned by Confirm on a quotation without any cost line.
	ErrNoCostLines = errs.NewBusinessRuleViolationError("quotation needs at least one cost line to be confirmed")

	// ErrShipmentNotAllowed is returned by LinkShipment unless the quotation is
	// confirmed and not converted yet.
	ErrShipmentNotAllowed = errs.NewBusinessRuleViolationError(
		"shipment can only be created from a confirmed quotation without shipment")

	// ErrQuotationIsClosed is returned by Update once the quotation is no longer draft or sent.
	ErrQuotationIsClosed = errs.NewBusinessRuleViolationError("only draft or sent quotations can be edited")
)

// Cargo describes the goods being quoted.
type Cargo struct {
	Description     string
	EstimatedWeight float64
	EstimatedVolume float64
}

// Terms collects the header fields of a quotation.
type Terms struct {
	Customer      string
	Origin        kernel.UUID
	Destination   kernel.UUID
	Mode          kernel.TransportMode
	Direction     kernel.Direction
	ServiceType   kernel.ServiceType
	Cargo         Cargo
	QuotationDate time.Time
	ValidityDate  time.Time
	Currency      kernel.Currency
	Conditions    string
	InternalNotes string
}

// Quotation is a priced proposal for moving cargo between two ports.
//
// Invariants:
//   - reference is set once at creation and never changes
//   - total amount is the sum of the owned cost lines
//   - a sale order exists only after a confirmation, a shipment only after a conversion
type Quotation struct {
	id          kernel.UUID
	reference   string
	status      Status
	terms       Terms
	lines       costline.Lines
	shipmentID  *kernel.UUID
	saleOrderID *kernel.UUID
	guard       guard.ConstructorGuard
}

// NewQuotation creates a draft quotation.
func NewQuotation(id kernel.UUID, reference string, terms Terms) (*Quotation, error) {
	return RestoreQuotation(id, reference, Draft, terms, costline.Lines{}, nil, nil)
}

func RestoreQuotation(
	id kernel.UUID,
	reference string,
	status Status,
	terms Terms,
	lines costline.Lines,
	shipmentID *kernel.UUID,
	saleOrderID *kernel.UUID,
) (*Quotation, error) {
	q := &Quotation{
		lines:       lines,
		shipmentID:  shipmentID,
		saleOrderID: saleOrderID,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setID(id),
		q.setReference(reference),
		q.setStatus(status),
		q.setTerms(terms),
	); err != nil {
		return nil, err
	}

	return q, nil
}

func (q *Quotation) Validate() error {
	if q == nil {
		return ErrQuotationIsNotConstructed
	}
	return q.guard.Validate(ErrQuotationIsNotConstructed)
}

func (q *Quotation) IsEqual(other *Quotation) bool {
	return other != nil && q.id.IsEqual(other.id)
}

func (q *Quotation) ID() kernel.UUID {
	return q.id
}

func (q *Quotation) Reference() string {
	return q.reference
}

func (q *Quotation) Status() Status {
	return q.status
}

func (q *Quotation) Terms() Terms {
	return q.terms
}

func (q *Quotation) Customer() string {
	return q.terms.Customer
}

func (q *Quotation) Currency() kernel.Currency {
	return q.terms.Currency
}

// ShipmentID is nil until the quotation is converted.
func (q *Quotation) ShipmentID() *kernel.UUID {
	return q.shipmentID
}

// SaleOrderID is nil until the quotation is confirmed.
func (q *Quotation) SaleOrderID() *kernel.UUID {
	return q.saleOrderID
}

func (q *Quotation) CostLines() []*costline.CostLine {
	return q.lines.All()
}

func (q *Quotation) CostLine(id kernel.UUID) (*costline.CostLine, error) {
	return q.lines.Find(id)
}

func (q *Quotation) AddCostLine(line *costline.CostLine) error {
	return q.lines.Add(line)
}

func (q *Quotation) RemoveCostLine(id kernel.UUID) error {
	return q.lines.Remove(id)
}

// Update replaces the header terms of an open quotation. Nothing changes when
// any value is rejected.
func (q *Quotation) Update(terms Terms) error {
	if !q.status.IsOpen() {
		return ErrQuotationIsClosed
	}
	next := *q
	if err := next.setTerms(terms); err != nil {
		return err
	}
	*q = next
	return nil
}

// TotalAmount sums every cost line, whatever its type.
func (q *Quotation) TotalAmount() decimal.Decimal {
	return q.lines.Total()
}

// Send marks the quotation as sent to the customer.
func (q *Quotation) Send() error {
	next, err := q.status.Send()
	if err != nil {
		return err
	}
	q.status = next
	return nil
}

// ValidateConfirm reports why Confirm would fail, without side effects.
func (q *Quotation) ValidateConfirm() error {
	if _, err := q.status.Confirm(); err != nil {
		return err
	}
	if q.lines.Len() == 0 {
		return ErrNoCostLines
	}
	return nil
}

// Confirm records the sale order generated for this quotation and marks it confirmed.
// A quotation confirmed again after a reset points at the latest sale order.
func (q *Quotation) Confirm(saleOrderID kernel.UUID) error {
	if err := errors.Join(q.ValidateConfirm(), saleOrderID.Validate()); err != nil {
		return err
	}
	next, err := q.status.Confirm()
	if err != nil {
		return err
	}
	q.status = next
	q.saleOrderID = &saleOrderID
	return nil
}

// CanCreateShipment reports whether a conversion is possible right now.
func (q *Quotation) CanCreateShipment() bool {
	return q.status == Confirmed && q.shipmentID == nil
}

func (q *Quotation) LinkShipment(shipmentID kernel.UUID) error {
	if !q.CanCreateShipment() {
		return ErrShipmentNotAllowed
	}
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	q.shipmentID = &shipmentID
	return nil
}

func (q *Quotation) Expire() {
	q.status = Expired
}

func (q *Quotation) Cancel() {
	q.status = Cancelled
}

// ResetToDraft reopens the quotation. Existing sale order and shipment links are kept.
func (q *Quotation) ResetToDraft() {
	q.status = Draft
}

// IsOverdue reports whether an open quotation passed its validity date before asOf.
func (q *Quotation) IsOverdue(asOf time.Time) bool {
	return q.status.IsOpen() && q.terms.ValidityDate.Before(DateOf(asOf))
}

// DateOf truncates t to its calendar date in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (q *Quotation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quotation) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	q.reference = reference
	return nil
}

func (q *Quotation) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

func (q *Quotation) setTerms(t Terms) error {
	t.Customer = strings.TrimSpace(t.Customer)
	t.Cargo.Description = strings.TrimSpace(t.Cargo.Description)

	var errCustomer, errDates, errCurrency error
	if t.Customer == "" {
		errCustomer = errs.NewValueIsRequiredError("customer")
	}
	if t.QuotationDate.IsZero() || t.ValidityDate.IsZero() {
		errDates = errs.NewValueIsRequiredError("quotation and validity dates")
	} else {
		t.QuotationDate = DateOf(t.QuotationDate)
		t.ValidityDate = DateOf(t.ValidityDate)
		if t.ValidityDate.Before(t.QuotationDate) {
			errDates = errs.NewValueIsInvalidErrorWithCause("validity date",
				fmt.Errorf("%s is before the quotation date", t.ValidityDate.Format(time.DateOnly)))
		}
	}
	if t.Currency, errCurrency = kernel.NewCurrency(t.Currency.String()); errCurrency != nil {
		t.Currency = ""
	}

	if err := errors.Join(
		errCustomer,
		t.Origin.Validate(),
		t.Destination.Validate(),
		t.Mode.Validate(),
		t.Direction.Validate(),
		t.ServiceType.Validate(),
		nonNegative("estimated weight", t.Cargo.EstimatedWeight),
		nonNegative("estimated volume", t.Cargo.EstimatedVolume),
		errDates,
		errCurrency,
	); err != nil {
		return err
	}

	q.terms = t
	return nil
}

func nonNegative(param string, v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v must not be negative", v))
	}
	return nil
}
