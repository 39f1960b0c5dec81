package shipment

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const DefaultPackages = 1

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Parties are the partners involved in a shipment, referenced by name.
type Parties struct {
	Customer    string
	Shipper     string
	Consignee   string
	NotifyParty string
}

// Cargo describes what is moved. Packages defaults to one.
type Cargo struct {
	Description  string
	TotalWeight  float64
	TotalVolume  float64
	Packages     int
	ContainerIDs []kernel.UUID
}

// Carrier is the airline or vessel the cargo is booked on.
type Carrier struct {
	AirlineID          *kernel.UUID
	VesselID           *kernel.UUID
	VoyageFlightNumber string
}

// Booking collects every attribute set when a shipment is opened or edited.
type Booking struct {
	Parties             Parties
	Route               Route
	Direction           kernel.Direction
	ServiceType         kernel.ServiceType
	IncotermID          *kernel.UUID
	Cargo               Cargo
	Carrier             Carrier
	BookingDate         time.Time
	EstimatedDeparture  *time.Time
	EstimatedArrival    *time.Time
	Currency            kernel.Currency
	SpecialInstructions string
	InternalNotes       string
}

// Tracking holds the timestamps stamped by lifecycle transitions.
type Tracking struct {
	ActualDeparture *time.Time
	ActualArrival   *time.Time
	DeliveryDate    *time.Time
}

// Shipment is the fulfilment record of a freight movement.
//
// Invariants:
//   - route ports differ and support the route's transport mode (checked by NewRoute)
//   - cargo description and customer are present
//   - sell, buy and margin totals always reflect the owned cost lines
type Shipment struct {
	id        kernel.UUID
	reference string
	status    Status
	booking   Booking
	tracking  Tracking
	lines     costline.Lines
	active    bool
	guard     guard.ConstructorGuard
}

// NewShipment opens a draft shipment.
func NewShipment(id kernel.UUID, reference string, booking Booking) (*Shipment, error) {
	return RestoreShipment(id, reference, StatusDraft, booking, Tracking{}, costline.Lines{}, true)
}

func RestoreShipment(
	id kernel.UUID,
	reference string,
	status Status,
	booking Booking,
	tracking Tracking,
	lines costline.Lines,
	active bool,
) (*Shipment, error) {
	s := &Shipment{
		tracking: tracking,
		lines:    lines,
		active:   active,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setReference(reference),
		s.setStatus(status),
		s.setBooking(booking),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) Reference() string {
	return s.reference
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) Booking() Booking {
	return s.booking
}

func (s *Shipment) Route() Route {
	return s.booking.Route
}

func (s *Shipment) Currency() kernel.Currency {
	return s.booking.Currency
}

func (s *Shipment) Tracking() Tracking {
	return s.tracking
}

func (s *Shipment) IsActive() bool {
	return s.active
}

func (s *Shipment) SetActive(active bool) {
	s.active = active
}

// Update replaces the booking attributes. Nothing changes when any value is rejected.
func (s *Shipment) Update(booking Booking) error {
	next := *s
	if err := next.setBooking(booking); err != nil {
		return err
	}
	*s = next
	return nil
}

// Reroute replaces the route alone.
func (s *Shipment) Reroute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	s.booking.Route = route
	return nil
}

func (s *Shipment) CostLines() []*costline.CostLine {
	return s.lines.All()
}

func (s *Shipment) CostLine(id kernel.UUID) (*costline.CostLine, error) {
	return s.lines.Find(id)
}

func (s *Shipment) AddCostLine(line *costline.CostLine) error {
	return s.lines.Add(line)
}

func (s *Shipment) RemoveCostLine(id kernel.UUID) error {
	return s.lines.Remove(id)
}

func (s *Shipment) TotalSellCost() decimal.Decimal {
	return s.lines.TotalOf(costline.TypeSell)
}

func (s *Shipment) TotalBuyCost() decimal.Decimal {
	return s.lines.TotalOf(costline.TypeBuy)
}

// ProfitMargin is sell minus buy.
func (s *Shipment) ProfitMargin() decimal.Decimal {
	return s.TotalSellCost().Sub(s.TotalBuyCost())
}

// DaysInTransit counts whole days between actual departure and arrival, zero when
// either is missing.
func (s *Shipment) DaysInTransit() int {
	if s.tracking.ActualDeparture == nil || s.tracking.ActualArrival == nil {
		return 0
	}
	return TransitDays(*s.tracking.ActualDeparture, *s.tracking.ActualArrival)
}

// TransitDays rounds partial days down, so an arrival stamped before a later
// departure (after a reset) gives a negative count.
func TransitDays(departure, arrival time.Time) int {
	return int(math.Floor(arrival.Sub(departure).Hours() / 24))
}

func (s *Shipment) Quote() error {
	return s.transition(s.status.Quote)
}

func (s *Shipment) ConfirmBooking() error {
	return s.transition(s.status.ConfirmBooking)
}

func (s *Shipment) PrepareDocumentation() error {
	return s.transition(s.status.PrepareDocumentation)
}

// Depart stamps the actual departure.
func (s *Shipment) Depart(now time.Time) error {
	if err := s.transition(s.status.Depart); err != nil {
		return err
	}
	s.tracking.ActualDeparture = &now
	return nil
}

func (s *Shipment) MarkInTransit() error {
	return s.transition(s.status.MarkInTransit)
}

// Arrive stamps the actual arrival.
func (s *Shipment) Arrive(now time.Time) error {
	if err := s.transition(s.status.Arrive); err != nil {
		return err
	}
	s.tracking.ActualArrival = &now
	return nil
}

// Deliver stamps the delivery date.
func (s *Shipment) Deliver(now time.Time) error {
	if err := s.transition(s.status.Deliver); err != nil {
		return err
	}
	s.tracking.DeliveryDate = &now
	return nil
}

func (s *Shipment) MarkInvoiced() error {
	return s.transition(s.status.MarkInvoiced)
}

func (s *Shipment) MarkPaid() error {
	return s.transition(s.status.MarkPaid)
}

func (s *Shipment) Cancel() {
	s.status = StatusCancelled
}

// ResetToDraft reopens the shipment. Reference, cost lines and stamped dates are kept.
func (s *Shipment) ResetToDraft() {
	s.status = StatusDraft
}

// Apply runs the lifecycle operation named by action at time now.
func (s *Shipment) Apply(action Action, now time.Time) error {
	switch action {
	case ActionQuote:
		return s.Quote()
	case ActionConfirmBooking:
		return s.ConfirmBooking()
	case ActionPrepareDocumentation:
		return s.PrepareDocumentation()
	case ActionDepart:
		return s.Depart(now)
	case ActionMarkInTransit:
		return s.MarkInTransit()
	case ActionArrive:
		return s.Arrive(now)
	case ActionDeliver:
		return s.Deliver(now)
	case ActionMarkInvoiced:
		return s.MarkInvoiced()
	case ActionMarkPaid:
		return s.MarkPaid()
	case ActionCancel:
		s.Cancel()
		return nil
	case ActionResetToDraft:
		s.ResetToDraft()
		return nil
	default:
		_, err := ParseAction(string(action))
		return err
	}
}

func (s *Shipment) transition(step func() (Status, error)) error {
	next, err := step()
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	s.reference = reference
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setBooking(b Booking) error {
	b.Parties.Customer = strings.TrimSpace(b.Parties.Customer)
	b.Cargo.Description = strings.TrimSpace(b.Cargo.Description)
	b.Cargo.ContainerIDs = slices.Clone(b.Cargo.ContainerIDs)
	if b.Cargo.Packages == 0 {
		b.Cargo.Packages = DefaultPackages
	}

	var errCustomer, errCargo, errCurrency, errCarrier error
	if b.Parties.Customer == "" {
		errCustomer = errs.NewValueIsRequiredError("customer")
	}
	if b.Cargo.Description == "" {
		errCargo = errs.NewValueIsRequiredError("cargo description")
	}
	if b.Currency, errCurrency = kernel.NewCurrency(b.Currency.String()); errCurrency != nil {
		b.Currency = ""
	}
	for _, id := range []*kernel.UUID{b.IncotermID, b.Carrier.AirlineID, b.Carrier.VesselID} {
		if id != nil {
			errCarrier = errors.Join(errCarrier, id.Validate())
		}
	}
	for _, id := range b.Cargo.ContainerIDs {
		errCarrier = errors.Join(errCarrier, id.Validate())
	}

	if err := errors.Join(
		errCustomer,
		errCargo,
		errCurrency,
		errCarrier,
		b.Route.Validate(),
		b.Direction.Validate(),
		b.ServiceType.Validate(),
		nonNegative("total weight", b.Cargo.TotalWeight),
		nonNegative("total volume", b.Cargo.TotalVolume),
		nonNegative("number of packages", float64(b.Cargo.Packages)),
	); err != nil {
		return err
	}

	s.booking = b
	return nil
}

func nonNegative(param string, v float64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v must not be negative", v))
	}
	return nil
}
