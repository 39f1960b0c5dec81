package shipment

import (
	"fmt"
	"slices"

	"freight/internal/pkg/errs"
)

// Status is the delivery stage of a shipment. Stages advance one step at a time:
//
//	Draft ─> Quotation ─> Booking ─> Documentation ─> Departure ─> InTransit
//	  │                      ▲
//	  └──────────────────────┘
//	─> Arrival ─> Delivery ─> Invoiced ─> Paid
//
// Cancelled is reachable from every stage and Draft from every stage via reset.
type Status string

const (
	StatusDraft         Status = "draft"
	StatusQuotation     Status = "quotation"
	StatusBooking       Status = "booking"
	StatusDocumentation Status = "documentation"
	StatusDeparture     Status = "departure"
	StatusInTransit     Status = "in_transit"
	StatusArrival       Status = "arrival"
	StatusDelivery      Status = "delivery"
	StatusInvoiced      Status = "invoiced"
	StatusPaid          Status = "paid"
	StatusCancelled     Status = "cancelled"
)

func getStatusLabels() map[Status]string {
	return map[Status]string{
		StatusDraft:         "Draft",
		StatusQuotation:     "Quotation",
		StatusBooking:       "Booking",
		StatusDocumentation: "Documentation",
		StatusDeparture:     "Departure",
		StatusInTransit:     "In Transit",
		StatusArrival:       "Arrival",
		StatusDelivery:      "Delivery",
		StatusInvoiced:      "Invoiced",
		StatusPaid:          "Paid",
		StatusCancelled:     "Cancelled",
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid shipment status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

func (s Status) Quote() (Status, error) {
	return s.advance("quote", StatusQuotation, StatusDraft)
}

// ConfirmBooking accepts a draft as well, since most shipments are booked without a quotation stage.
func (s Status) ConfirmBooking() (Status, error) {
	return s.advance("confirm booking", StatusBooking, StatusDraft, StatusQuotation)
}

func (s Status) PrepareDocumentation() (Status, error) {
	return s.advance("prepare documentation", StatusDocumentation, StatusBooking)
}

func (s Status) Depart() (Status, error) {
	return s.advance("depart", StatusDeparture, StatusDocumentation)
}

func (s Status) MarkInTransit() (Status, error) {
	return s.advance("mark in transit", StatusInTransit, StatusDeparture)
}

func (s Status) Arrive() (Status, error) {
	return s.advance("arrive", StatusArrival, StatusInTransit)
}

func (s Status) Deliver() (Status, error) {
	return s.advance("deliver", StatusDelivery, StatusArrival)
}

func (s Status) MarkInvoiced() (Status, error) {
	return s.advance("mark invoiced", StatusInvoiced, StatusDelivery)
}

func (s Status) MarkPaid() (Status, error) {
	return s.advance("mark paid", StatusPaid, StatusInvoiced)
}

func (s Status) advance(action string, to Status, from ...Status) (Status, error) {
	if !slices.Contains(from, s) {
		return "", errs.NewBusinessRuleViolationErrorWithCause(
			"shipment status transition",
			fmt.Errorf("cannot %s a shipment in %s stage", action, s),
		)
	}
	return to, nil
}
