package quotation

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Status is the lifecycle state of a quotation.
//
//	Draft ──> Sent ──> Confirmed
//	  │        │           │
//	  └────────┴───────────┴──> Expired | Cancelled
//
// Confirmed, Expired and Cancelled return to Draft through ResetToDraft.
type Status string

const (
	Draft     Status = "draft"
	Sent      Status = "sent"
	Confirmed Status = "confirmed"
	Expired   Status = "expired"
	Cancelled Status = "cancelled"
)

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Draft:     "Draft",
		Sent:      "Sent",
		Confirmed: "Confirmed",
		Expired:   "Expired",
		Cancelled: "Cancelled",
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
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid quotation status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// Label is the name shown to users.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}

// IsOpen reports whether the quotation is still waiting for the customer.
func (s Status) IsOpen() bool {
	return s == Draft || s == Sent
}

// Send moves a draft (or an already sent quotation) to Sent.
func (s Status) Send() (Status, error) {
	if !s.IsOpen() {
		return "", errs.NewBusinessRuleViolationErrorWithCause(
			"quotation status transition",
			fmt.Errorf("%s quotation cannot be sent", s),
		)
	}
	return Sent, nil
}

// Confirm moves an open quotation to Confirmed.
func (s Status) Confirm() (Status, error) {
	if !s.IsOpen() {
		return "", errs.NewBusinessRuleViolationErrorWithCause(
			"quotation status transition",
			fmt.Errorf("%s quotation cannot be confirmed", s),
		)
	}
	return Confirmed, nil
}
