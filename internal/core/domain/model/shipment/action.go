package shipment

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Action is a named lifecycle operation, as triggered from the API.
type Action string

const (
	ActionQuote                Action = "quote"
	ActionConfirmBooking       Action = "confirm_booking"
	ActionPrepareDocumentation Action = "prepare_documentation"
	ActionDepart               Action = "depart"
	ActionMarkInTransit        Action = "mark_in_transit"
	ActionArrive               Action = "arrive"
	ActionDeliver              Action = "deliver"
	ActionMarkInvoiced         Action = "mark_invoiced"
	ActionMarkPaid             Action = "mark_paid"
	ActionCancel               Action = "cancel"
	ActionResetToDraft         Action = "reset_to_draft"
)

func Actions() []Action {
	return []Action{
		ActionQuote, ActionConfirmBooking, ActionPrepareDocumentation, ActionDepart,
		ActionMarkInTransit, ActionArrive, ActionDeliver, ActionMarkInvoiced,
		ActionMarkPaid, ActionCancel, ActionResetToDraft,
	}
}

func ParseAction(s string) (Action, error) {
	for _, a := range Actions() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", errs.NewValueIsInvalidErrorWithCause("shipment action", fmt.Errorf("%q is not a shipment action", s))
}
