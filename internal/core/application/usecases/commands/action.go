package commands

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

// Model names carried by actions.
const (
	ModelQuotation = "quotation"
	ModelShipment  = "shipment"
	ModelSaleOrder = "sale_order"
)

const (
	ViewModeForm  = "form"
	TargetCurrent = "current"
)

// Action tells the client which record to open after a command, the way a
// button in a form view jumps to the document it produced.
type Action struct {
	Model    string
	ID       kernel.UUID
	ViewMode string
	Target   string
}

// OpenForm points at the form view of one record.
func OpenForm(model string, id kernel.UUID) Action {
	return Action{Model: model, ID: id, ViewMode: ViewModeForm, Target: TargetCurrent}
}

// ConversionResult is returned by commands that may legitimately do nothing.
// OK is false, without error, when the record was not in a state allowing it.
type ConversionResult struct {
	OK     bool
	Action Action
}

// Clock returns the current time. Handlers take one so tests can pin dates.
type Clock func() time.Time

// SystemClock reads the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}
