package ports

import "context"

// Sequence codes of the generated documents.
const (
	SequenceQuotation = "freight.quotation"
	SequenceShipment  = "freight.shipment"
	SequenceSaleOrder = "sale.order"
)

// SequenceGenerator hands out document references such as "FQ/00001".
// Numbers are monotonic per code and are drawn inside the caller's transaction,
// so a rolled back command does not consume one.
type SequenceGenerator interface {
	Next(ctx context.Context, code string) (string, error)
}
