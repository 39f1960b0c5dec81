package services

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/model/saleorder"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// QuotationConverter derives the documents a quotation spawns during its workflow.
//
// Business rules:
//   - A sale order carries one line per sell cost line of the quotation
//   - A shipment is only created from a confirmed quotation without shipment
//   - Every quotation cost line is copied to the shipment as a sell line charged
//     to the quotation's customer
//
// Example usage:
//
//	converter := NewQuotationConverter()
//	order, err := converter.Confirm(q, kernel.NewUUID(), "SO/00001", time.Now())
//	if err != nil {
//	    return err
//	}
//	s, ok, err := converter.CreateShipment(q, origin, destination, kernel.NewUUID(), "FS/00001", time.Now())
type QuotationConverter struct{}

func NewQuotationConverter() QuotationConverter {
	return QuotationConverter{}
}

// Confirm builds the sale order for q and marks q confirmed. q is left untouched
// when any step fails.
func (c QuotationConverter) Confirm(
	q *quotation.Quotation,
	saleOrderID kernel.UUID,
	reference string,
	now time.Time,
) (*saleorder.SaleOrder, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if err := q.ValidateConfirm(); err != nil {
		return nil, err
	}

	var lines []saleorder.Line
	for _, l := range q.CostLines() {
		if l.Type() != costline.TypeSell {
			continue
		}
		lines = append(lines, saleorder.Line{
			Product:     l.Category(),
			Description: l.Description(),
			Quantity:    l.Quantity(),
			UnitPrice:   l.UnitPrice(),
		})
	}

	order, err := saleorder.NewSaleOrder(saleOrderID, reference, q.ID(), q.Customer(), q.Currency(), lines, now)
	if err != nil {
		return nil, err
	}

	if err := q.Confirm(order.ID()); err != nil {
		return nil, err
	}
	return order, nil
}

// CreateShipment converts a confirmed quotation into a booked shipment. It returns
// ok == false without error when q cannot be converted in its current state.
func (c QuotationConverter) CreateShipment(
	q *quotation.Quotation,
	origin, destination *port.Port,
	shipmentID kernel.UUID,
	reference string,
	now time.Time,
) (*shipment.Shipment, bool, error) {
	if err := q.Validate(); err != nil {
		return nil, false, err
	}
	if !q.CanCreateShipment() {
		return nil, false, nil
	}

	terms := q.Terms()
	if !origin.ID().IsEqual(terms.Origin) || !destination.ID().IsEqual(terms.Destination) {
		return nil, false, errs.NewValueIsInvalidErrorWithCause("shipment ports",
			errors.New("origin and destination must be the quotation ports"))
	}

	route, err := shipment.NewRoute(origin, destination, terms.Mode)
	if err != nil {
		return nil, false, err
	}

	s, err := shipment.NewShipment(shipmentID, reference, shipment.Booking{
		Parties:     shipment.Parties{Customer: terms.Customer},
		Route:       route,
		Direction:   terms.Direction,
		ServiceType: terms.ServiceType,
		Cargo: shipment.Cargo{
			Description: terms.Cargo.Description,
			TotalWeight: terms.Cargo.EstimatedWeight,
			TotalVolume: terms.Cargo.EstimatedVolume,
		},
		BookingDate: now,
		Currency:    terms.Currency,
	})
	if err != nil {
		return nil, false, err
	}
	if err := s.ConfirmBooking(); err != nil {
		return nil, false, err
	}

	for _, l := range q.CostLines() {
		spec := l.Spec()
		spec.Type = costline.TypeSell
		spec.Partner = terms.Customer

		copied, err := costline.NewCostLine(kernel.NewUUID(), spec)
		if err != nil {
			return nil, false, err
		}
		if err := s.AddCostLine(copied); err != nil {
			return nil, false, err
		}
	}

	if err := q.LinkShipment(s.ID()); err != nil {
		return nil, false, err
	}
	return s, true, nil
}
