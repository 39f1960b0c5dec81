package http

import (
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func actionOf(a commands.Action) Action {
	return Action{Model: a.Model, ID: a.ID.Bytes(), ViewMode: a.ViewMode, Target: a.Target}
}

func optionalAction(a *commands.Action) *Action {
	if a == nil {
		return nil
	}
	v := actionOf(*a)
	return &v
}

func portSummaryOf(p queries.PortSummary) PortSummary {
	return PortSummary{ID: p.ID.Bytes(), DisplayName: p.DisplayName}
}

func costLinesOf(lines []queries.CostLineResponse) []CostLine {
	out := make([]CostLine, len(lines))
	for i, line := range lines {
		out[i] = CostLine{
			ID:             line.ID.Bytes(),
			Sequence:       line.Sequence,
			CostType:       line.CostType,
			Category:       line.Category,
			Description:    line.Description,
			Partner:        line.Partner,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			Amount:         line.Amount,
			InvoiceLineRef: line.InvoiceLineRef,
			Invoiced:       line.Invoiced,
		}
	}
	return out
}

func quotationOf(q queries.GetQuotationQueryResponse) Quotation {
	return Quotation{
		ID:               q.ID.Bytes(),
		Reference:        q.Reference,
		Status:           q.Status,
		Customer:         q.Customer,
		Origin:           portSummaryOf(q.Origin),
		Destination:      portSummaryOf(q.Destination),
		TransportMode:    q.TransportMode,
		Direction:        q.Direction,
		ServiceType:      q.ServiceType,
		CargoDescription: q.CargoDescription,
		EstimatedWeight:  q.EstimatedWeight,
		EstimatedVolume:  q.EstimatedVolume,
		QuotationDate:    openapi_types.Date{Time: q.QuotationDate},
		ValidityDate:     openapi_types.Date{Time: q.ValidityDate},
		Currency:         q.Currency,
		Conditions:       q.Conditions,
		InternalNotes:    q.InternalNotes,
		TotalAmount:      q.TotalAmount,
		CostLines:        costLinesOf(q.CostLines),
		SaleOrder:        optionalAction(q.SaleOrder),
		Shipment:         optionalAction(q.Shipment),
	}
}

func shipmentOf(s queries.GetShipmentQueryResponse) Shipment {
	var containerIDs []openapi_types.UUID
	for _, id := range s.ContainerIDs {
		containerIDs = append(containerIDs, id.Bytes())
	}

	return Shipment{
		ID:                  s.ID.Bytes(),
		Reference:           s.Reference,
		Status:              s.Status,
		Customer:            s.Customer,
		Shipper:             s.Shipper,
		Consignee:           s.Consignee,
		NotifyParty:         s.NotifyParty,
		Origin:              portSummaryOf(s.Origin),
		Destination:         portSummaryOf(s.Destination),
		TransportMode:       s.TransportMode,
		Direction:           s.Direction,
		ServiceType:         s.ServiceType,
		IncotermID:          wireUUID(s.IncotermID),
		CargoDescription:    s.CargoDescription,
		TotalWeight:         s.TotalWeight,
		TotalVolume:         s.TotalVolume,
		Packages:            s.Packages,
		ContainerIDs:        containerIDs,
		AirlineID:           wireUUID(s.AirlineID),
		VesselID:            wireUUID(s.VesselID),
		VoyageFlightNumber:  s.VoyageFlightNumber,
		BookingDate:         s.BookingDate,
		EstimatedDeparture:  s.EstimatedDeparture,
		EstimatedArrival:    s.EstimatedArrival,
		ActualDeparture:     s.ActualDeparture,
		ActualArrival:       s.ActualArrival,
		DeliveryDate:        s.DeliveryDate,
		DaysInTransit:       s.DaysInTransit,
		Currency:            s.Currency,
		SpecialInstructions: s.SpecialInstructions,
		InternalNotes:       s.InternalNotes,
		TotalSellCost:       s.TotalSellCost,
		TotalBuyCost:        s.TotalBuyCost,
		ProfitMargin:        s.ProfitMargin,
		Active:              s.Active,
		CostLines:           costLinesOf(s.CostLines),
	}
}

func saleOrderOf(o queries.GetSaleOrderQueryResponse) SaleOrder {
	lines := make([]SaleOrderLine, len(o.Lines))
	for i, line := range o.Lines {
		lines[i] = SaleOrderLine(line)
	}
	return SaleOrder{
		ID:        o.ID.Bytes(),
		Reference: o.Reference,
		Customer:  o.Customer,
		Currency:  o.Currency,
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Lines:     lines,
		Quotation: actionOf(o.Quotation),
	}
}

func containerIDsOf(ids []openapi_types.UUID) []kernel.UUID {
	out := make([]kernel.UUID, len(ids))
	for i, id := range ids {
		out[i] = kernel.UUIDFromGoogle(id)
	}
	return out
}
