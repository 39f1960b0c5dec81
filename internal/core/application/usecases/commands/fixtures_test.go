package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/costline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/model/shipment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func newSeaport(t *testing.T, code, name string, country kernel.CountryCode) *port.Port {
	t.Helper()
	p, err := port.NewPort(kernel.NewUUID(), code, name, country, port.Modes{Ocean: true, Land: true}, port.Details{})
	require.NoError(t, err)
	return p
}

func newQuotation(t *testing.T, origin, destination *port.Port) *quotation.Quotation {
	t.Helper()
	q, err := quotation.NewQuotation(kernel.NewUUID(), "FQ/00001", quotation.Terms{
		Customer:      "Acme Trading LLC",
		Origin:        origin.ID(),
		Destination:   destination.ID(),
		Mode:          kernel.TransportModeOcean,
		Direction:     kernel.DirectionExport,
		ServiceType:   kernel.ServiceTypeFCL,
		Cargo:         quotation.Cargo{Description: "Machinery parts", EstimatedWeight: 12000, EstimatedVolume: 30},
		QuotationDate: fixedNow,
		ValidityDate:  fixedNow.AddDate(0, 0, 30),
		Currency:      "USD",
	})
	require.NoError(t, err)
	return q
}

func newLine(t *testing.T, costType costline.Type, category costline.Category, price int64) *costline.CostLine {
	t.Helper()
	line, err := costline.NewCostLine(kernel.NewUUID(), costline.Spec{
		Type:        costType,
		Category:    category,
		Description: string(category) + " charge",
		UnitPrice:   decimal.NewFromInt(price),
	})
	require.NoError(t, err)
	return line
}

func newShipment(t *testing.T, origin, destination *port.Port) *shipment.Shipment {
	t.Helper()
	route, err := shipment.NewRoute(origin, destination, kernel.TransportModeOcean)
	require.NoError(t, err)

	s, err := shipment.NewShipment(kernel.NewUUID(), "FS/00001", shipment.Booking{
		Parties:     shipment.Parties{Customer: "Acme Trading LLC"},
		Route:       route,
		Direction:   kernel.DirectionExport,
		Cargo:       shipment.Cargo{Description: "Machinery parts"},
		BookingDate: fixedNow,
		Currency:    "USD",
	})
	require.NoError(t, err)
	return s
}
