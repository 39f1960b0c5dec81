package shipment_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/require"
)

func newPort(t *testing.T, code string, modes port.Modes) *port.Port {
	t.Helper()
	p, err := port.NewPort(kernel.NewUUID(), code, code+" Port", "AE", modes, port.Details{})
	require.NoError(t, err)
	return p
}

func oceanRoute(t *testing.T) shipment.Route {
	t.Helper()
	route, err := shipment.NewRoute(
		newPort(t, "AEJEA", port.Modes{Ocean: true}),
		newPort(t, "NLRTM", port.Modes{Ocean: true, Land: true}),
		kernel.TransportModeOcean,
	)
	require.NoError(t, err)
	return route
}

func validBooking(t *testing.T) shipment.Booking {
	t.Helper()
	return shipment.Booking{
		Parties:   shipment.Parties{Customer: "Acme Trading LLC", Consignee: "Acme BV"},
		Route:     oceanRoute(t),
		Direction: kernel.DirectionExport,
		Cargo:     shipment.Cargo{Description: "Machinery parts", TotalWeight: 12000},
		Currency:  "USD",
	}
}

func createDraft(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(kernel.NewUUID(), "FS/00001", validBooking(t))
	require.NoError(t, err)
	return s
}
