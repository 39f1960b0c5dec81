package shipment_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	dubai := newPort(t, "DXB", port.Modes{Air: true, Land: true})
	jebelAli := newPort(t, "AEJEA", port.Modes{Ocean: true, Land: true})
	rotterdam := newPort(t, "NLRTM", port.Modes{Ocean: true})

	t.Run("accepts ports supporting the mode", func(t *testing.T) {
		route, err := shipment.NewRoute(jebelAli, rotterdam, kernel.TransportModeOcean)

		require.NoError(t, err)
		require.NoError(t, route.Validate())
		assert.True(t, route.Origin().IsEqual(jebelAli.ID()))
		assert.True(t, route.Destination().IsEqual(rotterdam.ID()))
		assert.Equal(t, kernel.TransportModeOcean, route.Mode())
	})

	t.Run("rejects identical ports whatever the mode", func(t *testing.T) {
		for _, mode := range []kernel.TransportMode{kernel.TransportModeAir, kernel.TransportModeOcean, kernel.TransportModeLand} {
			_, err := shipment.NewRoute(jebelAli, jebelAli, mode)
			assert.ErrorIs(t, err, shipment.ErrSamePorts)
		}
	})

	t.Run("rejects a port lacking the mode", func(t *testing.T) {
		_, err := shipment.NewRoute(dubai, rotterdam, kernel.TransportModeOcean)

		require.ErrorIs(t, err, errs.ErrBusinessRuleIsViolated)
		assert.Contains(t, err.Error(), "DXB")
		assert.NotContains(t, err.Error(), "NLRTM")
	})

	t.Run("land route between capable ports", func(t *testing.T) {
		_, err := shipment.NewRoute(dubai, jebelAli, kernel.TransportModeLand)

		assert.NoError(t, err)
	})

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := shipment.NewRoute(jebelAli, rotterdam, "rail")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreRoute(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	route, err := shipment.RestoreRoute(a, b, kernel.TransportModeAir)
	require.NoError(t, err)
	assert.True(t, route.Origin().IsEqual(a))

	_, err = shipment.RestoreRoute(a, a, kernel.TransportModeAir)
	assert.ErrorIs(t, err, shipment.ErrSamePorts)

	var zero shipment.Route
	assert.ErrorIs(t, zero.Validate(), shipment.ErrRouteIsNotConstructed)
}
