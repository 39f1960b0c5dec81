package port_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/port"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidPort(t *testing.T) *port.Port {
	t.Helper()
	location, err := kernel.NewGeoPoint(25.0112, 55.0612)
	require.NoError(t, err)

	p, err := port.NewPort(kernel.NewUUID(), "AEJEA", "Jebel Ali", "ae",
		port.Modes{Ocean: true, Land: true},
		port.Details{State: "Dubai", Timezone: "Asia/Dubai", Location: &location})
	require.NoError(t, err)
	return p
}

func TestNewPort(t *testing.T) {
	t.Run("should create active port with normalized country", func(t *testing.T) {
		p := createValidPort(t)

		require.NoError(t, p.Validate())
		assert.Equal(t, "AEJEA", p.Code())
		assert.Equal(t, "Jebel Ali", p.Name())
		assert.Equal(t, kernel.CountryCode("AE"), p.Country())
		assert.True(t, p.IsActive())
		assert.Equal(t, "Asia/Dubai", p.Details().Timezone)
		assert.Equal(t, "[AEJEA] Jebel Ali, AE", p.DisplayName())
	})

	t.Run("should reject port without any transport mode", func(t *testing.T) {
		p, err := port.NewPort(kernel.NewUUID(), "AEJEA", "Jebel Ali", "AE", port.Modes{}, port.Details{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleIsViolated)
	})

	t.Run("any single mode is enough", func(t *testing.T) {
		for _, modes := range []port.Modes{{Air: true}, {Ocean: true}, {Land: true}} {
			_, err := port.NewPort(kernel.NewUUID(), "X1", "Somewhere", "US", modes, port.Details{})
			assert.NoError(t, err)
		}
	})

	t.Run("should join every invalid field", func(t *testing.T) {
		var id kernel.UUID

		p, err := port.NewPort(id, "", "", "", port.Modes{}, port.Details{})

		require.Error(t, err)
		assert.Nil(t, p)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, port.ErrNoTransportMode)
	})

	t.Run("should reject code longer than ten characters", func(t *testing.T) {
		_, err := port.NewPort(kernel.NewUUID(), "AEJEA-PORT-1", "Jebel Ali", "AE", port.Modes{Ocean: true}, port.Details{})

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject unconstructed location", func(t *testing.T) {
		var location kernel.GeoPoint

		_, err := port.NewPort(kernel.NewUUID(), "AEJEA", "Jebel Ali", "AE", port.Modes{Ocean: true},
			port.Details{Location: &location})

		assert.ErrorIs(t, err, kernel.ErrGeoPointIsNotConstructed)
	})
}

func TestRestorePort(t *testing.T) {
	id := kernel.NewUUID()

	p, err := port.RestorePort(id, "SGSIN", "Singapore", "SG", port.Modes{Air: true, Ocean: true}, port.Details{}, false)

	require.NoError(t, err)
	assert.True(t, p.ID().IsEqual(id))
	assert.False(t, p.IsActive())
}

func TestPort_Update(t *testing.T) {
	t.Run("should overwrite attributes", func(t *testing.T) {
		p := createValidPort(t)

		err := p.Update("AEJEA", "Jebel Ali Port", "AE", port.Modes{Ocean: true}, port.Details{Notes: "free zone"})

		require.NoError(t, err)
		assert.Equal(t, "Jebel Ali Port", p.Name())
		assert.False(t, p.Supports(kernel.TransportModeLand))
		assert.Equal(t, "free zone", p.Details().Notes)
		assert.Nil(t, p.Details().Location)
	})

	t.Run("clearing every mode is rejected and leaves the port untouched", func(t *testing.T) {
		p := createValidPort(t)

		err := p.Update("AEJEA", "Renamed", "AE", port.Modes{}, port.Details{})

		require.ErrorIs(t, err, port.ErrNoTransportMode)
		assert.Equal(t, "Jebel Ali", p.Name())
		assert.True(t, p.Supports(kernel.TransportModeOcean))
	})

	t.Run("flipping one flag back on permits the write", func(t *testing.T) {
		p := createValidPort(t)
		require.Error(t, p.SetModes(port.Modes{}))

		require.NoError(t, p.SetModes(port.Modes{Air: true}))
		assert.True(t, p.Supports(kernel.TransportModeAir))
		assert.False(t, p.Supports(kernel.TransportModeOcean))
	})
}

func TestPort_Supports(t *testing.T) {
	p := createValidPort(t)

	assert.False(t, p.Supports(kernel.TransportModeAir))
	assert.True(t, p.Supports(kernel.TransportModeOcean))
	assert.True(t, p.Supports(kernel.TransportModeLand))
	assert.False(t, p.Supports(kernel.TransportMode("rail")))
}

func TestPort_SetActive(t *testing.T) {
	p := createValidPort(t)

	p.SetActive(false)
	assert.False(t, p.IsActive())

	p.SetActive(true)
	assert.True(t, p.IsActive())
}

func TestPort_Validate(t *testing.T) {
	var p port.Port
	assert.ErrorIs(t, p.Validate(), port.ErrPortIsNotConstructed)

	var nilPort *port.Port
	assert.ErrorIs(t, nilPort.Validate(), port.ErrPortIsNotConstructed)
}
