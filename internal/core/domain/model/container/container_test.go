package container_test

import (
	"testing"

	"freight/internal/core/domain/model/container"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBox(t *testing.T, d container.Details) *container.Container {
	t.Helper()
	c, err := container.NewContainer(kernel.NewUUID(), "BOX1", "Carton", d)
	require.NoError(t, err)
	return c
}

func TestNewContainer_Volume(t *testing.T) {
	t.Run("volume is computed from dimensions", func(t *testing.T) {
		c := newBox(t, container.Details{Internal: container.Dimensions{Length: 2, Width: 3, Height: 4}})

		assert.InDelta(t, 24.0, c.Volume(), 1e-9)
	})

	t.Run("a matching volume is accepted", func(t *testing.T) {
		c := newBox(t, container.Details{
			Internal: container.Dimensions{Length: 2, Width: 3, Height: 4},
			Volume:   24,
		})

		assert.InDelta(t, 24.0, c.Volume(), 1e-9)
	})

	t.Run("a conflicting volume is rejected", func(t *testing.T) {
		_, err := container.NewContainer(kernel.NewUUID(), "BOX1", "Carton", container.Details{
			Internal: container.Dimensions{Length: 2, Width: 3, Height: 4},
			Volume:   30,
		})

		assert.ErrorIs(t, err, container.ErrVolumeIsDerived)
	})

	t.Run("manual volume is kept while a dimension is missing", func(t *testing.T) {
		c := newBox(t, container.Details{Internal: container.Dimensions{Length: 2, Width: 3}, Volume: 5.5})

		assert.InDelta(t, 5.5, c.Volume(), 1e-9)
	})

	t.Run("negative dimensions are rejected", func(t *testing.T) {
		_, err := container.NewContainer(kernel.NewUUID(), "BOX1", "Carton", container.Details{
			Internal: container.Dimensions{Length: -1, Width: 3, Height: 4},
			External: container.Dimensions{Height: -2},
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "length")
		assert.Contains(t, err.Error(), "external height")
	})
}

func TestContainer_Update_Volume(t *testing.T) {
	t.Run("changed dimensions recompute the volume over the echoed one", func(t *testing.T) {
		c := newBox(t, container.Details{Internal: container.Dimensions{Length: 2, Width: 3, Height: 4}})
		details := c.Details()
		details.Internal.Height = 5

		require.NoError(t, c.Update("BOX1", "Carton", details))

		assert.InDelta(t, 30.0, c.Volume(), 1e-9)
	})

	t.Run("a different volume with unchanged dimensions is rejected", func(t *testing.T) {
		c := newBox(t, container.Details{Internal: container.Dimensions{Length: 2, Width: 3, Height: 4}})
		details := c.Details()
		details.Volume = 10

		err := c.Update("BOX1", "Carton", details)

		require.ErrorIs(t, err, container.ErrVolumeIsDerived)
		assert.InDelta(t, 24.0, c.Volume(), 1e-9)
	})

	t.Run("manual volume is writable while a dimension is missing", func(t *testing.T) {
		c := newBox(t, container.Details{Volume: 7})

		require.NoError(t, c.Update("BOX1", "Carton", container.Details{Volume: 12.5}))
		assert.InDelta(t, 12.5, c.Volume(), 1e-9)
	})

	t.Run("completed dimensions replace a manual volume", func(t *testing.T) {
		c := newBox(t, container.Details{Volume: 7})
		details := c.Details()
		details.Internal = container.Dimensions{Length: 1, Width: 2, Height: 3}

		require.NoError(t, c.Update("BOX1", "Carton", details))
		assert.InDelta(t, 6.0, c.Volume(), 1e-9)
	})

	t.Run("rejected dimensions keep the previous state", func(t *testing.T) {
		c := newBox(t, container.Details{Internal: container.Dimensions{Length: 2, Width: 3, Height: 4}})

		require.Error(t, c.Update("BOX1", "Carton", container.Details{Internal: container.Dimensions{Length: -1}}))
		assert.InDelta(t, 24.0, c.Volume(), 1e-9)
	})
}

func TestContainer_DisplayName(t *testing.T) {
	sized, err := container.NewContainer(kernel.NewUUID(), "20DC", "20ft Dry Container", container.Details{Size: 20, Volume: 33.2})
	require.NoError(t, err)
	assert.Equal(t, "[20DC] 20ft Dry Container (20ft)", sized.DisplayName())

	box := newBox(t, container.Details{Volume: 33.2})
	assert.Equal(t, "[BOX1] Carton (33.2m³)", box.DisplayName())

	plain := newBox(t, container.Details{})
	assert.Equal(t, "[BOX1] Carton", plain.DisplayName())
}

func TestContainer_Rates(t *testing.T) {
	_, err := container.NewContainer(kernel.NewUUID(), "BOX1", "Carton", container.Details{
		DailyRate: decimal.NewFromInt(-5),
		Currency:  "EURO",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "daily rate")
	assert.Contains(t, err.Error(), "currency")

	c := newBox(t, container.Details{DailyRate: decimal.RequireFromString("12.345"), Currency: "usd"})
	assert.Equal(t, "12.35", c.Details().DailyRate.String())
}

func TestStandardContainers(t *testing.T) {
	standard := container.StandardContainers()
	require.Len(t, standard, 9)

	for _, s := range standard {
		c, err := container.NewContainer(kernel.NewUUID(), s.Code, s.Name, s.Details())
		require.NoError(t, err, s.Code)
		assert.True(t, c.Details().IsContainer)
		assert.InDelta(t, s.Volume, c.Volume(), 1e-9)
	}
	assert.True(t, standard[3].Details().Refrigerated)
}
