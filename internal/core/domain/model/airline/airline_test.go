package airline_test

import (
	"testing"

	"freight/internal/core/domain/model/airline"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIATA(t *testing.T) {
	assert.NoError(t, airline.ValidateIATA("AB"))
	assert.NoError(t, airline.ValidateIATA("ABC"))
	assert.NoError(t, airline.ValidateIATA(""))

	for _, code := range []string{"A", "ABCD", "A1", "E-K"} {
		assert.ErrorIs(t, airline.ValidateIATA(code), errs.ErrValueIsInvalid, code)
	}
}

func TestValidateICAO(t *testing.T) {
	assert.NoError(t, airline.ValidateICAO("ABC"))
	assert.NoError(t, airline.ValidateICAO("ABCD"))
	assert.NoError(t, airline.ValidateICAO("UA1"))
	assert.NoError(t, airline.ValidateICAO(""))

	for _, code := range []string{"AB", "ABCDE", "UA-1"} {
		assert.ErrorIs(t, airline.ValidateICAO(code), errs.ErrValueIsInvalid, code)
	}
}

func TestNewAirline(t *testing.T) {
	t.Run("should create airline with mixed type by default", func(t *testing.T) {
		a, err := airline.NewAirline(kernel.NewUUID(), "EK", "Emirates", "AE", airline.Details{
			IATA:                 "EK",
			ICAO:                 "UAE",
			DomesticService:      false,
			InternationalService: true,
		})

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, airline.TypeMixed, a.Details().Type)
		assert.Equal(t, "[EK] Emirates (AE)", a.DisplayName())
	})

	t.Run("should report both malformed designators", func(t *testing.T) {
		a, err := airline.NewAirline(kernel.NewUUID(), "EK", "Emirates", "AE", airline.Details{IATA: "E", ICAO: "UA"})

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "iata code")
		assert.Contains(t, err.Error(), "icao code")
	})

	t.Run("should reject unknown type", func(t *testing.T) {
		_, err := airline.NewAirline(kernel.NewUUID(), "EK", "Emirates", "AE", airline.Details{Type: "freighter"})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAirline_Update(t *testing.T) {
	a, err := airline.NewAirline(kernel.NewUUID(), "LH", "Lufthansa", "DE", airline.Details{IATA: "LH"})
	require.NoError(t, err)

	require.Error(t, a.Update("LH", "Lufthansa Cargo", "DE", airline.Details{IATA: "LHCX"}))
	assert.Equal(t, "Lufthansa", a.Name())

	require.NoError(t, a.Update("LH", "Lufthansa Cargo", "DE", airline.Details{IATA: "LH", ICAO: "GEC", Type: airline.TypeCargo}))
	assert.Equal(t, "Lufthansa Cargo", a.Name())
	assert.Equal(t, airline.TypeCargo, a.Details().Type)
}
