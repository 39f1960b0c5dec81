package incoterm_test

import (
	"testing"

	"freight/internal/core/domain/model/incoterm"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "fob", want: "FOB"},
		{in: " Dpu ", want: "DPU"},
		{in: "ab", want: "AB"},
		{in: "abcdefghij", want: "ABCDEFGHIJ"},
		{in: "", wantErr: errs.ErrValueIsRequired},
		{in: "F", wantErr: errs.ErrValueIsInvalid},
		{in: "abcdefghijk", wantErr: errs.ErrValueIsInvalid},
		{in: "FOB2020", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := incoterm.NormalizeCode(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewIncoterm(t *testing.T) {
	t.Run("stores code uppercase and applies defaults", func(t *testing.T) {
		i, err := incoterm.NewIncoterm(kernel.NewUUID(), "fob", "Free on Board", incoterm.Details{Group: incoterm.GroupF})

		require.NoError(t, err)
		require.NoError(t, i.Validate())
		assert.Equal(t, "FOB", i.Code())
		assert.Equal(t, incoterm.ModeAny, i.Details().Mode)
		assert.Equal(t, incoterm.ClearanceSeller, i.Details().ExportClearance)
		assert.Equal(t, incoterm.ClearanceBuyer, i.Details().ImportClearance)
		assert.Equal(t, incoterm.DefaultYearVersion, i.Details().YearVersion)
		assert.Equal(t, "FOB - Free on Board", i.DisplayName())
	})

	t.Run("rejects unknown group and clearance", func(t *testing.T) {
		_, err := incoterm.NewIncoterm(kernel.NewUUID(), "FOB", "Free on Board", incoterm.Details{
			Group:           "x",
			ImportClearance: "broker",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "incoterm group")
		assert.Contains(t, err.Error(), "import clearance")
	})
}

func TestIncoterm_Update(t *testing.T) {
	i, err := incoterm.NewIncoterm(kernel.NewUUID(), "CIF", "Cost, Insurance and Freight", incoterm.Details{})
	require.NoError(t, err)

	require.NoError(t, i.Update("cfr", "Cost and Freight", incoterm.Details{YearVersion: "2010"}))
	assert.Equal(t, "CFR", i.Code())
	assert.Equal(t, "2010", i.Details().YearVersion)

	require.Error(t, i.Update("c1f", "Broken", incoterm.Details{}))
	assert.Equal(t, "CFR", i.Code())
}

func TestStandard2020(t *testing.T) {
	standard := incoterm.Standard2020()
	require.Len(t, standard, 11)

	seen := map[string]bool{}
	for _, s := range standard {
		i, err := incoterm.NewIncoterm(kernel.NewUUID(), s.Code, s.Name, s.Details)
		require.NoError(t, err, s.Code)
		assert.False(t, seen[i.Code()], "duplicate %s", i.Code())
		seen[i.Code()] = true
	}

	assert.True(t, seen["EXW"])
	assert.True(t, seen["CIF"])
}
