package funding_test

import (
	"testing"

	"github.com/shelterfund/backend/pkg/funding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		available   string
		covered     string
		outstanding string
	}{
		{"nothing available", "200", "0", "0", "200"},
		{"fully covered", "100", "150", "100", "0"},
		{"exactly covered", "150", "150", "150", "0"},
		{"partially covered", "120.50", "100", "100", "20.5"},
		{"negative balance counts as zero", "50", "-30", "0", "50"},
		{"cost is rounded to cents", "10.005", "100", "10.01", "0"},
		{"available is truncated to cents", "10", "9.999", "9.99", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split, err := funding.ComputeSplit(decimal.RequireFromString(tt.total), decimal.RequireFromString(tt.available), 2)
			require.NoError(t, err)

			assert.True(t, split.Covered.Equal(decimal.RequireFromString(tt.covered)), "covered is %s, expected %s", split.Covered, tt.covered)
			assert.True(t, split.Outstanding.Equal(decimal.RequireFromString(tt.outstanding)), "outstanding is %s, expected %s", split.Outstanding, tt.outstanding)
			assert.True(t, split.Covered.Add(split.Outstanding).Equal(split.TotalCost), "covered and outstanding do not add up to the total")
		})
	}
}

func TestComputeSplitInvalidAmount(t *testing.T) {
	for _, total := range []string{"0", "-1", "0.001"} {
		_, err := funding.ComputeSplit(decimal.RequireFromString(total), decimal.NewFromInt(100), 2)
		assert.ErrorIs(t, err, funding.ErrInvalidAmount, "total %s", total)
	}
}

// TestComputeSplitProperties checks the split for a grid of costs and balances.
func TestComputeSplitProperties(t *testing.T) {
	for total := int64(1); total <= 1000; total += 37 {
		for available := int64(-100); available <= 1100; available += 53 {
			cost := decimal.New(total, -1)
			balance := decimal.New(available, -1)

			split, err := funding.ComputeSplit(cost, balance, 2)
			require.NoError(t, err)

			assert.True(t, split.Covered.Add(split.Outstanding).Equal(split.TotalCost))
			assert.False(t, split.Covered.IsNegative())
			assert.False(t, split.Outstanding.IsNegative())
			assert.True(t, split.Covered.LessThanOrEqual(decimal.Max(balance, decimal.Zero)))
			assert.True(t, split.Covered.Equal(decimal.Min(cost, decimal.Max(balance, decimal.Zero))))
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		code  string
		scale int32
	}{
		{"USD", 2},
		{"EUR", 2},
		{"JPY", 0},
	}

	for _, tt := range tests {
		scale, err := funding.Scale(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.scale, scale, tt.code)
	}

	_, err := funding.Scale("XYZ1")
	assert.Error(t, err)
}
