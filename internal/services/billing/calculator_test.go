package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestLineAmount(t *testing.T) {
	tests := []struct {
		name      string
		quantity  string
		unitPrice string
		taxRate   string
		want      string
	}{
		{"taxed line", "2", "100", "18", "236"},
		{"zero tax", "1", "50", "0", "50"},
		{"zero price", "3", "0", "18", "0"},
		{"fractional quantity", "0.5", "100", "10", "55"},
		{"full tax", "1", "100", "100", "200"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LineAmount(d(tt.quantity), d(tt.unitPrice), d(tt.taxRate))
			assert.True(t, got.Equal(d(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals([]LineInput{
		{Quantity: d("2"), UnitPrice: d("100"), TaxRate: d("18")},
		{Quantity: d("1"), UnitPrice: d("50"), TaxRate: d("0")},
	})

	assert.True(t, totals.Subtotal.Equal(d("250")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.TaxAmount.Equal(d("36")), "tax %s", totals.TaxAmount)
	assert.True(t, totals.Total.Equal(d("286")), "total %s", totals.Total)
}

func TestComputeTotalsEmpty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotalsNoBinaryDrift(t *testing.T) {
	// 0.1 * 3 would drift under float64; decimals stay exact.
	totals := ComputeTotals([]LineInput{
		{Quantity: d("3"), UnitPrice: d("0.1"), TaxRate: d("0")},
	})
	assert.True(t, totals.Subtotal.Equal(d("0.3")), "subtotal %s", totals.Subtotal)
}
