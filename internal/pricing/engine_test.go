package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name      string
		wholesale string
		retail    string
		quantity  int64
		charge    string
		cost      string
		profit    string
	}{
		{"percent 60 on 500", "10", "16", 500, "8", "5", "3"},
		{"default factor on 1000", "10", "16", 1000, "16", "10", "6"},
		{"rounds half up", "0.333", "0.5328", 1000, "0.53", "0.333", "0.197"},
		{"rounds small charge up", "1", "1.005", 1000, "1.01", "1", "0.01"},
		{"negative profit allowed", "10", "9", 1000, "9", "10", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Price(decimal.RequireFromString(tt.wholesale), decimal.RequireFromString(tt.retail), tt.quantity)
			assert.True(t, decimal.RequireFromString(tt.charge).Equal(q.TotalCharge), "charge %s", q.TotalCharge)
			assert.True(t, decimal.RequireFromString(tt.cost).Equal(q.ActualCost), "cost %s", q.ActualCost)
			assert.True(t, decimal.RequireFromString(tt.profit).Equal(q.Profit), "profit %s", q.Profit)
		})
	}
}

func TestPrice_ChargeUsesUnroundedRetail(t *testing.T) {
	// Со ставкой, округленной до 4 знаков (1.0000), списание было бы 1000.00.
	q := Price(decimal.NewFromInt(1), decimal.RequireFromString("1.00004"), 1_000_000)
	assert.Equal(t, "1000.04", q.TotalCharge.StringFixed(ChargePlaces))
}
