//go:build unit

package auction_test

import (
	"testing"

	"gavel/internal/domain/auction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBelowCachedPrice(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	tests := []struct {
		name   string
		cached *decimal.Decimal
		amount decimal.Decimal
		want   bool
	}{
		{name: "cache miss never rejects", cached: nil, amount: decimal.NewFromInt(1), want: false},
		{name: "amount below cached price", cached: &hundred, amount: decimal.NewFromInt(99), want: true},
		{name: "amount equal to cached price", cached: &hundred, amount: decimal.NewFromInt(100), want: true},
		{name: "amount above cached price", cached: &hundred, amount: decimal.NewFromInt(101), want: false},
		{name: "fractional margin above", cached: &hundred, amount: decimal.RequireFromString("100.01"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auction.BelowCachedPrice(tt.cached, tt.amount))
		})
	}
}

func TestNeedsCacheHeal(t *testing.T) {
	hundred := decimal.NewFromInt(100)

	assert.True(t, auction.NeedsCacheHeal(nil))
	assert.False(t, auction.NeedsCacheHeal(&hundred))
}
