package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/internal/money"
)

func TestAddSameCurrency(t *testing.T) {
	a := money.New(150, "AUD")
	b := money.New(275, "AUD")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(425), sum.Amount())
	assert.Equal(t, "AUD", sum.Currency())
}

func TestAddIncompatibleCurrency(t *testing.T) {
	a := money.New(150, "AUD")
	b := money.New(275, "USD")

	_, err := a.Add(b)
	require.ErrorIs(t, err, money.ErrIncompatibleCurrency)

	_, err = a.Sub(b)
	require.ErrorIs(t, err, money.ErrIncompatibleCurrency)
}

func TestSub(t *testing.T) {
	a := money.New(1000, "AUD")
	b := money.New(333, "AUD")

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, int64(667), diff.Amount())
}

func TestMulDecimalRoundsHalfToEven(t *testing.T) {
	half := decimal.RequireFromString("0.5")

	// 25 * 0.5 = 12.5 -> rounds to even 12
	assert.Equal(t, int64(12), money.New(25, "AUD").MulDecimal(half).Amount())
	// 35 * 0.5 = 17.5 -> rounds to even 18
	assert.Equal(t, int64(18), money.New(35, "AUD").MulDecimal(half).Amount())
	// exact results are untouched
	assert.Equal(t, int64(50), money.New(100, "AUD").MulDecimal(half).Amount())
}

func TestMulDecimalRoundsOnce(t *testing.T) {
	// 10% tax on $33.33: 3333 * 0.1 = 333.3 -> 333, not a cascade of
	// intermediate roundings.
	rate := decimal.RequireFromString("0.1")
	assert.Equal(t, int64(333), money.New(3333, "AUD").MulDecimal(rate).Amount())
}

func TestMulDecimalNegative(t *testing.T) {
	qty := decimal.RequireFromString("2.50")
	assert.Equal(t, int64(-250), money.New(-100, "AUD").MulDecimal(qty).Amount())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		amount   int64
		currency string
		want     string
	}{
		{0, "AUD", "AU $0.00"},
		{500, "USD", "$5.00"},
		{1234567, "USD", "$12,345.67"},
		{1234567, "AUD", "AU $12,345.67"},
		{100000000000, "AUD", "AU $1,000,000,000.00"},
		{-4205, "AUD", "-AU $42.05"},
		{99, "EUR", "EUR 0.99"},
		{100, "JPY", "JPY 1.00"}, // unconfigured currency falls back to code prefix
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, money.New(tt.amount, tt.currency).Format())
	}
}

func TestPadLeftExactWidth(t *testing.T) {
	m := money.New(500, "USD") // "$5.00", 5 chars
	assert.Equal(t, "     $5.00", m.PadLeft(10))
	assert.Len(t, m.PadLeft(10), 10)

	// Already wider than requested: returned unpadded.
	wide := money.New(1234567890123, "USD")
	assert.Equal(t, wide.Format(), wide.PadLeft(5))
}

func TestZero(t *testing.T) {
	z := money.Zero("AUD")
	assert.True(t, z.IsZero())
	assert.Equal(t, "AU $0.00", z.Format())
}
