// Package money implements fixed-point monetary values.
//
// Amounts are stored as an integer count of minor currency units (cents)
// plus a currency code, never as floating point. All arithmetic stays in
// integer minor units; where a fractional result can occur (scalar
// multiplication) the result is rounded to minor units exactly once,
// using round-half-to-even.
package money

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxIntegerDigits is the largest whole-unit magnitude Format supports.
// Formatting is exact up to this many integer digits; larger amounts are
// still formatted correctly but callers sizing fixed-width columns should
// budget for this bound.
const MaxIntegerDigits = 10

// Money is an immutable amount of a single currency in minor units.
type Money struct {
	amount   int64
	currency string
}

// New returns a Money of amount minor units in the given currency.
func New(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// Zero returns the zero amount of the given currency.
func Zero(currency string) Money {
	return Money{currency: currency}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount == 0 }

// Add returns m + x. Both values must share a currency.
func (m Money) Add(x Money) (Money, error) {
	if m.currency != x.currency {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrIncompatibleCurrency, m.currency, x.currency)
	}
	return Money{amount: m.amount + x.amount, currency: m.currency}, nil
}

// Sub returns m − x. Both values must share a currency.
func (m Money) Sub(x Money) (Money, error) {
	if m.currency != x.currency {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrIncompatibleCurrency, m.currency, x.currency)
	}
	return Money{amount: m.amount - x.amount, currency: m.currency}, nil
}

// MulDecimal returns m × d, rounded to minor units with round-half-to-even.
// This is the single rounding point for any fractional result.
func (m Money) MulDecimal(d decimal.Decimal) Money {
	cents := decimal.NewFromInt(m.amount).Mul(d).RoundBank(0)
	return Money{amount: cents.IntPart(), currency: m.currency}
}

// currencyPrefixes maps currency codes to display prefixes. ASCII only, so
// formatted width equals rune count equals byte count.
var currencyPrefixes = map[string]string{
	"AUD": "AU $",
	"NZD": "NZ $",
	"USD": "$",
	"EUR": "EUR ",
	"GBP": "GBP ",
}

// Format renders the amount with the currency prefix, a "." decimal
// separator, exactly two decimal places and "," thousands grouping,
// e.g. New(1234567, "AUD").Format() == "AU $12,345.67".
func (m Money) Format() string {
	prefix, ok := currencyPrefixes[m.currency]
	if !ok {
		prefix = m.currency + " "
	}

	amount := m.amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	units := amount / 100
	cents := amount % 100

	return fmt.Sprintf("%s%s%s.%02d", sign, prefix, groupThousands(units), cents)
}

// PadLeft returns Format() left-padded with spaces to exactly width
// characters. Strings already at or beyond width are returned unpadded.
func (m Money) PadLeft(width int) string {
	s := m.Format()
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

// String implements fmt.Stringer.
func (m Money) String() string { return m.Format() }

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
