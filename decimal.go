package pgmoney

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// NewFromDecimal converts an exact decimal amount of whole currency into
// Money. Sub-cent precision fails with ErrInvalidFormat rather than
// rounding, and amounts outside the minor-unit range fail with ErrOverflow.
func NewFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Shift(2)
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("%w: sub-cent precision in %s", ErrInvalidFormat, d)
	}
	if scaled.Cmp(maxMinorUnits) > 0 || scaled.Cmp(minMinorUnits) < 0 {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, d)
	}
	return Money(scaled.IntPart()), nil
}

// Decimal returns the amount as an exact decimal in whole currency units
// (exponent -2). NewFromDecimal(m.Decimal()) == m for every amount.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}
