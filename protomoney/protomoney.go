// Package protomoney bridges pgmoney.Money and the google.type.Money
// protobuf message for two-decimal currencies. Units carry the whole
// currency part and nanos the cents (1 cent = 10^7 nanos); both conversions
// are exact or fail.
package protomoney

import (
	"errors"
	"fmt"
	"math"

	moneypb "google.golang.org/genproto/googleapis/type/money"

	"github.com/moneywire/pgmoney"
)

// nanosPerCent is the number of nano units in one cent.
const nanosPerCent = 10_000_000

var (
	// ErrSubCentNanos is returned when a message carries precision finer
	// than one cent, which the fixed two-decimal model cannot hold.
	ErrSubCentNanos = errors.New("nanos carry sub-cent precision")

	// ErrSignMismatch is returned when units and nanos disagree in sign,
	// which the google.type.Money contract forbids.
	ErrSignMismatch = errors.New("units and nanos differ in sign")
)

// FromMoney converts an amount into a google.type.Money message with the
// given ISO 4217 currency code. Always exact: units and nanos agree in sign
// because Fractional keeps the sign of the whole amount.
func FromMoney(m pgmoney.Money, currencyCode string) *moneypb.Money {
	return &moneypb.Money{
		CurrencyCode: currencyCode,
		Units:        m.Major(),
		Nanos:        int32(m.Fractional() * nanosPerCent),
	}
}

// ToMoney converts a google.type.Money message into an amount. The message
// must hold whole cents with agreeing signs, and the total must fit the
// minor-unit range; otherwise ErrSubCentNanos, ErrSignMismatch, or
// pgmoney.ErrOverflow is returned.
func ToMoney(pb *moneypb.Money) (pgmoney.Money, error) {
	units, nanos := pb.GetUnits(), pb.GetNanos()
	if nanos%nanosPerCent != 0 {
		return 0, fmt.Errorf("%w: %d nanos", ErrSubCentNanos, nanos)
	}
	if (units > 0 && nanos < 0) || (units < 0 && nanos > 0) {
		return 0, fmt.Errorf("%w: %d units, %d nanos", ErrSignMismatch, units, nanos)
	}
	if units > math.MaxInt64/100 || units < math.MinInt64/100 {
		return 0, fmt.Errorf("%w: %d units", pgmoney.ErrOverflow, units)
	}

	minor := units * 100
	cents := int64(nanos / nanosPerCent)
	total := minor + cents
	if (cents > 0 && total < minor) || (cents < 0 && total > minor) {
		return 0, fmt.Errorf("%w: %d units, %d nanos", pgmoney.ErrOverflow, units, nanos)
	}
	return pgmoney.MinorUnits(total), nil
}
