// Package pgmoney implements the Postgres 'money' column type: a signed
// 64-bit integer count of minor currency units (cents), with the en_US text
// representation and the 8-byte big-endian binary wire encoding the server
// uses for the type.
//
// Invariants:
//   - The amount is always an exact integer of minor units. No conversion
//     path produces or stores an intermediate floating-point value.
//   - Arithmetic is checked; operations that would leave the int64 range
//     return ErrOverflow instead of wrapping.
package pgmoney

import "fmt"

// Money is an amount of money in minor currency units (cents).
// It is an immutable value; arithmetic returns a new Money.
// Values compare directly with ==, <, etc.
type Money int64

const (
	// Zero is the zero amount, $0.00.
	Zero Money = 0

	// Min is the most negative representable amount, -$92,233,720,368,547,758.08.
	Min Money = -1 << 63

	// Max is the largest representable amount, $92,233,720,368,547,758.07.
	Max Money = 1<<63 - 1
)

// MinorUnits wraps an integer count of minor units verbatim.
func MinorUnits(units int64) Money {
	return Money(units)
}

// MinorUnits returns the total amount in minor units.
func (m Money) MinorUnits() int64 {
	return int64(m)
}

// Major returns the whole-currency part of the amount, truncated toward
// zero: -$1.50 has major part -1, not -2.
func (m Money) Major() int64 {
	return int64(m) / 100
}

// Fractional returns the sub-unit remainder of the amount. Its sign matches
// the sign of the whole value, so Major()*100 + Fractional() == MinorUnits():
// -$1.50 has fractional part -50.
func (m Money) Fractional() int64 {
	return int64(m) % 100
}

// Add returns m + other, or ErrOverflow if the sum leaves the int64 range.
func (m Money) Add(other Money) (Money, error) {
	sum := m + other
	if (other > 0 && sum < m) || (other < 0 && sum > m) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, int64(m), int64(other))
	}
	return sum, nil
}

// Sub returns m - other, or ErrOverflow if the difference leaves the int64
// range.
func (m Money) Sub(other Money) (Money, error) {
	diff := m - other
	if (other > 0 && diff > m) || (other < 0 && diff < m) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, int64(m), int64(other))
	}
	return diff, nil
}

// Mul returns the amount scaled by an integer factor, or ErrOverflow if the
// product leaves the int64 range.
func (m Money) Mul(factor int64) (Money, error) {
	if m == 0 || factor == 0 {
		return 0, nil
	}
	if (m == Min && factor == -1) || (int64(m) == -1 && factor == -1<<63) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, int64(m), factor)
	}
	product := int64(m) * factor
	if product/factor != int64(m) {
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, int64(m), factor)
	}
	return Money(product), nil
}

// Div returns the amount divided by an integer divisor, truncated toward
// zero: $0.21 divided by 2 is $0.10. Dividing by zero fails with
// ErrDivideByZero; dividing Min by -1 overflows.
func (m Money) Div(divisor int64) (Money, error) {
	if divisor == 0 {
		return 0, fmt.Errorf("%w: %d / 0", ErrDivideByZero, int64(m))
	}
	if m == Min && divisor == -1 {
		return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, int64(m), divisor)
	}
	return Money(int64(m) / divisor), nil
}

// Neg returns the amount with its sign flipped. Negating Min overflows,
// since its magnitude exceeds Max by one cent.
func (m Money) Neg() (Money, error) {
	if m == Min {
		return 0, fmt.Errorf("%w: negate %d", ErrOverflow, int64(m))
	}
	return -m, nil
}

// Abs returns the magnitude of the amount. Abs of Min overflows.
func (m Money) Abs() (Money, error) {
	if m < 0 {
		return m.Neg()
	}
	return m, nil
}

// Cmp compares two amounts, returning -1, 0, or 1.
func (m Money) Cmp(other Money) int {
	switch {
	case m < other:
		return -1
	case m > other:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two amounts are the same.
func (m Money) Equal(other Money) bool {
	return m == other
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool { return m == 0 }

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool { return m > 0 }

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool { return m < 0 }
