package pgmoney

import "errors"

// Common pgmoney errors
var (
	// ErrInvalidFormat is returned when a textual amount does not match the
	// money grammar (bad grouping, wrong fractional digit count, empty or
	// malformed token).
	ErrInvalidFormat = errors.New("invalid money format")

	// ErrOverflow is returned when a parsed or computed amount exceeds the
	// 64-bit minor-unit range.
	ErrOverflow = errors.New("money amount out of range")

	// ErrInvalidLength is returned when a wire buffer is not exactly 8 bytes.
	ErrInvalidLength = errors.New("invalid money wire length")

	// ErrDivideByZero is returned when an amount is divided by zero.
	ErrDivideByZero = errors.New("money division by zero")
)
