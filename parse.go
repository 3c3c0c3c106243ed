package pgmoney

import (
	"fmt"
	"math"
	"strings"
)

// Parse converts a textual amount into Money. The accepted form is an
// optional sign ('-' or '+'), an optional '$', integer digits optionally
// grouped by ',' at exact three-digit boundaries, and an optional '.'
// followed by exactly two cent digits. A parenthesized amount, "($1.50)", is
// negative. Whitespace may surround the token but not appear inside it.
//
// Either the integer part or the cent part may be omitted, not both:
// "123" is $123.00 and ".32" is $0.32.
//
// Parsing never touches floating point; digits accumulate into the minor-unit
// integer with checked arithmetic, so every representable amount parses
// exactly. Failures are ErrInvalidFormat or ErrOverflow.
func Parse(input string) (Money, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}

	negative := false
	if s[0] == '(' {
		if len(s) < 2 || s[len(s)-1] != ')' {
			return 0, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidFormat, input)
		}
		s = s[1 : len(s)-1]
		negative = true
		if s != "" && (s[0] == '-' || s[0] == '+') {
			return 0, fmt.Errorf("%w: sign inside parentheses in %q", ErrInvalidFormat, input)
		}
	} else if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}

	if s != "" && s[0] == '$' {
		s = s[1:]
	}

	intPart := s
	centPart := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, centPart = s[:dot], s[dot+1:]
		if len(centPart) != 2 || !allDigits(centPart) {
			return 0, fmt.Errorf("%w: cent part must be exactly two digits in %q", ErrInvalidFormat, input)
		}
	}
	if intPart == "" && centPart == "" {
		return 0, fmt.Errorf("%w: no digits in %q", ErrInvalidFormat, input)
	}
	if err := checkGrouping(intPart); err != nil {
		return 0, fmt.Errorf("%w in %q", err, input)
	}

	// Accumulate as a non-positive total so the full negative range,
	// including Min, stays representable during the scan.
	var total int64
	for i := 0; i < len(intPart); i++ {
		if intPart[i] == ',' {
			continue
		}
		var err error
		if total, err = pushDigit(total, intPart[i]); err != nil {
			return 0, fmt.Errorf("%w: %q", err, input)
		}
	}
	if centPart == "" {
		centPart = "00"
	}
	for i := 0; i < len(centPart); i++ {
		var err error
		if total, err = pushDigit(total, centPart[i]); err != nil {
			return 0, fmt.Errorf("%w: %q", err, input)
		}
	}

	if !negative {
		if total == math.MinInt64 {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, input)
		}
		total = -total
	}
	return Money(total), nil
}

// pushDigit appends one decimal digit to a non-positive accumulator,
// failing if the result would pass below MinInt64.
func pushDigit(total int64, c byte) (int64, error) {
	if c < '0' || c > '9' {
		return 0, ErrInvalidFormat
	}
	d := int64(c - '0')
	if total < (math.MinInt64+d)/10 {
		return 0, ErrOverflow
	}
	return total*10 - d, nil
}

// checkGrouping validates the integer part: either plain digits, or digit
// groups where the first has one to three digits and every later group has
// exactly three. An empty integer part is allowed (cents-only amounts).
func checkGrouping(intPart string) error {
	if !strings.ContainsRune(intPart, ',') {
		if !allDigits(intPart) {
			return fmt.Errorf("%w: unexpected character", ErrInvalidFormat)
		}
		return nil
	}

	groups := strings.Split(intPart, ",")
	if len(groups[0]) < 1 || len(groups[0]) > 3 || !allDigits(groups[0]) {
		return fmt.Errorf("%w: misplaced group separator", ErrInvalidFormat)
	}
	for _, g := range groups[1:] {
		if len(g) != 3 || !allDigits(g) {
			return fmt.Errorf("%w: misplaced group separator", ErrInvalidFormat)
		}
	}
	return nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
