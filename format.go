package pgmoney

import (
	"strconv"
	"strings"
)

// Format renders the amount in the canonical text form: optional '-' before
// the symbol, '$', the whole-currency digits grouped by ',' every three
// digits, '.', and two zero-padded cent digits. Format is the exact inverse
// of Parse: Parse(Format(m)) == m for every representable amount.
func Format(m Money) string {
	return m.String()
}

// String implements fmt.Stringer; see Format.
func (m Money) String() string {
	// Work on the unsigned magnitude so Min renders without overflowing.
	u := uint64(m)
	if m < 0 {
		u = -u
	}
	dollars := strconv.FormatUint(u/100, 10)
	cents := u % 100

	var b strings.Builder
	b.Grow(len(dollars) + len(dollars)/3 + 5)
	if m < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	head := len(dollars) % 3
	if head == 0 {
		head = 3
	}
	b.WriteString(dollars[:head])
	for i := head; i < len(dollars); i += 3 {
		b.WriteByte(',')
		b.WriteString(dollars[i : i+3])
	}

	b.WriteByte('.')
	b.WriteByte('0' + byte(cents/10))
	b.WriteByte('0' + byte(cents%10))
	return b.String()
}
