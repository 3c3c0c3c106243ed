package pgmoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Money
	}{
		{"$123.45", 12345},
		{"123.45", 12345},
		{"$123.00", 12300},
		{"$1,234.00", 123400},
		{"$1,234.56", 123456},
		{"$1,234,567.89", 123456789},
		{"1234567890", 123456789000},
		{"-12345", -1234500},
		{"-$0.01", -1},
		{"+$5.00", 500},
		{"+123.45", 12345},
		{".32", 32},
		{"$.32", 32},
		{"-.32", -32},
		{"0.00", 0},
		{"$0.00", 0},
		{"(1)", -100},
		{"($123,456.78)", -12345678},
		{"  $1.00  ", 100},
		{"\t-$1.50\n", -150},
		{"92233720368547758.07", Max},
		{"-92233720368547758.08", Min},
		{"$92,233,720,368,547,758.07", Max},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only whitespace", "   "},
		{"bare minus", "-"},
		{"bare plus", "+"},
		{"bare symbol", "$"},
		{"sign and symbol only", "-$"},
		{"bare decimal point", "."},
		{"symbol and point only", "$."},
		{"misplaced group separator", "$1,23.00"},
		{"four-digit group", "$1,2345.00"},
		{"leading group separator", ",123.00"},
		{"trailing group separator", "123,.00"},
		{"one cent digit", "$123.4"},
		{"three cent digits", "$123.456"},
		{"trailing decimal point", "$123."},
		{"two decimal points", "1.2.3"},
		{"inner whitespace", "1 000.00"},
		{"letters", "abc"},
		{"sign after symbol", "$-1.00"},
		{"double sign", "--1.00"},
		{"sign inside parentheses", "(-1.00)"},
		{"unbalanced parentheses", "(1.00"},
		{"empty parentheses", "()"},
		{"grouped cents", "1.2,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestParse_Overflow(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one cent past max", "92233720368547758.08"},
		{"one cent past min", "-92233720368547758.09"},
		{"integer part past max over 100", "123456789012345678"},
		{"raw int64 max as dollars", "9223372036854775807"},
		{"raw int64 min as dollars", "-9223372036854775808"},
		{"far too many digits", "99999999999999999999999999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, ErrOverflow)
		})
	}
}

func TestParse_GroupingEquivalence(t *testing.T) {
	grouped, err := Parse("$1,234.00")
	require.NoError(t, err)
	plain, err := Parse("$1234.00")
	require.NoError(t, err)

	assert.Equal(t, grouped, plain)
	assert.Equal(t, int64(123400), grouped.MinorUnits())
}

func TestParse_SignNormalization(t *testing.T) {
	plus, err := Parse("+$1.00")
	require.NoError(t, err)
	bare, err := Parse("$1.00")
	require.NoError(t, err)
	require.Equal(t, bare, plus)

	// Normalized sign disappears on the way back out.
	assert.Equal(t, "$1.00", plus.String())

	paren, err := Parse("($1.00)")
	require.NoError(t, err)
	assert.Equal(t, "-$1.00", paren.String())
}
