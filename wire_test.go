package pgmoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_EncodeWire(t *testing.T) {
	tests := []struct {
		name  string
		money Money
		want  [WireSize]byte
	}{
		{"zero", Zero, [WireSize]byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{"one cent", MinorUnits(1), [WireSize]byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"negative one cent", MinorUnits(-1), [WireSize]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"big-endian byte order", MinorUnits(0x0102030405060708), [WireSize]byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"max", Max, [WireSize]byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"min", Min, [WireSize]byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.money.EncodeWire())
		})
	}
}

func TestMoney_AppendWire(t *testing.T) {
	buf := []byte{0xde, 0xad}
	buf = MinorUnits(1).AppendWire(buf)

	assert.Equal(t, []byte{0xde, 0xad, 0, 0, 0, 0, 0, 0, 0, 1}, buf)
}

func TestDecodeWire_RoundTrip(t *testing.T) {
	samples := []Money{Zero, MinorUnits(1), MinorUnits(-1), MinorUnits(12345), MinorUnits(-12345678), Max, Min}

	for _, m := range samples {
		encoded := m.EncodeWire()
		decoded, err := DecodeWire(encoded[:])
		require.NoError(t, err)
		assert.Equal(t, m, decoded)
	}
}

func TestDecodeWire_EncodeRoundTrip(t *testing.T) {
	inputs := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0x80, 0, 0, 0, 0, 0, 0, 1},
		{0x12, 0x34, 0x56, 0x78, 0x9a, 0xbc, 0xde, 0xf0},
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}

	for _, b := range inputs {
		m, err := DecodeWire(b)
		require.NoError(t, err)
		assert.Equal(t, b, m.AppendWire(nil))
	}
}

func TestDecodeWire_InvalidLength(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
	}{
		{"empty", nil},
		{"seven bytes", make([]byte, 7)},
		{"nine bytes", make([]byte, 9)},
		{"single byte", []byte{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeWire(tt.src)
			require.ErrorIs(t, err, ErrInvalidLength)
		})
	}
}
