package pgmoney

import (
	"encoding/binary"
	"fmt"
)

// WireSize is the length of the binary encoding: one big-endian
// two's-complement signed 64-bit integer of minor units, exactly as the
// server transmits a money value on its binary protocol.
const WireSize = 8

// EncodeWire serializes the amount into its 8-byte wire form.
func (m Money) EncodeWire() [WireSize]byte {
	var buf [WireSize]byte
	binary.BigEndian.PutUint64(buf[:], uint64(m))
	return buf
}

// AppendWire appends the 8-byte wire form to dst and returns the extended
// slice, matching the append-style buffers database drivers hand out.
func (m Money) AppendWire(dst []byte) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(m))
}

// DecodeWire interprets an 8-byte wire buffer as an amount. Any other
// length fails with ErrInvalidLength; a well-formed buffer always decodes,
// and re-encoding it reproduces the input byte-for-byte.
func DecodeWire(src []byte) (Money, error) {
	if len(src) != WireSize {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(src), WireSize)
	}
	return Money(binary.BigEndian.Uint64(src)), nil
}
