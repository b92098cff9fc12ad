// Package varint decodes and encodes SQLite's variable-length integers.
//
// A varint is 1 to 9 bytes long, big-endian. Each of the first 8 bytes
// contributes its low 7 bits and uses the high bit as a continuation flag.
// A 9th byte, when reached, contributes all 8 bits. The accumulated 64 bits
// are read as a two's-complement signed integer.
package varint

import (
	"errors"
	"fmt"
)

// MaxLen is the longest encoding of a 64-bit varint.
const MaxLen = 9

const (
	minWidth = 2
	highBit  = 0x80
	low7     = 0x7f
)

var (
	// ErrTruncated is returned when the input ends before a varint terminates.
	ErrTruncated = errors.New("varint: truncated input")

	// ErrInvalidWidth is returned by DecodeWidth for a width outside [2, 9].
	ErrInvalidWidth = errors.New("varint: invalid width")
)

// Decode reads one varint from the start of buf and returns its value and the
// number of bytes consumed.
func Decode(buf []byte) (int64, int, error) {
	return decode(buf, MaxLen)
}

// DecodeWidth decodes a varint whose longest form is width bytes: the first
// width-1 bytes carry 7 bits each, the last carries 8. The result is
// sign-folded at a field width of 7*width+1 bits.
func DecodeWidth(buf []byte, width int) (int64, int, error) {
	if width < minWidth || width > MaxLen {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	return decode(buf, width)
}

func decode(buf []byte, width int) (int64, int, error) {
	var acc uint64
	last := width - 1
	for i := 0; i < last; i++ {
		if i >= len(buf) {
			return 0, 0, truncated(i+1, len(buf))
		}
		b := buf[i]
		acc = acc<<7 | uint64(b&low7)
		if b&highBit == 0 {
			return signed(acc, width), i + 1, nil
		}
	}

	// Final byte: use all 8 bits
	if last >= len(buf) {
		return 0, 0, truncated(width, len(buf))
	}
	acc = acc<<8 | uint64(buf[last])
	return signed(acc, width), width, nil
}

// signed reinterprets acc as a two's-complement value of 7*width+1 bits.
func signed(acc uint64, width int) int64 {
	bits := 7*width + 1
	if bits >= 64 {
		return int64(acc)
	}
	sign := uint64(1) << (bits - 1)
	if acc&sign != 0 {
		return int64(acc) - int64(sign<<1)
	}
	return int64(acc)
}

func truncated(need, have int) error {
	return fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, need, have)
}
