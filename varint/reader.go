package varint

import (
	"errors"
	"fmt"
	"io"
)

// Read decodes one varint from r. It returns io.EOF if r is empty and an
// error wrapping ErrTruncated if r ends partway through a varint.
func Read(r io.ByteReader) (int64, int, error) {
	var acc uint64
	for i := 0; i < MaxLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return 0, 0, io.EOF
				}
				return 0, 0, truncated(i+1, i)
			}
			return 0, 0, fmt.Errorf("varint: read byte %d: %w", i, err)
		}

		if i == MaxLen-1 {
			// 9th byte: use all 8 bits
			acc = acc<<8 | uint64(b)
			return int64(acc), MaxLen, nil
		}
		acc = acc<<7 | uint64(b&low7)
		if b&highBit == 0 {
			return int64(acc), i + 1, nil
		}
	}
	return int64(acc), MaxLen, nil
}
