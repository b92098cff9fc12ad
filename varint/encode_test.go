package varint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boundaryValues() []int64 {
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64}
	for shift := 7; shift < 63; shift += 7 {
		values = append(values, int64(1)<<shift-1, int64(1)<<shift)
	}
	return append(values, 1<<56-1, 1<<56, 1<<57, -128)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		expected []byte
	}{
		{"Zero", 0, []byte{0x00}},
		{"One", 1, []byte{0x01}},
		{"127", 127, []byte{0x7f}},
		{"128", 128, []byte{0x81, 0x00}},
		{"16384", 16384, []byte{0x81, 0x80, 0x00}},
		{"LargestEightByte", 1<<56 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
		{"SmallestNineByte", 1 << 56, []byte{0x80, 0xc0, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}},
		{"MinusOne", -1, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.value))
			assert.Equal(t, len(tt.expected), Len(tt.value))
		})
	}
}

func TestAppendVarintKeepsPrefix(t *testing.T) {
	buf := AppendVarint([]byte{0xaa}, 128)
	assert.Equal(t, []byte{0xaa, 0x81, 0x00}, buf)
}

func TestEncodeRoundtrip(t *testing.T) {
	for _, v := range boundaryValues() {
		enc := Encode(v)
		got, n, err := Decode(enc)
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, got)
		assert.Equal(t, Len(v), n)
	}
}
