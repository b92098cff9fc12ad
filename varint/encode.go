package varint

// Len returns the number of bytes AppendVarint writes for v.
func Len(v int64) int {
	u := uint64(v)
	if u>>56 != 0 {
		return MaxLen
	}
	n := 1
	for u >>= 7; u != 0; u >>= 7 {
		n++
	}
	return n
}

// AppendVarint appends the SQLite encoding of v to dst.
func AppendVarint(dst []byte, v int64) []byte {
	u := uint64(v)
	n := Len(v)
	start := len(dst)
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	out := dst[start:]

	if n == MaxLen {
		// Low 8 bits go in the 9th byte, the remaining 56 in 7-bit groups
		out[8] = byte(u)
		u >>= 8
		for i := 7; i >= 0; i-- {
			out[i] = byte(u&low7) | highBit
			u >>= 7
		}
		return dst
	}

	for i := n - 1; i >= 0; i-- {
		out[i] = byte(u&low7) | highBit
		u >>= 7
	}
	out[n-1] &^= highBit
	return dst
}

// Encode returns the SQLite encoding of v.
func Encode(v int64) []byte {
	return AppendVarint(make([]byte, 0, MaxLen), v)
}
