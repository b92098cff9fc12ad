package varint

// Scanner decodes consecutive varints packed into a single buffer.
type Scanner struct {
	buf []byte
	off int
	val int64
	err error
}

// NewScanner returns a Scanner reading from buf.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Scan decodes the next varint. It returns false at the end of the buffer or
// on the first error.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.off >= len(s.buf) {
		return false
	}
	v, n, err := Decode(s.buf[s.off:])
	if err != nil {
		s.err = err
		return false
	}
	s.val = v
	s.off += n
	return true
}

// Value returns the most recently decoded varint.
func (s *Scanner) Value() int64 { return s.val }

// Offset returns the number of bytes consumed so far.
func (s *Scanner) Offset() int { return s.off }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }
