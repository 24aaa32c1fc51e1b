package wire

// BytesSink is a Sink that accumulates everything written to it in memory.
// Capacity grows without bound, so it is meant for tests, diagnostics, and
// assembling messages that are sent elsewhere afterwards.
type BytesSink struct {
	buf []byte
}

var _ Sink = (*BytesSink)(nil)

// NewBytesSink creates an empty BytesSink.
func NewBytesSink() *BytesSink { return &BytesSink{} }

// Write appends p to the accumulator.
func (s *BytesSink) Write(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

// WriteString appends str to the accumulator.
func (s *BytesSink) WriteString(str string) error {
	s.buf = append(s.buf, str...)
	return nil
}

// Bytes returns a view of everything written so far. The slice is only valid
// until the next Write.
func (s *BytesSink) Bytes() []byte { return s.buf }

// String returns a copy of everything written so far.
func (s *BytesSink) String() string { return string(s.buf) }

// Len returns the number of accumulated bytes.
func (s *BytesSink) Len() int { return len(s.buf) }

// Reset discards the accumulated bytes, keeping the allocation.
func (s *BytesSink) Reset() { s.buf = s.buf[:0] }

// BytesSource is a Source over a caller-owned byte slice. It never mutates
// the slice and must not outlive it. Bounds are checked before any copy, so
// an exhausted source fails without touching the destination.
type BytesSource struct {
	b   []byte
	pos int
}

var _ Source = (*BytesSource)(nil)

// NewBytesSource creates a BytesSource reading from b.
func NewBytesSource(b []byte) *BytesSource { return &BytesSource{b: b} }

// NewStringSource creates a Source reading from s.
func NewStringSource(s string) *BytesSource { return &BytesSource{b: []byte(s)} }

// Read fills all of p from the current cursor, or fails with ErrEndOfStream
// if fewer than len(p) bytes remain.
func (s *BytesSource) Read(p []byte) error {
	if len(p) > len(s.b)-s.pos {
		return ErrEndOfStream
	}
	s.pos += copy(p, s.b[s.pos:])
	return nil
}

// Remaining returns the number of unread bytes.
func (s *BytesSource) Remaining() int { return len(s.b) - s.pos }
