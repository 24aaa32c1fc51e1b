package wire

import "io"

// BufferedSink implements Sink over an unbuffered io.Writer, batching small
// writes into one delivery per buffer-full. The buffer is allocated lazily on
// first write and returned to the pool by Close.
type BufferedSink struct {
	w   io.Writer
	buf []byte
	pos int
	cap int
}

var _ Sink = (*BufferedSink)(nil)
var _ Flusher = (*BufferedSink)(nil)

// NewBufferedSink creates a BufferedSink with the default buffer size.
func NewBufferedSink(w io.Writer) *BufferedSink {
	return NewBufferedSinkSize(w, BufferSize)
}

// NewBufferedSinkSize creates a BufferedSink with the given buffer size.
// Double-buffering cannot arise: a BufferedSink is a Sink, not an io.Writer,
// so it cannot be wrapped again by accident.
func NewBufferedSinkSize(w io.Writer, size int) *BufferedSink {
	if size <= 0 {
		size = BufferSize
	}
	return &BufferedSink{w: w, cap: size}
}

// Write copies p into the buffer, flushing first when p would overflow the
// remaining capacity. Data larger than the whole buffer is delivered
// directly, bypassing the copy.
func (s *BufferedSink) Write(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if s.buf == nil {
		s.buf = getStreamBuf(s.cap)
	}
	if s.pos+len(p) > len(s.buf) {
		if err := s.Flush(); err != nil {
			return err
		}
		if len(p) >= len(s.buf) {
			return writeAll(s.w, p)
		}
	}
	s.pos += copy(s.buf[s.pos:], p)
	return nil
}

// WriteString writes str without converting it to a byte slice first, except
// on the rare write-through path.
func (s *BufferedSink) WriteString(str string) error {
	if len(str) == 0 {
		return nil
	}
	if s.buf == nil {
		s.buf = getStreamBuf(s.cap)
	}
	if s.pos+len(str) > len(s.buf) {
		if err := s.Flush(); err != nil {
			return err
		}
		if len(str) >= len(s.buf) {
			return writeAll(s.w, []byte(str))
		}
	}
	s.pos += copy(s.buf[s.pos:], str)
	return nil
}

// Flush delivers all pending bytes to the underlying writer and resets the
// cursor. It is a no-op when nothing is pending.
func (s *BufferedSink) Flush() error {
	if s.pos == 0 {
		return nil
	}
	n := s.pos
	s.pos = 0
	return writeAll(s.w, s.buf[:n])
}

// Buffered returns the number of pending bytes.
func (s *BufferedSink) Buffered() int { return s.pos }

// Close flushes pending bytes and releases the buffer. It is the primary
// release mechanism: unlike a finalizer it can report the flush error.
// The sink must not be used after Close.
func (s *BufferedSink) Close() error {
	err := s.Flush()
	if s.buf != nil {
		putStreamBuf(s.buf)
		s.buf = nil
	}
	return err
}

// maxNoProgress bounds consecutive zero-byte reads from a misbehaving reader
// before the refill loop gives up instead of spinning.
const maxNoProgress = 100

// BufferedSource implements Source over an io.Reader that may return short
// reads. Bytes [posOut, posIn) of the buffer are filled but not yet consumed.
type BufferedSource struct {
	r      io.Reader
	buf    []byte
	posIn  int
	posOut int
	cap    int
}

var _ Source = (*BufferedSource)(nil)

// NewBufferedSource creates a BufferedSource with the default buffer size.
func NewBufferedSource(r io.Reader) *BufferedSource {
	return NewBufferedSourceSize(r, BufferSize)
}

// NewBufferedSourceSize creates a BufferedSource with the given buffer size.
func NewBufferedSourceSize(r io.Reader, size int) *BufferedSource {
	if size <= 0 {
		size = BufferSize
	}
	return &BufferedSource{r: r, cap: size}
}

// Read fills all of p, serving buffered bytes first and refilling from the
// underlying reader as needed. Requests that alone exceed the buffer
// capacity are filled directly, bypassing the copy.
func (s *BufferedSource) Read(p []byte) error {
	for len(p) > 0 {
		if s.posOut < s.posIn {
			n := copy(p, s.buf[s.posOut:s.posIn])
			s.posOut += n
			p = p[n:]
			continue
		}
		s.posOut, s.posIn = 0, 0
		if len(p) >= s.cap {
			n, err := s.fill(p)
			if err != nil {
				return err
			}
			p = p[n:]
			continue
		}
		if s.buf == nil {
			s.buf = getStreamBuf(s.cap)
		}
		n, err := s.fill(s.buf)
		if err != nil {
			return err
		}
		s.posIn = n
	}
	return nil
}

// fill performs one refill against the underlying reader, returning n >= 1 or
// an error. A clean io.EOF here is always premature, because fill only runs
// while a request is unsatisfied.
func (s *BufferedSource) fill(p []byte) (int, error) {
	for i := 0; i < maxNoProgress; i++ {
		n, err := s.r.Read(p)
		if n < 0 {
			return 0, ErrInvalidRead
		}
		if n > 0 {
			// A read error alongside data is deferred: the reader will
			// report it again on the next call.
			return n, nil
		}
		if err == io.EOF {
			return 0, ErrEndOfStream
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}

// Buffered returns the number of filled, unconsumed bytes.
func (s *BufferedSource) Buffered() int { return s.posIn - s.posOut }

// Close releases the buffer. Unconsumed bytes are discarded; the underlying
// reader is left untouched. The source must not be used after Close.
func (s *BufferedSource) Close() error {
	if s.buf != nil {
		putStreamBuf(s.buf)
		s.buf = nil
	}
	s.posIn, s.posOut = 0, 0
	return nil
}
