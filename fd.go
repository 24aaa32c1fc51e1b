//go:build unix

package wire

import (
	"io"

	"golang.org/x/sys/unix"
)

// fdWriter issues blocking write(2) calls against a descriptor until the
// whole span is sent, retrying interrupted calls.
type fdWriter struct {
	fd       int
	counters *streamCounters
}

func (w fdWriter) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := unix.Write(w.fd, p[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, err
		}
		if n <= 0 {
			return total, ErrInvalidWrite
		}
		total += n
		w.counters.bytesOut.Add(int64(n))
	}
	return total, nil
}

// fdReader issues a single blocking read(2), retrying interrupted calls.
// A zero-byte result is end of stream, reported as io.EOF so the buffered
// layer can tell "no more data will ever arrive" apart from a hard error.
type fdReader struct {
	fd       int
	counters *streamCounters
}

func (r fdReader) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(r.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, err
		}
		if n == 0 {
			return 0, io.EOF
		}
		r.counters.bytesIn.Add(int64(n))
		return n, nil
	}
}

// FdSink is a buffered Sink over a file descriptor. It does not own the
// descriptor; closing it is the caller's responsibility. Callers must Close
// (or Flush) the sink before releasing it, since pending bytes are only
// delivered then.
type FdSink struct {
	BufferedSink
	fd int
}

// NewFdSink creates an FdSink for the given descriptor.
func NewFdSink(fd int) *FdSink {
	s := &FdSink{fd: fd}
	s.BufferedSink = BufferedSink{w: fdWriter{fd, countersFor(fd)}, cap: BufferSize}
	return s
}

// Fd returns the underlying descriptor.
func (s *FdSink) Fd() int { return s.fd }

// FdSource is a buffered Source over a file descriptor. It does not own the
// descriptor.
type FdSource struct {
	BufferedSource
	fd int
}

// NewFdSource creates an FdSource for the given descriptor.
func NewFdSource(fd int) *FdSource {
	s := &FdSource{fd: fd}
	s.BufferedSource = BufferedSource{r: fdReader{fd, countersFor(fd)}, cap: BufferSize}
	return s
}

// Fd returns the underlying descriptor.
func (s *FdSource) Fd() int { return s.fd }
