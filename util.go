package wire

import (
	"io"

	"golang.org/x/exp/constraints"
)

// BufferSize is the default capacity of buffered sinks and sources.
const BufferSize = 32 * 1024

var zeros [8]byte

// Roundup rounds n up to the nearest multiple of align.
func Roundup[T constraints.Integer](n, align T) T { return (n + (align - 1)) &^ (align - 1) }

// Pad returns the number of zero bytes that follow n payload bytes on the
// wire to reach the next 8-byte boundary.
func Pad[T constraints.Integer](n T) T { return Roundup(n, 8) - n }

// writeAll delivers all of p to w. io.Writer already promises this, but a
// short write here would silently desynchronize the stream, so the loop is
// explicit.
func writeAll(w io.Writer, p []byte) error {
	for len(p) > 0 {
		n, err := w.Write(p)
		if err != nil {
			return err
		}
		if n <= 0 {
			return ErrInvalidWrite
		}
		p = p[n:]
	}
	return nil
}
