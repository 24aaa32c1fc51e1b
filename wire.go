// Package wire implements a buffered binary I/O layer and the 8-byte-aligned
// wire encoding built on top of it. Two endpoints that agree on a message
// layout exchange values by composing the primitive writes on one side and
// the identical sequence of reads on the other; synchronization is purely
// positional, so every primitive pads its payload to an 8-byte boundary.
//
// A stream is exclusively owned by one goroutine for its lifetime. Every
// operation may block on the underlying transport; there is no internal
// locking and no cancellation. On any error the stream is desynchronized and
// must be torn down.
package wire

// Sink is the abstract destination of binary data. A call delivers all of p,
// in order, or fails; there are no partial writes at this level.
type Sink interface {
	Write(p []byte) error
}

// Source is the abstract source of binary data. A call blocks until p has
// been completely filled, or fails if that many bytes will never arrive;
// there are no short reads at this level.
type Source interface {
	Read(p []byte) error
}

// Flusher is implemented by sinks that buffer pending bytes.
type Flusher interface {
	Flush() error
}
