package wire

import "errors"

var (
	// ErrEndOfStream indicates that a source could not satisfy an exact-fill
	// request because the underlying producer has permanently stopped. It is
	// reported distinctly from transport errors so callers can tell "the peer
	// closed" apart from "the transfer failed".
	ErrEndOfStream = errors.New("wire: unexpected end of stream")

	// ErrPadding indicates a non-zero padding byte on decode. Padding is
	// always written as zeros, so anything else means the two ends have
	// desynchronized.
	ErrPadding = errors.New("wire: non-zero padding byte")

	// ErrStringTooLong indicates a decoded length prefix above MaxStringLen,
	// treated as desynchronization rather than an allocation request.
	ErrStringTooLong = errors.New("wire: string length exceeds sanity bound")

	// ErrInvalidRead indicates that an io.Reader returned a negative count.
	ErrInvalidRead = errors.New("wire: reader returned invalid count from Read")

	// ErrInvalidWrite indicates that an io.Writer returned a non-positive
	// count without an error.
	ErrInvalidWrite = errors.New("wire: writer returned invalid count from Write")
)
