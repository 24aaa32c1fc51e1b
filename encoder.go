package wire

// Encoder composes primitive writes against a Sink. It tracks the first
// error that occurs; after an error, all subsequent operations become
// no-ops, so a whole message can be encoded without checking each call.
type Encoder struct {
	s     Sink
	count int64 // total bytes encoded
	err   error // first error encountered
}

// NewEncoder creates an Encoder writing to s.
func NewEncoder(s Sink) *Encoder {
	return &Encoder{s: s}
}

// Count returns the total bytes encoded so far.
func (e *Encoder) Count() int64 { return e.count }

// Err returns the first error encountered, if any.
func (e *Encoder) Err() error { return e.err }

// setError records the first non-nil error. This preserves the root cause
// of a failure chain instead of a later, less relevant error.
func (e *Encoder) setError(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// Flush flushes the sink if it buffers, without resetting the error state.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if f, ok := e.s.(Flusher); ok {
		e.setError(f.Flush())
	}
	return e.err
}

// Result flushes and returns the final count and error state.
func (e *Encoder) Result() (int64, error) {
	e.Flush()
	return e.count, e.err
}

// Uint32 encodes v as a padded 8-byte field.
func (e *Encoder) Uint32(v uint32) {
	if e.err != nil {
		return
	}
	if err := WriteUint32(v, e.s); err != nil {
		e.err = err
		return
	}
	e.count += 8
}

// Uint64 encodes v as 8 little-endian bytes.
func (e *Encoder) Uint64(v uint64) {
	if e.err != nil {
		return
	}
	if err := WriteUint64(v, e.s); err != nil {
		e.err = err
		return
	}
	e.count += 8
}

// String encodes str as a length-prefixed, padded byte string.
func (e *Encoder) String(str string) {
	if e.err != nil {
		return
	}
	if err := WriteString(str, e.s); err != nil {
		e.err = err
		return
	}
	e.count += fieldSize(len(str))
}

// Bytes encodes p as a length-prefixed, padded byte string.
func (e *Encoder) Bytes(p []byte) {
	if e.err != nil {
		return
	}
	if err := WriteBytesField(p, e.s); err != nil {
		e.err = err
		return
	}
	e.count += fieldSize(len(p))
}

// StringSet encodes ss as a counted sequence of strings.
func (e *Encoder) StringSet(ss *StringSet) {
	if e.err != nil {
		return
	}
	if err := WriteStringSet(ss, e.s); err != nil {
		e.err = err
		return
	}
	e.count += 8
	for _, str := range ss.Strings() {
		e.count += fieldSize(len(str))
	}
}

// Padding emits the padding that follows n payload bytes.
func (e *Encoder) Padding(n uint64) {
	if e.err != nil {
		return
	}
	if err := WritePadding(n, e.s); err != nil {
		e.err = err
		return
	}
	e.count += int64(Pad(n))
}
