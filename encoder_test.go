package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errSink fails every write with a fixed error.
type errSink struct {
	err error
}

func (s errSink) Write(p []byte) error { return s.err }

func TestEncoderDecoderMessage(t *testing.T) {
	sink := NewBytesSink()
	enc := NewEncoder(sink)

	paths := NewStringSet("/bin/sh", "/usr/lib")
	enc.Uint32(7)
	enc.Uint64(1 << 40)
	enc.String("hello")
	enc.Bytes([]byte{9, 8, 7})
	enc.StringSet(paths)

	n, err := enc.Result()
	require.NoError(t, err)
	assert.EqualValues(t, sink.Len(), n, "Count must match the bytes actually produced")

	dec := NewDecoder(NewBytesSource(sink.Bytes()))
	var v32 uint32
	var v64 uint64
	dec.Uint32(&v32)
	dec.Uint64(&v64)
	str := dec.String()
	blob := dec.Bytes()
	set := dec.StringSet()

	m, err := dec.Result()
	require.NoError(t, err)
	assert.Equal(t, n, m, "decoder must consume exactly what the encoder produced")
	assert.Equal(t, uint32(7), v32)
	assert.Equal(t, uint64(1<<40), v64)
	assert.Equal(t, "hello", str)
	assert.Equal(t, []byte{9, 8, 7}, blob)
	assert.True(t, set.Equal(paths))
}

func TestEncoderStickyError(t *testing.T) {
	failure := errors.New("wedged")
	enc := NewEncoder(errSink{err: failure})

	enc.Uint32(1)
	firstErr := enc.Err()
	require.Error(t, firstErr)
	require.ErrorIs(t, firstErr, failure)

	// Subsequent operations are no-ops: the error does not change and the
	// count does not advance.
	enc.String("ignored")
	enc.Uint64(2)
	assert.Equal(t, firstErr, enc.Err())
	assert.Zero(t, enc.Count())

	_, err := enc.Result()
	assert.Equal(t, firstErr, err)
}

func TestDecoderStickyError(t *testing.T) {
	// Only one uint32 field is available; the second read fails.
	sink := NewBytesSink()
	require.NoError(t, WriteUint32(1, sink))

	dec := NewDecoder(NewBytesSource(sink.Bytes()))
	var a, b uint32
	dec.Uint32(&a)
	dec.Uint32(&b)

	require.Error(t, dec.Err())
	assert.ErrorIs(t, dec.Err(), ErrEndOfStream)
	assert.Equal(t, uint32(1), a)
	assert.Zero(t, b, "destination must be untouched after an error")

	// Value-returning methods yield zero values once the error is latched.
	assert.Empty(t, dec.String())
	assert.Nil(t, dec.Bytes())
	assert.Nil(t, dec.StringSet())
	assert.EqualValues(t, 8, dec.Count())
}

func TestEncoderFlushesBufferedSink(t *testing.T) {
	var out bytes.Buffer
	sink := NewBufferedSinkSize(&out, 256)
	enc := NewEncoder(sink)

	enc.String("buffered")
	assert.Zero(t, out.Len(), "nothing should reach the transport before a flush")

	n, err := enc.Result()
	require.NoError(t, err)
	assert.EqualValues(t, out.Len(), n)
}

func TestEncoderPadding(t *testing.T) {
	sink := NewBytesSink()
	enc := NewEncoder(sink)

	enc.Padding(3) // 5 zero bytes
	enc.Padding(8) // aligned, nothing written

	n, err := enc.Result()
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)
	assert.Equal(t, make([]byte, 5), sink.Bytes())

	dec := NewDecoder(NewBytesSource(sink.Bytes()))
	dec.Padding(3)
	dec.Padding(8)
	require.NoError(t, dec.Err())
	assert.EqualValues(t, 5, dec.Count())
}
