package wire

import "sync"

// streamBufPool reuses the fixed buffers owned by buffered sinks and sources.
// Streams are often short-lived (one per protocol exchange), so recycling the
// default-size buffer avoids thrashing the allocator. Non-default sizes are
// allocated directly.
var streamBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, BufferSize)
		return &b
	},
}

func getStreamBuf(size int) []byte {
	if size == BufferSize {
		return *streamBufPool.Get().(*[]byte)
	}
	return make([]byte, size)
}

func putStreamBuf(b []byte) {
	if len(b) == BufferSize {
		streamBufPool.Put(&b)
	}
}
