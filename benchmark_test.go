package wire

import (
	"bytes"
	"strings"
	"testing"
)

func BenchmarkWriteUint32(b *testing.B) {
	sink := NewBytesSink()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink.Reset()
		_ = WriteUint32(uint32(i), sink)
	}
}

func BenchmarkWriteString(b *testing.B) {
	str := strings.Repeat("s", 100)
	sink := NewBytesSink()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink.Reset()
		_ = WriteString(str, sink)
	}
}

func BenchmarkReadString(b *testing.B) {
	sink := NewBytesSink()
	_ = WriteString(strings.Repeat("s", 100), sink)
	raw := sink.Bytes()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ReadString(NewBytesSource(raw))
	}
}

func BenchmarkEncoderMessage(b *testing.B) {
	set := NewStringSet("one", "two", "three")
	sink := NewBytesSink()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink.Reset()
		enc := NewEncoder(sink)
		enc.Uint32(uint32(i))
		enc.Uint64(uint64(i))
		enc.String("payload")
		enc.StringSet(set)
		_, _ = enc.Result()
	}
}

// Baseline: the same message through a BufferedSink, to see the cost of the
// buffering layer relative to the raw in-memory sink.
func BenchmarkEncoderMessageBuffered(b *testing.B) {
	set := NewStringSet("one", "two", "three")
	var out bytes.Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.Reset()
		buffered := NewBufferedSink(&out)
		enc := NewEncoder(buffered)
		enc.Uint32(uint32(i))
		enc.Uint64(uint64(i))
		enc.String("payload")
		enc.StringSet(set)
		_, _ = enc.Result()
		_ = buffered.Close()
	}
}
