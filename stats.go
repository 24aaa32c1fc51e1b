package wire

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// fdStats tracks cumulative transfer totals per descriptor. Streams are
// single-owner, but many run concurrently and several streams may share a
// descriptor over time, so the registry must be safe from any goroutine.
var fdStats = xsync.NewMap[int, *streamCounters]()

type streamCounters struct {
	bytesOut atomic.Int64
	bytesIn  atomic.Int64
}

func countersFor(fd int) *streamCounters {
	if c, ok := fdStats.Load(fd); ok {
		return c
	}
	c, _ := fdStats.LoadOrStore(fd, &streamCounters{})
	return c
}

// StreamStats is a snapshot of cumulative descriptor I/O for diagnostics.
type StreamStats struct {
	BytesWritten int64
	BytesRead    int64
}

// StatsFor reports the total bytes moved through sinks and sources bound to
// the given descriptor since process start.
func StatsFor(fd int) StreamStats {
	c, ok := fdStats.Load(fd)
	if !ok {
		return StreamStats{}
	}
	return StreamStats{
		BytesWritten: c.bytesOut.Load(),
		BytesRead:    c.bytesIn.Load(),
	}
}

// Stats reports the totals across all descriptors.
func Stats() StreamStats {
	var total StreamStats
	fdStats.Range(func(_ int, c *streamCounters) bool {
		total.BytesWritten += c.bytesOut.Load()
		total.BytesRead += c.bytesIn.Load()
		return true
	})
	return total
}
