// Package pool provides pooled chunk buffers for the scanner's read loop.
//
// A scanner owns exactly one chunk buffer for its lifetime. Pooling matters
// for callers that scan many files sequentially with the default 1 MiB
// capacity: reusing the buffer avoids a large allocation per scan.
package pool

import "sync"

const (
	// ChunkBufferDefaultSize is the capacity of freshly allocated pooled
	// buffers, matching the scanner's default chunk capacity.
	ChunkBufferDefaultSize = 1024 * 1024 // 1MiB

	// ChunkBufferMaxThreshold bounds what the pool retains. Buffers grown
	// beyond this (via the scanner's growth policy) are dropped on release
	// so one oversized scan cannot pin memory for every later scan.
	ChunkBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ChunkBuffer is a fixed-capacity byte buffer owned by one scanner's read
// loop. B always has len(B) == cap(B); the scanner tracks its own consumed
// and buffered cursors over it.
type ChunkBuffer struct {
	B []byte
}

var chunkBufferPool = sync.Pool{
	New: func() any {
		return &ChunkBuffer{B: make([]byte, ChunkBufferDefaultSize)}
	},
}

// GetChunkBuffer returns a buffer with at least the requested capacity,
// reusing a pooled one when it is large enough.
func GetChunkBuffer(capacity int) *ChunkBuffer {
	cb, _ := chunkBufferPool.Get().(*ChunkBuffer)
	if cap(cb.B) < capacity {
		cb.B = make([]byte, capacity)
	}
	cb.B = cb.B[:capacity]

	return cb
}

// PutChunkBuffer returns a buffer to the pool for reuse. Buffers above
// ChunkBufferMaxThreshold are discarded.
func PutChunkBuffer(cb *ChunkBuffer) {
	if cb == nil || cap(cb.B) > ChunkBufferMaxThreshold {
		return
	}
	chunkBufferPool.Put(cb)
}

// Grow replaces B with a copy of itself in a buffer of the given capacity.
// It panics if capacity is smaller than the current length, since the
// scanner only ever grows.
func (cb *ChunkBuffer) Grow(capacity int) {
	if capacity < len(cb.B) {
		panic("pool: Grow called with capacity below current length")
	}
	if capacity <= cap(cb.B) {
		cb.B = cb.B[:capacity]
		return
	}
	grown := make([]byte, capacity)
	copy(grown, cb.B)
	cb.B = grown
}
