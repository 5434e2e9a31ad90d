package tensor

import (
	"sync"
	"sync/atomic"
)

// Buffer is a reference-counted byte buffer backing array storage.
// Several array handles may share one Buffer; the memory is dropped when
// the last handle releases it.
type Buffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

// NewBuffer creates a zeroed buffer of size bytes with refCount = 1.
func NewBuffer(size int) *Buffer {
	buf := &Buffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

// Bytes returns the underlying memory.
// WARNING: Direct access to underlying memory. Use with caution.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the buffer size in bytes (0 once released).
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// AddRef increments the reference count (for aliasing handles).
func (b *Buffer) AddRef() {
	b.refCount.Add(1)
}

// Release decrements the reference count and deallocates if it reaches 0.
func (b *Buffer) Release() {
	if b.refCount.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// IsUnique returns true if this buffer has only one reference.
func (b *Buffer) IsUnique() bool {
	return b.refCount.Load() == 1
}

// RefCount returns the current number of references.
func (b *Buffer) RefCount() int32 {
	return b.refCount.Load()
}
