package tensor

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrConstantBuffer is returned when writing to a buffer marked constant.
var ErrConstantBuffer = errors.New("buffer is constant")

// LongBuffer is a fixed-length buffer of 64-bit words.
//
// It is the storage facility behind shape descriptors: the encoder fills
// it once and then marks it constant, after which every Put fails. Reads
// are safe from any goroutine once the buffer is constant.
type LongBuffer struct {
	words    []int64
	constant atomic.Bool
}

// NewLongBuffer allocates a zeroed buffer of n words.
func NewLongBuffer(n int) *LongBuffer {
	if n < 0 {
		panic(fmt.Sprintf("negative buffer length %d", n))
	}
	return &LongBuffer{words: make([]int64, n)}
}

// Len returns the number of words.
func (b *LongBuffer) Len() int {
	return len(b.words)
}

// SizeInBytes returns the storage footprint of the buffer.
func (b *LongBuffer) SizeInBytes() int64 {
	return int64(len(b.words)) * int64(Int64.Size())
}

// Put writes v at index i.
func (b *LongBuffer) Put(i int, v int64) error {
	if b.constant.Load() {
		return ErrConstantBuffer
	}
	if i < 0 || i >= len(b.words) {
		return fmt.Errorf("index %d out of range [0, %d)", i, len(b.words))
	}
	b.words[i] = v
	return nil
}

// Get returns the word at index i. Panics if i is out of range.
func (b *LongBuffer) Get(i int) int64 {
	return b.words[i]
}

// SetConstant freezes the buffer. There is no way back.
func (b *LongBuffer) SetConstant() {
	b.constant.Store(true)
}

// IsConstant reports whether the buffer has been frozen.
func (b *LongBuffer) IsConstant() bool {
	return b.constant.Load()
}

// AsLong returns a copy of the buffer contents.
func (b *LongBuffer) AsLong() []int64 {
	out := make([]int64, len(b.words))
	copy(out, b.words)
	return out
}
