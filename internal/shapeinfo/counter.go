package shapeinfo

import (
	"fmt"
	"math"
	"sync/atomic"
)

// Counter accumulates the bytes consumed by created descriptors.
// Implementations must be safe for concurrent use and never decrease.
type Counter interface {
	Add(n int64) error
	Load() int64
}

// AtomicCounter is a lock-free Counter.
type AtomicCounter struct {
	v atomic.Int64
}

// Add increments the counter by n. Negative increments are rejected, as is
// any increment that would overflow int64; the counter is unchanged then.
func (c *AtomicCounter) Add(n int64) error {
	if n < 0 {
		return fmt.Errorf("counter: negative increment %d", n)
	}
	for {
		cur := c.v.Load()
		if cur > math.MaxInt64-n {
			return overflow("count", "bytes", "%d + %d exceeds int64", cur, n)
		}
		if c.v.CompareAndSwap(cur, cur+n) {
			return nil
		}
	}
}

// Load returns the current total.
func (c *AtomicCounter) Load() int64 {
	return c.v.Load()
}
