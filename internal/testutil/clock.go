package testutil

import (
	"sync"
	"time"
)

// FixedClock provides a thread-safe deterministic time source for tests.
//
// Unlike time.Now, FixedClock only moves when a test advances it. This
// enables golden comparison of rendered receipts, which embed the
// finalize timestamp.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type FixedClock struct {
	mu sync.Mutex
	t  time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

// Now returns the current instant without advancing.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Set pins the clock to a new instant. Used for test reuse.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// StaticIntn returns an intn function that always yields v.
// Used to pin the random suffix of generated receipt numbers.
func StaticIntn(v int) func(int) int {
	return func(int) int { return v }
}
