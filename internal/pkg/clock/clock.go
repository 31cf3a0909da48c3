package clock

import (
	"sync"
	"time"
)

// Clock is the server-side time source. Deadlines, retention and audit
// timestamps are always taken from it, never from client-supplied values.
type Clock interface {
	Now() time.Time
}

// Precision matches the resolution of timestamptz so that values read back
// from the database compare equal to the ones written.
const Precision = time.Microsecond

type SystemClock struct{}

func NewSystemClock() Clock {
	return SystemClock{}
}

func (SystemClock) Now() time.Time {
	return Normalize(time.Now())
}

// Normalize converts t to UTC at storage precision.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(Precision)
}

// FrozenClock stands still until moved. Safe for concurrent use.
type FrozenClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{now: Normalize(t)}
}

func (c *FrozenClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward, e.g. past an authorization deadline.
func (c *FrozenClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = Normalize(c.now.Add(d))
	return c.now
}
