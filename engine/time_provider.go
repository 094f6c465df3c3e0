package engine

import (
	"time"

	"github.com/lixenwraith/laaame/constant"
)

// Clock is the time source read by the frame loop
type Clock interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock turns successive clock readings into clamped tick deltas
type FrameClock struct {
	src  Clock
	last time.Time
}

func NewFrameClock(src Clock) *FrameClock {
	return &FrameClock{src: src}
}

// Delta returns time since the previous call, bounded by MaxTickDelta
// The first call only primes the clock and returns zero
func (c *FrameClock) Delta() time.Duration {
	now := c.src.Now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return ClampDelta(dt)
}

// Reset forgets the previous reading so a long gap does not count as a frame
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// ClampDelta bounds dt to [0, MaxTickDelta]
func ClampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > constant.MaxTickDelta {
		return constant.MaxTickDelta
	}
	return dt
}
