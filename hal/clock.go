package hal

import (
	"context"
	"sync/atomic"
	"time"
)

// TickClock is a millisecond counter advanced by a single writer goroutine,
// the software stand-in for a SysTick interrupt. Readers may see a value one
// tick stale; nothing on the read side depends on finer resolution.
type TickClock struct {
	start  time.Time
	ms     atomic.Uint32
	period time.Duration
}

// NewTickClock starts counting from now
func NewTickClock() *TickClock {
	return &TickClock{
		start:  time.Now(),
		period: time.Millisecond,
	}
}

// NowMS returns milliseconds since start
func (c *TickClock) NowMS() uint32 {
	return c.ms.Load()
}

// Run advances the counter until ctx is done (blocking - run in goroutine)
func (c *TickClock) Run(ctx context.Context) {
	ticker := time.NewTicker(c.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.advance()
		}
	}
}

// advance stores elapsed time rather than counting ticks so coalesced
// ticker fires never make the clock drift
func (c *TickClock) advance() {
	c.ms.Store(uint32(time.Since(c.start) / time.Millisecond))
}
