package effects

import (
	"math"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// Throttle lets through at most one call per interval. Time is passed in
// by the caller, so the frame clock drives it.
type Throttle struct {
	lim *rate.Limiter
}

func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

// Allow reports whether a call at now may run, and records it if so.
func (t *Throttle) Allow(now time.Time) bool {
	return t.lim.AllowN(now, 1)
}

// counterStep is the nominal frame length the counter increment is based on.
const counterStep = 16 * time.Millisecond

// Counter animates a stat from 0 up to Target, one step per frame.
type Counter struct {
	Target int
	Rect   Rect

	current   float64
	increment float64
	text      string
	done      bool
}

// NewCounter prepares a counter that reaches target after roughly duration.
func NewCounter(target int, duration time.Duration, r Rect) *Counter {
	steps := float64(duration) / float64(counterStep)
	if steps < 1 {
		steps = 1
	}
	return &Counter{
		Target:    target,
		Rect:      r,
		increment: float64(target) / steps,
		text:      "0+",
	}
}

// Step advances one frame. It returns true while the count is still rising.
func (c *Counter) Step() bool {
	if c.done {
		return false
	}
	c.current += c.increment
	if c.current < float64(c.Target) {
		c.text = strconv.Itoa(int(math.Floor(c.current))) + "+"
		return true
	}
	c.text = strconv.Itoa(c.Target) + "+"
	c.done = true
	return false
}

func (c *Counter) Text() string { return c.text }
func (c *Counter) Done() bool   { return c.done }
