// Package frame provides a requestAnimationFrame-style scheduler driven by
// the game tick.
package frame

import (
	"github.com/iburimskiy/sparkle/internal/particle"
)

type request struct {
	id particle.FrameID
	fn func()
}

// Scheduler queues callbacks for the next tick. Callbacks requested while a
// tick is running are deferred to the following tick.
type Scheduler struct {
	next    particle.FrameID
	queue   []request
	running []request
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame queues fn for the next Tick.
func (s *Scheduler) RequestFrame(fn func()) particle.FrameID {
	s.next++
	s.queue = append(s.queue, request{id: s.next, fn: fn})
	return s.next
}

// CancelFrame drops a queued callback. Unknown or already-run ids are ignored.
func (s *Scheduler) CancelFrame(id particle.FrameID) {
	if id == 0 {
		return
	}
	for i, r := range s.queue {
		if r.id == id {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
	// A callback cancelled from inside the tick that would run it.
	for i, r := range s.running {
		if r.id == id {
			s.running[i].fn = nil
			return
		}
	}
}

// Tick runs every callback queued before it was called, in request order.
func (s *Scheduler) Tick() {
	s.running, s.queue = s.queue, nil
	for i := range s.running {
		if fn := s.running[i].fn; fn != nil {
			s.running[i].fn = nil
			fn()
		}
	}
	s.running = nil
}

// Pending returns the number of callbacks waiting for the next tick.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}
