// Package effects turns page interactions into particle spawns. It holds the
// spawn presets, the ambient repopulation policy and delayed bursts.
package effects

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/sparkle/internal/particle"
)

// Spawner is the part of the particle engine the effects need.
type Spawner interface {
	Create(o particle.Origin, opts particle.Options) *particle.Particle
	Emit(o particle.Origin, count int, opts particle.Options)
	Update()
	Len() int
}

// Rect is an on-screen box in viewport coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// TopCenter is the middle of the top edge.
func (r Rect) TopCenter() (float64, float64) {
	return r.X + r.W/2, r.Y
}

// Ambient configures background repopulation.
type Ambient struct {
	Count    int
	Cap      int
	Interval time.Duration
	Disabled bool
}

type delayed struct {
	at time.Time
	fn func()
}

// Director owns the effect presets. It must be driven from the frame
// goroutine: Tick once per frame, presets from input handlers.
type Director struct {
	fx      Spawner
	rng     *rand.Rand
	ambient Ambient

	now         time.Time
	lastAmbient time.Time
	queue       []delayed
	trail       *Throttle
}

// NewDirector builds a director spawning into fx.
func NewDirector(fx Spawner, rng *rand.Rand, ambient Ambient) *Director {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Director{
		fx:      fx,
		rng:     rng,
		ambient: ambient,
		trail:   NewThrottle(50 * time.Millisecond),
	}
}

// Start fills the background once and arms the ambient timer.
func (d *Director) Start(now time.Time) {
	d.now = now
	d.lastAmbient = now
	if !d.ambient.Disabled {
		d.AmbientFill()
	}
}

// SetAmbient replaces the repopulation policy.
func (d *Director) SetAmbient(a Ambient) {
	d.ambient = a
}

// Tick runs delayed bursts that are due and the ambient policy.
func (d *Director) Tick(now time.Time) {
	d.now = now

	if len(d.queue) > 0 {
		due := d.queue
		d.queue = nil
		for _, q := range due {
			if now.Before(q.at) {
				d.queue = append(d.queue, q)
				continue
			}
			q.fn()
		}
	}

	if d.ambient.Disabled || d.ambient.Interval <= 0 {
		return
	}
	if now.Sub(d.lastAmbient) >= d.ambient.Interval {
		d.lastAmbient = now
		if d.fx.Len() < d.ambient.Cap {
			d.AmbientFill()
		}
	}
}

// Pending returns the number of delayed bursts not yet run.
func (d *Director) Pending() int {
	return len(d.queue)
}

func (d *Director) after(delay time.Duration, fn func()) {
	d.queue = append(d.queue, delayed{at: d.now.Add(delay), fn: fn})
}

func (d *Director) between(lo, hi float64) float64 {
	return lo + d.rng.Float64()*(hi-lo)
}

func (d *Director) f(lo, hi float64) *float64 {
	return particle.F(d.between(lo, hi))
}
