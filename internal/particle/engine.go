// Package particle implements the frame-driven particle engine: it spawns
// short-lived particles, advances them once per display frame and retires
// them when their life runs out.
package particle

import (
	"math/rand/v2"
)

// Handle is the visual representation mirroring one particle.
type Handle interface {
	Position(x, y float64)
	Opacity(v float64)
	Dispose()
}

// Renderer allocates rendering handles.
type Renderer interface {
	Allocate(x, y, size float64, color string, opacity float64) Handle
}

// Viewport reports the current drawable area.
type Viewport interface {
	Size() (w, h float64)
}

// FrameID identifies a scheduled frame callback. Zero means none.
type FrameID uint64

// Scheduler runs a callback once before the next display frame.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Deps bundles the capabilities an Engine consumes.
type Deps struct {
	Viewport  Viewport
	Renderer  Renderer
	Scheduler Scheduler
}

// Option configures an Engine.
type Option func(*Engine)

// WithTuning replaces the default constants.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithRand sets the random source used for defaults.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// Engine owns the live particle collection and its frame loop. It is not
// safe for concurrent use; all calls are expected from the frame goroutine.
type Engine struct {
	view   Viewport
	render Renderer
	sched  Scheduler
	tuning Tuning
	rng    *rand.Rand

	particles []*Particle
	frame     FrameID
}

// New creates an idle engine.
func New(d Deps, opts ...Option) *Engine {
	e := &Engine{
		view:   d.Viewport,
		render: d.Renderer,
		sched:  d.Scheduler,
		tuning: DefaultTuning(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTuning swaps the constants used by subsequent spawns and frames.
func (e *Engine) SetTuning(t Tuning) {
	e.tuning = t
}

// Tuning returns the constants in use.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Running reports whether a frame update is scheduled.
func (e *Engine) Running() bool {
	return e.frame != 0
}

// Particles returns a snapshot of the live collection.
func (e *Engine) Particles() []*Particle {
	out := make([]*Particle, len(e.particles))
	copy(out, e.particles)
	return out
}

// Create spawns one particle and appends it to the live collection. If the
// loop is idle it is restarted on the next frame.
func (e *Engine) Create(o Origin, opts Options) *Particle {
	t := e.tuning
	w, h := e.view.Size()

	p := &Particle{
		X:       e.coord(o.X, w),
		Y:       e.coord(o.Y, h),
		VX:      e.orUniform(opts.VX, -t.Speed, t.Speed),
		VY:      e.orUniform(opts.VY, -t.Speed, t.Speed),
		Size:    e.positiveOr(opts.Size, func() float64 { return e.uniform(t.SizeMin, t.SizeMax) }),
		Color:   opts.Color,
		Gravity: t.Gravity,
	}
	if p.Color == "" {
		p.Color = e.pickColor()
	}
	p.Life = e.positiveOr(opts.Life, func() float64 { return 1 })
	p.MaxLife = p.Life
	if opts.Gravity != nil {
		p.Gravity = *opts.Gravity
	}

	p.handle = e.render.Allocate(p.X, p.Y, p.Size, p.Color, p.Life)
	e.particles = append(e.particles, p)

	if e.frame == 0 {
		e.frame = e.sched.RequestFrame(e.Update)
	}
	return p
}

// Update advances every live particle by one frame, retires the expired ones
// and schedules the next frame while any remain.
func (e *Engine) Update() {
	if e.frame != 0 {
		e.sched.CancelFrame(e.frame)
		e.frame = 0
	}

	t := e.tuning
	w, h := e.view.Size()

	live := e.particles[:0]
	for _, p := range e.particles {
		if p.Life <= 0 {
			p.handle.Dispose()
			continue
		}

		p.VX *= t.Drag
		p.VY *= t.Drag
		p.VY += p.Gravity

		p.X += p.VX
		p.Y += p.VY
		p.Life -= t.Decay

		if p.X < 0 || p.X > w {
			p.VX *= -t.Bounce
		}
		if p.Y < 0 || p.Y > h {
			p.VY *= -t.Bounce
		}

		if p.Life <= 0 {
			p.handle.Dispose()
			continue
		}
		p.handle.Position(p.X, p.Y)
		p.handle.Opacity(p.Life)
		live = append(live, p)
	}
	clear(e.particles[len(live):])
	e.particles = live

	if len(e.particles) > 0 {
		e.frame = e.sched.RequestFrame(e.Update)
	}
}

// Emit spawns count particles at the same origin with the same options, then
// runs one Update so the burst is visible immediately. A zero count uses the
// default burst size; a negative one spawns nothing.
func (e *Engine) Emit(o Origin, count int, opts Options) {
	if count == 0 {
		count = e.tuning.Burst
	}
	for i := 0; i < count; i++ {
		e.Create(o, opts)
	}
	e.Update()
}

// Clear retires every particle and cancels the pending frame.
func (e *Engine) Clear() {
	for _, p := range e.particles {
		p.handle.Dispose()
	}
	clear(e.particles)
	e.particles = e.particles[:0]

	if e.frame != 0 {
		e.sched.CancelFrame(e.frame)
		e.frame = 0
	}
}

func (e *Engine) coord(v *float64, extent float64) float64 {
	if v != nil {
		return *v
	}
	return e.rng.Float64() * extent
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func (e *Engine) orUniform(v *float64, lo, hi float64) float64 {
	if v != nil {
		return *v
	}
	return e.uniform(lo, hi)
}

func (e *Engine) positiveOr(v *float64, def func() float64) float64 {
	if v != nil && *v > 0 {
		return *v
	}
	return def()
}

func (e *Engine) pickColor() string {
	pal := e.tuning.Palette
	if len(pal) == 0 {
		return "#ffffff"
	}
	return pal[e.rng.IntN(len(pal))]
}
