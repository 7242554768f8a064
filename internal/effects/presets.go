package effects

import (
	"time"

	"github.com/iburimskiy/sparkle/internal/particle"
)

// Randomised option values are drawn once per preset call, so a burst
// shares them.

// AmbientFill seeds slow, faint background particles across the viewport.
func (d *Director) AmbientFill() {
	for i := 0; i < d.ambient.Count; i++ {
		d.fx.Create(particle.Anywhere, particle.Options{
			VX:      d.f(-0.25, 0.25),
			VY:      d.f(-0.25, 0.25),
			Size:    d.f(1, 3),
			Life:    d.f(0.3, 0.8),
			Gravity: particle.F(0),
		})
	}
	d.fx.Update()
}

func (d *Director) MenuToggle(r Rect) {
	x, y := r.Center()
	d.fx.Emit(particle.At(x, y), 8, particle.Options{Size: d.f(2, 5), Color: "#6366f1"})
}

func (d *Director) AnchorClick(r Rect) {
	x, y := r.Center()
	d.fx.Emit(particle.At(x, y), 10, particle.Options{Size: d.f(2, 5)})
}

// FormSubmit is the celebration burst on the submit button.
func (d *Director) FormSubmit(r Rect) {
	x, y := r.Center()
	for i := 0; i < 25; i++ {
		d.fx.Emit(particle.At(x, y), 1, particle.Options{
			VX:      d.f(-4, 4),
			VY:      d.f(-6, 2),
			Size:    d.f(2, 6),
			Life:    d.f(0.5, 1.3),
			Gravity: particle.F(0.15),
		})
	}
}

func (d *Director) Reveal(r Rect) {
	x, y := r.TopCenter()
	d.fx.Emit(particle.At(x, y), 5, particle.Options{Size: d.f(1, 3)})
}

// CounterSparkle occasionally drops a single particle inside r.
func (d *Director) CounterSparkle(r Rect) {
	if d.rng.Float64() <= 0.7 {
		return
	}
	d.fx.Emit(particle.At(r.X+d.rng.Float64()*r.W, r.Y+d.rng.Float64()*r.H), 1,
		particle.Options{Size: d.f(1, 2.5)})
}

func (d *Director) BoxClick(r Rect, color string) {
	x, y := r.Center()
	d.fx.Emit(particle.At(x, y), 20, particle.Options{Size: d.f(2, 6), Color: color})
}

func (d *Director) BoxHover(r Rect) {
	for i := 0; i < 3; i++ {
		d.after(time.Duration(i)*50*time.Millisecond, func() {
			d.fx.Emit(particle.At(r.X+d.rng.Float64()*r.W, r.Y+d.rng.Float64()*r.H), 2,
				particle.Options{Size: d.f(1, 3)})
		})
	}
}

func (d *Director) ServiceHover(r Rect) {
	x, y := r.TopCenter()
	d.fx.Emit(particle.At(x, y), 5, particle.Options{VY: particle.F(-1), Size: d.f(1, 3)})
}

func (d *Director) PortfolioHover(r Rect) {
	for i := 0; i < 4; i++ {
		d.after(time.Duration(i)*30*time.Millisecond, func() {
			d.fx.Emit(particle.At(r.X+d.rng.Float64()*r.W, r.Y), 3, particle.Options{
				VY:   d.f(1, 3),
				VX:   d.f(-1.5, 1.5),
				Size: d.f(1, 3),
			})
		})
	}
}

// MouseTrail sometimes leaves a tiny particle near the cursor. Calls are
// throttled to one per 50ms.
func (d *Director) MouseTrail(x, y float64) {
	if !d.trail.Allow(d.now) {
		return
	}
	if d.rng.Float64() <= 0.95 {
		return
	}
	d.fx.Create(particle.At(x+d.between(-10, 10), y+d.between(-10, 10)), particle.Options{
		VX:      d.f(-1, 1),
		VY:      d.f(-1, 1),
		Size:    d.f(0.5, 2),
		Life:    d.f(0.2, 0.5),
		Gravity: particle.F(0.02),
	})
	d.fx.Update()
}

func (d *Director) ButtonClick(r Rect) {
	x, y := r.Center()
	d.fx.Emit(particle.At(x, y), 15, particle.Options{
		Size:    d.f(2, 5),
		VX:      d.f(-3, 3),
		VY:      d.f(-5, 1),
		Life:    d.f(0.3, 0.9),
		Gravity: particle.F(0.1),
	})
}

func (d *Director) InputFocus(r Rect) {
	x, y := r.TopCenter()
	for i := 0; i < 3; i++ {
		d.after(time.Duration(i)*30*time.Millisecond, func() {
			d.fx.Emit(particle.At(x, y), 2, particle.Options{Size: d.f(1, 2.5)})
		})
	}
}

// BackgroundClick is the small explosion for clicks that hit nothing.
func (d *Director) BackgroundClick(x, y float64) {
	d.fx.Emit(particle.At(x, y), 3, particle.Options{
		Size: d.f(1, 3),
		VX:   d.f(-1.5, 1.5),
		VY:   d.f(-1.5, 1.5),
		Life: d.f(0.2, 0.5),
	})
}
