// Package render draws particle sprites with ebiten.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sparkle/internal/particle"
)

// glowScale is the radius of the soft halo relative to the sprite radius.
const glowScale = 2.2

// Sprite is the rendering handle of one particle.
type Sprite struct {
	X, Y  float64
	Size  float64
	Color color.NRGBA
	Alpha float64
	layer *Layer
	dead  bool
}

// Position moves the sprite.
func (s *Sprite) Position(x, y float64) {
	s.X, s.Y = x, y
}

// Opacity sets the sprite alpha in [0, 1].
func (s *Sprite) Opacity(v float64) {
	s.Alpha = Clamp01(v)
}

// Dispose removes the sprite from its layer. Further calls are no-ops.
func (s *Sprite) Dispose() {
	if s.dead {
		return
	}
	s.dead = true
	s.layer.dead++
	s.layer.live--
}

// Disposed reports whether the sprite was released.
func (s *Sprite) Disposed() bool {
	return s.dead
}

// Layer owns the sprites of one particle engine and draws them each frame.
type Layer struct {
	sprites []*Sprite
	live    int
	dead    int
	// Glow draws a faint halo behind every sprite.
	Glow bool
}

// NewLayer returns an empty layer.
func NewLayer() *Layer {
	return &Layer{Glow: true}
}

var _ particle.Renderer = (*Layer)(nil)

// Allocate implements particle.Renderer.
func (l *Layer) Allocate(x, y, size float64, c string, opacity float64) particle.Handle {
	s := &Sprite{
		X:     x,
		Y:     y,
		Size:  size,
		Color: ParseColor(c),
		Alpha: Clamp01(opacity),
		layer: l,
	}
	l.sprites = append(l.sprites, s)
	l.live++
	if l.dead > 64 && l.dead > l.live {
		l.compact()
	}
	return s
}

// Len returns the number of live sprites.
func (l *Layer) Len() int {
	return l.live
}

// Sprites returns the live sprites in allocation order.
func (l *Layer) Sprites() []*Sprite {
	l.compact()
	out := make([]*Sprite, len(l.sprites))
	copy(out, l.sprites)
	return out
}

func (l *Layer) compact() {
	if l.dead == 0 {
		return
	}
	live := l.sprites[:0]
	for _, s := range l.sprites {
		if !s.dead {
			live = append(live, s)
		}
	}
	clear(l.sprites[len(live):])
	l.sprites = live
	l.dead = 0
}

// Draw renders every live sprite onto screen.
func (l *Layer) Draw(screen *ebiten.Image) {
	l.compact()
	for _, s := range l.sprites {
		if s.Alpha <= 0 {
			continue
		}
		r := float32(s.Size / 2)
		if l.Glow {
			vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), r*glowScale, WithAlpha(s.Color, s.Alpha*0.25), true)
		}
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), r, WithAlpha(s.Color, s.Alpha), true)
	}
}
