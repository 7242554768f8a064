package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is one frame's worth of user input.
type input struct {
	x, y    float64
	moved   bool
	clicked bool
	wheel   float64
	chars   []rune

	backspace bool
	escape    bool
	clear     bool
	open      bool
	quit      bool
}

// inputReader samples ebiten input state and remembers the last cursor
// position to detect movement.
type inputReader struct {
	lastX, lastY int
	seen         bool
	chars        []rune
}

func (r *inputReader) poll() input {
	mx, my := ebiten.CursorPosition()
	moved := r.seen && (mx != r.lastX || my != r.lastY)
	r.lastX, r.lastY, r.seen = mx, my, true

	_, wy := ebiten.Wheel()
	r.chars = ebiten.AppendInputChars(r.chars[:0])

	return input{
		x:         float64(mx),
		y:         float64(my),
		moved:     moved,
		clicked:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		wheel:     wy,
		chars:     r.chars,
		backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		clear:     inpututil.IsKeyJustPressed(ebiten.KeyC),
		open:      inpututil.IsKeyJustPressed(ebiten.KeyO),
		quit:      inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
