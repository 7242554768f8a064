package particle

// Particle is a single live visual entity. It is owned by the Engine that
// created it; callers may read it but the engine mutates it every frame.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   string
	Life    float64 // remaining normalized lifetime, (0, 1]
	MaxLife float64
	Gravity float64

	handle Handle
}

// Origin is a spawn position with optional coordinates. An unset coordinate
// is replaced by a uniform random point inside the viewport.
type Origin struct {
	X, Y *float64
}

// Anywhere spawns at a random point of the viewport.
var Anywhere = Origin{}

// At returns an Origin fixed at (x, y).
func At(x, y float64) Origin {
	return Origin{X: &x, Y: &y}
}

// Options overrides the per-particle defaults. Nil fields and an empty Color
// keep the default; a non-positive Size or Life is treated as unset.
type Options struct {
	VX, VY  *float64
	Size    *float64
	Life    *float64
	Gravity *float64
	Color   string
}

// F returns a pointer to v, for filling Options and Origin literals.
func F(v float64) *float64 {
	return &v
}

// Tuning holds the fixed per-frame constants and spawn defaults.
type Tuning struct {
	// Drag multiplies both velocity components every frame.
	Drag float64
	// Decay is the life lost every frame.
	Decay float64
	// Bounce scales a velocity component, sign flipped, while the particle
	// is outside the viewport on that axis.
	Bounce float64
	// Gravity is the default downward acceleration.
	Gravity float64
	// Speed bounds the default velocity to [-Speed, Speed] on each axis.
	Speed   float64
	SizeMin float64
	SizeMax float64
	Palette []string
	// Burst is the Emit count used when none is given.
	Burst int
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Drag:    0.98,
		Decay:   0.008,
		Bounce:  0.8,
		Gravity: 0.05,
		Speed:   2,
		SizeMin: 2,
		SizeMax: 6,
		Palette: []string{"#6366f1", "#ec4899", "#06b6d4", "#f59e0b"},
		Burst:   5,
	}
}
