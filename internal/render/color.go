package render

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a CSS-style hex colour (#rgb, #rrggbb, #rrggbbaa) to
// NRGBA. Anything else yields opaque white.
func ParseColor(s string) color.NRGBA {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	s = strings.TrimSpace(s)

	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return white
		}
		s, alpha = s[:7], uint8(a)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return white
	}
	return toNRGBA(c, alpha)
}

// WithAlpha scales c's alpha by a (clamped to [0, 1]).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * Clamp01(a))
	return c
}

// HSV converts HSV to RGB (hue: 0-360, wrapped; saturation: 0-1, value: 0-1)
func HSV(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return toNRGBA(colorful.Hsv(h, s, v), 255)
}

func toNRGBA(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
