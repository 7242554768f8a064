package game

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// easeOut maps elapsed onto a decelerating 0..1 curve over d.
func easeOut(elapsed, d time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= d {
		return 1
	}
	return float64(ease.OutCubic(float32(elapsed.Seconds()), 0, 1, float32(d.Seconds())))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
