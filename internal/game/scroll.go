package game

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	smoothScrollTime = 600 * time.Millisecond
	wheelStep        = 48.0
)

// scroller tracks the document scroll offset and smooth scroll animations.
type scroller struct {
	y float64

	tween *gween.Tween
	start time.Time
}

// scrollTo starts a smooth scroll towards to.
func (s *scroller) scrollTo(to float64, now time.Time) {
	s.tween = gween.New(float32(s.y), float32(to), float32(smoothScrollTime.Seconds()), ease.OutCubic)
	s.start = now
}

// wheel scrolls immediately and cancels any smooth scroll.
func (s *scroller) wheel(dy, limit float64) {
	s.tween = nil
	s.y = clamp(s.y-dy*wheelStep, 0, limit)
}

func (s *scroller) step(now time.Time, limit float64) {
	if s.tween != nil {
		y, done := s.tween.Set(float32(now.Sub(s.start).Seconds()))
		s.y = float64(y)
		if done {
			s.tween = nil
		}
	}
	s.y = clamp(s.y, 0, limit)
}
