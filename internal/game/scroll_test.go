package game

import (
	"testing"
	"time"
)

func TestSmoothScroll(t *testing.T) {
	var s scroller
	s.scrollTo(1000, t0)

	s.step(t0.Add(smoothScrollTime/2), 2000)
	// Ease-out covers most of the distance in the first half.
	if s.y <= 500 || s.y >= 1000 {
		t.Errorf("halfway y = %v, want in (500, 1000)", s.y)
	}
	s.step(t0.Add(smoothScrollTime), 2000)
	if s.y != 1000 || s.tween != nil {
		t.Errorf("y = %v tween=%v, want 1000 and finished", s.y, s.tween)
	}
}

func TestWheelCancelsSmoothScroll(t *testing.T) {
	var s scroller
	s.scrollTo(1000, t0)
	s.wheel(-2, 2000)
	if s.tween != nil {
		t.Fatal("wheel kept the smooth scroll")
	}
	if s.y != 96 {
		t.Errorf("y = %v, want 96", s.y)
	}
	s.wheel(10, 2000)
	if s.y != 0 {
		t.Errorf("y = %v, want clamped to 0", s.y)
	}
}

func TestScrollClampsToLimit(t *testing.T) {
	var s scroller
	s.scrollTo(5000, t0)
	s.step(t0.Add(time.Second), 800)
	if s.y != 800 {
		t.Errorf("y = %v, want 800", s.y)
	}
}

func TestEaseOut(t *testing.T) {
	if v := easeOut(0, revealTime); v != 0 {
		t.Errorf("start = %v", v)
	}
	if v := easeOut(revealTime, revealTime); v != 1 {
		t.Errorf("end = %v", v)
	}
	mid := easeOut(revealTime/2, revealTime)
	if mid < 0.87 || mid > 0.88 {
		t.Errorf("mid = %v, want 0.875", mid)
	}
}
