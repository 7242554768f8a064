package notify

import (
	"time"
)

const (
	// ShowFor is how long a banner stays fully visible.
	ShowFor = 5 * time.Second
	// FadeFor is the fade-out after ShowFor.
	FadeFor = 300 * time.Millisecond
	// FadeIn is the delay before a banner starts showing.
	FadeIn = 10 * time.Millisecond
)

// Banner is one in-window message.
type Banner struct {
	Text  string
	Kind  Kind
	Since time.Time
}

// Alpha returns the banner opacity at now, 0 once it has gone.
func (b Banner) Alpha(now time.Time) float64 {
	age := now.Sub(b.Since)
	switch {
	case age < FadeIn:
		return 0
	case age < ShowFor:
		return 1
	case age < ShowFor+FadeFor:
		return 1 - float64(age-ShowFor)/float64(FadeFor)
	default:
		return 0
	}
}

// Board holds the banners currently on screen, newest last.
type Board struct {
	banners []Banner
}

// Notify implements Notifier using the wall clock.
func (b *Board) Notify(msg string, kind Kind) {
	b.Show(msg, kind, clock())
}

func (b *Board) Show(msg string, kind Kind, now time.Time) {
	b.banners = append(b.banners, Banner{Text: msg, Kind: kind, Since: now})
}

// Visible drops expired banners and returns the remaining ones.
func (b *Board) Visible(now time.Time) []Banner {
	live := b.banners[:0]
	for _, bn := range b.banners {
		if now.Sub(bn.Since) < ShowFor+FadeFor {
			live = append(live, bn)
		}
	}
	b.banners = live
	return append([]Banner(nil), live...)
}
