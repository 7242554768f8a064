package audio

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	popLength = 120 * time.Millisecond
	decayRate = 30.0

	baseFreq = 660.0
	minFreq  = 220.0
)

// Player plays pops through the default output device. A Player whose
// device failed to open is silent.
type Player struct {
	rate    beep.SampleRate
	volume  float64
	enabled bool
	// play is speaker.Play unless replaced in tests.
	play func(s ...beep.Streamer)
}

// NewPlayer opens the speaker at sampleRate. On failure it logs once and
// returns a silent player along with the error.
func NewPlayer(sampleRate int, volume float64) (*Player, error) {
	p := &Player{rate: beep.SampleRate(sampleRate), volume: volume, play: speaker.Play}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		log.Printf("audio: speaker unavailable, sounds disabled: %v", err)
		return p, fmt.Errorf("init speaker: %w", err)
	}
	p.enabled = true
	return p, nil
}

// Silent returns a player that never makes a sound.
func Silent() *Player {
	return &Player{rate: 44100}
}

// Enabled reports whether sounds are played.
func (p *Player) Enabled() bool {
	return p.enabled
}

// Burst plays a pop whose pitch drops as the burst grows.
func (p *Player) Burst(count int) {
	if !p.enabled || count <= 0 {
		return
	}
	p.play(p.voice(count))
}

func (p *Player) voice(count int) beep.Streamer {
	return &effects.Volume{
		Streamer: NewPop(p.rate, pitch(count)),
		Base:     2,
		Volume:   math.Log2(p.volume),
		Silent:   p.volume <= 0,
	}
}

func pitch(count int) float64 {
	f := baseFreq / math.Sqrt(float64(count))
	if f < minFreq {
		f = minFreq
	}
	return f
}
