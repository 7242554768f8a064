// Package audio plays short synthesized sounds for particle bursts.
package audio

import (
	"math"

	"github.com/faiface/beep"
)

// Pop is a short sine blip with an exponential decay, the sound of a burst.
type Pop struct {
	freq  float64 // Hz
	rate  beep.SampleRate
	total int // length in samples
	pos   int
}

// NewPop returns a pop of freq Hz lasting about 120ms at rate.
func NewPop(rate beep.SampleRate, freq float64) *Pop {
	return &Pop{
		freq:  freq,
		rate:  rate,
		total: rate.N(popLength),
	}
}

func (p *Pop) Stream(samples [][2]float64) (int, bool) {
	if p.pos >= p.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if p.pos >= p.total {
			break
		}
		t := float64(p.pos) / float64(p.rate)
		env := math.Exp(-t * decayRate)
		v := math.Sin(2*math.Pi*p.freq*t) * env
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
		n++
	}
	return n, true
}

func (p *Pop) Err() error { return nil }

// Len returns the pop length in samples.
func (p *Pop) Len() int { return p.total }
