// Package audio plays a short tone when the worm eats.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"worm-game/game/types"
)

const sampleRate = beep.SampleRate(44100)

// pitches per food kind; richer food sounds higher
var pitches = map[types.FoodKind]float64{
	1: 660,
	2: 880,
	3: 1320,
}

type Chime struct {
	enabled bool
}

// NewChime opens the speaker. The error is informational: the returned
// Chime is always usable and stays silent if the speaker failed.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Chime{}, err
	}
	return &Chime{enabled: true}, nil
}

// Food plays the tone for kind
func (c *Chime) Food(kind types.FoodKind) {
	if c == nil || !c.enabled {
		return
	}

	freq, ok := pitches[kind]
	if !ok {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

func (c *Chime) Close() {
	if c != nil && c.enabled {
		speaker.Close()
	}
}
