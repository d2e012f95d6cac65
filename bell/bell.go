// Package bell provides the ringers behind Session.Beep: the terminal BEL,
// a synthesized sine tone on the audio device, or nothing.
package bell

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Ringer sounds the bell once
type Ringer interface {
	Ring() error
}

// Beeper is satisfied by tcell.Screen
type Beeper interface {
	Beep() error
}

// Terminal rings the terminal's own bell
type Terminal struct {
	Screen Beeper
}

// Ring implements Ringer
func (t Terminal) Ring() error {
	if t.Screen == nil {
		return nil
	}
	return t.Screen.Beep()
}

// Off never makes a sound
type Off struct{}

// Ring implements Ringer
func (Off) Ring() error { return nil }

const sampleRate = beep.SampleRate(48000)

// Tone plays a short sine tone through the default audio device.
// The speaker is initialized on first Ring.
type Tone struct {
	Frequency float64
	Duration  time.Duration

	mu          sync.Mutex
	initialized bool

	// play is swapped in tests to capture the streamer instead of the speaker
	play func(beep.Streamer)
}

// NewTone creates a tone ringer
func NewTone(frequency float64, duration time.Duration) *Tone {
	return &Tone{
		Frequency: frequency,
		Duration:  duration,
	}
}

// Streamer builds the finite tone stream
func (t *Tone) Streamer() (beep.Streamer, error) {
	if t.Frequency <= 0 || t.Duration <= 0 {
		return nil, fmt.Errorf("bell: tone needs positive frequency and duration")
	}
	sine, err := generators.SineTone(sampleRate, t.Frequency)
	if err != nil {
		return nil, fmt.Errorf("bell: sine tone: %w", err)
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

// Ring implements Ringer
func (t *Tone) Ring() error {
	s, err := t.Streamer()
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.play != nil {
		t.play(s)
		return nil
	}

	if !t.initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
			return fmt.Errorf("bell: speaker init: %w", err)
		}
		t.initialized = true
	}
	speaker.Play(s)
	return nil
}
