package bell

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

type fakeBeeper struct {
	rings int
	err   error
}

func (f *fakeBeeper) Beep() error {
	f.rings++
	return f.err
}

func TestTerminalRing(t *testing.T) {
	fb := &fakeBeeper{}
	r := Terminal{Screen: fb}
	if err := r.Ring(); err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	if fb.rings != 1 {
		t.Errorf("rings = %d, want 1", fb.rings)
	}

	fb.err = errors.New("no bell")
	if err := r.Ring(); err == nil {
		t.Error("expected beeper error to propagate")
	}

	if err := (Terminal{}).Ring(); err != nil {
		t.Errorf("nil screen should be a no-op, got %v", err)
	}
}

func TestOffRing(t *testing.T) {
	if err := (Off{}).Ring(); err != nil {
		t.Errorf("Off.Ring returned %v", err)
	}
}

func TestToneStreamerLength(t *testing.T) {
	tone := NewTone(880, 50*time.Millisecond)
	s, err := tone.Streamer()
	if err != nil {
		t.Fatalf("Streamer failed: %v", err)
	}

	want := sampleRate.N(50 * time.Millisecond)
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestToneRejectsBadParameters(t *testing.T) {
	tests := []struct {
		name string
		tone *Tone
	}{
		{"Zero frequency", NewTone(0, time.Second)},
		{"Zero duration", NewTone(440, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.tone.Ring(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestToneRingPlays(t *testing.T) {
	tone := NewTone(440, 10*time.Millisecond)
	var played []beep.Streamer
	tone.play = func(s beep.Streamer) { played = append(played, s) }

	if err := tone.Ring(); err != nil {
		t.Fatalf("Ring failed: %v", err)
	}
	if err := tone.Ring(); err != nil {
		t.Fatalf("second Ring failed: %v", err)
	}
	if len(played) != 2 {
		t.Errorf("played %d streams, want 2", len(played))
	}
}
