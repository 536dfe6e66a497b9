// Package audio plays short synthesized sound effects for game events.
//
// Sounds are generated on the fly; no audio files are shipped. When the
// output device cannot be opened the game keeps running silently.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dasher/internal/core"
)

// SampleRate is the output sample rate for every effect.
const SampleRate = beep.SampleRate(44100)

// Effects plays one sound per game event. A nil *Effects is valid and silent.
type Effects struct {
	mu          sync.Mutex
	muted       bool
	initialized bool
}

// NewEffects creates an effects player. Muted players never touch the device.
func NewEffects(muted bool) *Effects {
	return &Effects{muted: muted}
}

// Init opens the speaker.
func (fx *Effects) Init() error {
	if fx == nil {
		return nil
	}
	fx.mu.Lock()
	defer fx.mu.Unlock()

	if fx.muted || fx.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	fx.initialized = true
	return nil
}

// Play starts the sound for e without waiting for it to finish.
func (fx *Effects) Play(e core.Event) {
	if fx == nil {
		return
	}
	fx.mu.Lock()
	defer fx.mu.Unlock()

	if !fx.initialized {
		return
	}
	if s := Sound(e, SampleRate); s != nil {
		speaker.Play(s)
	}
}

// PlayAll plays the sound of every event in a tick result.
func (fx *Effects) PlayAll(events []core.Event) {
	for _, e := range events {
		fx.Play(e)
	}
}

// Close releases the speaker.
func (fx *Effects) Close() {
	if fx == nil {
		return
	}
	fx.mu.Lock()
	defer fx.mu.Unlock()

	if fx.initialized {
		speaker.Close()
		fx.initialized = false
	}
}

// Sound builds the finite streamer for an event, or nil if it has none.
func Sound(e core.Event, sr beep.SampleRate) beep.Streamer {
	switch e {
	case core.EventJump:
		return quieter(chirp(sr, 420, 880, 120*time.Millisecond))
	case core.EventCrash:
		return quieter(beep.Seq(
			tone(sr, 220, 90*time.Millisecond),
			tone(sr, 110, 220*time.Millisecond),
		))
	case core.EventFinish:
		// C major arpeggio
		return quieter(beep.Seq(
			tone(sr, 523.25, 110*time.Millisecond),
			tone(sr, 659.25, 110*time.Millisecond),
			tone(sr, 783.99, 220*time.Millisecond),
		))
	default:
		return nil
	}
}

// PCM renders the sound for e as signed 16-bit little-endian stereo samples,
// the format of ebiten's audio players. Returns nil if e has no sound.
func PCM(e core.Event, sr beep.SampleRate) []byte {
	s := Sound(e, sr)
	if s == nil {
		return nil
	}

	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				x := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok {
			return out
		}
	}
}

// tone is a sine wave at freq Hz cut to d. Out of range frequencies give silence.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Take(sr.N(d), beep.Silence(-1))
	}
	return beep.Take(sr.N(d), sine)
}

// chirp sweeps linearly from f0 to f1 Hz over d with a fade-out.
func chirp(sr beep.SampleRate, f0, f1 float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	phase := 0.0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			p := float64(pos) / float64(total)
			freq := f0 + (f1-f0)*p
			phase += 2 * math.Pi * freq / float64(sr)
			v := math.Sin(phase) * (1 - p)
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// quieter halves the amplitude so effects sit under other desktop audio.
func quieter(s beep.Streamer) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -1}
}
