package window

import (
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/dasher/internal/audio"
	"github.com/vovakirdan/dasher/internal/core"
)

// sounds plays the synthesized effects through ebiten's audio context.
// The beep speaker is not used here: only one output context may exist per
// process and ebiten owns it in the window.
type sounds struct {
	ctx     *ebitenaudio.Context
	players map[core.Event]*ebitenaudio.Player
}

var soundEvents = []core.Event{core.EventJump, core.EventCrash, core.EventFinish}

// newSounds renders every effect once. Returns nil when muted.
func newSounds(muted bool) *sounds {
	if muted {
		return nil
	}

	s := &sounds{
		ctx:     ebitenaudio.NewContext(int(audio.SampleRate)),
		players: make(map[core.Event]*ebitenaudio.Player, len(soundEvents)),
	}
	for _, e := range soundEvents {
		s.players[e] = s.ctx.NewPlayerFromBytes(audio.PCM(e, audio.SampleRate))
	}
	return s
}

// play restarts the effect for each event. Nil-safe.
func (s *sounds) play(events []core.Event) {
	if s == nil {
		return
	}
	for _, e := range events {
		p, ok := s.players[e]
		if !ok {
			continue
		}
		p.Rewind()
		p.Play()
	}
}

func (s *sounds) close() {
	if s == nil {
		return
	}
	for _, p := range s.players {
		p.Close()
	}
}
