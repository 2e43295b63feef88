// Package audio turns simulation sound events into synthesized effects.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// SampleRate is the output rate of all effects.
const SampleRate = beep.SampleRate(44100)

// DefaultVolume plays effects at their synthesized level.
const DefaultVolume = 0.0

// Sink consumes sound events. Delivery is best effort.
type Sink interface {
	Play(events ...flappy.AudioEvent)
	Close()
}

// Nop discards every event.
type Nop struct{}

func (Nop) Play(...flappy.AudioEvent) {}
func (Nop) Close()                    {}

// Player plays events through the system speaker.
type Player struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
	log         *log.Logger
}

// NewPlayer opens the speaker. volume is a log2 adjustment, see Sound. When no audio device is available the
// error is returned together with a Nop sink so the game can run silently.
func NewPlayer(volume float64, logger *log.Logger) (Sink, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return Nop{}, err
	}
	return &Player{volume: volume, initialized: true, log: logger}, nil
}

// Play queues the effects of events on the speaker.
func (p *Player) Play(events ...flappy.AudioEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	for _, e := range events {
		s := p.effect(e)
		if s == nil {
			p.log.Debug("no sound for event", "event", e)
			continue
		}
		speaker.Play(s)
	}
}

// effect synthesizes e at the player's volume.
func (p *Player) effect(e flappy.AudioEvent) beep.Streamer {
	return Sound(e, SampleRate, p.volume)
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
