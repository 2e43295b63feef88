package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Durations of the synthesized effects.
const (
	jumpDuration   = 90 * time.Millisecond
	scoreNote      = 70 * time.Millisecond
	hitDuration    = 120 * time.Millisecond
	dieDuration    = 450 * time.Millisecond
	swooshDuration = 180 * time.Millisecond
)

// Sound synthesizes the effect for an event. volume is a log2 adjustment:
// 0 plays at full level and each step of -1 halves it.
// Every returned streamer is finite.
func Sound(e flappy.AudioEvent, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case flappy.SoundJump:
		// Short upward chirp
		s = tone(420, 780, jumpDuration, WaveSquare, rate)
	case flappy.SoundScore:
		s = beep.Seq(
			chime(988, scoreNote, rate),
			chime(1319, scoreNote*2, rate),
		)
	case flappy.SoundHit:
		s = beep.Mix(
			gain(tone(0, 0, hitDuration, WaveNoise, rate), 0.6),
			gain(tone(140, 90, hitDuration, WaveSaw, rate), 0.5),
		)
	case flappy.SoundDie:
		s = tone(660, 110, dieDuration, WaveSine, rate)
	case flappy.SoundSwoosh:
		s = NewEnvelope(NewSweep(0, 0, swooshDuration, WaveNoise, rate), swooshDuration, swooshDuration/3, swooshDuration/2, rate)
		volume--
	default:
		return nil
	}
	return newVolume(s, volume)
}

// chime is a plain sine note.
func chime(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist; fall back to the local oscillator.
		return tone(freq, freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, 3*time.Millisecond, d/2, rate)
}

// Duration returns the length of an event's effect.
func Duration(e flappy.AudioEvent) time.Duration {
	switch e {
	case flappy.SoundJump:
		return jumpDuration
	case flappy.SoundScore:
		return 3 * scoreNote
	case flappy.SoundHit:
		return hitDuration
	case flappy.SoundDie:
		return dieDuration
	case flappy.SoundSwoosh:
		return swooshDuration
	default:
		return 0
	}
}
