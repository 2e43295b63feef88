// Package spectate streams live game snapshots to read-only websocket
// viewers.
package spectate

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

// Frame is the wire form of one snapshot. Coordinates are world units
// rounded to one decimal.
type Frame struct {
	Session    string            `msgpack:"sid"`
	Tick       int               `msgpack:"t"`
	Phase      string            `msgpack:"ph"`
	Paused     bool              `msgpack:"pz,omitempty"`
	Score      int               `msgpack:"s"`
	HighScore  int               `msgpack:"hs"`
	Character  string            `msgpack:"c"`
	Player     PlayerFrame       `msgpack:"p"`
	Obstacles  []ObstacleFrame   `msgpack:"o"`
	Background []BackgroundFrame `msgpack:"bg"`
}

// PlayerFrame is the player transform.
type PlayerFrame struct {
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
	Tilt  float64 `msgpack:"a"`
	R     float64 `msgpack:"r"`
	Alive bool    `msgpack:"al"`
}

// ObstacleFrame is one obstacle transform.
type ObstacleFrame struct {
	ID      uint64  `msgpack:"id"`
	Variant string  `msgpack:"v"`
	X       float64 `msgpack:"x"`
	Y       float64 `msgpack:"y"`
	Upper   bool    `msgpack:"u,omitempty"`
}

// BackgroundFrame is one parallax element.
type BackgroundFrame struct {
	Layer string  `msgpack:"l"`
	X     float64 `msgpack:"x"`
	Y     float64 `msgpack:"y"`
}

// NewFrame converts a snapshot.
func NewFrame(s flappy.Snapshot) Frame {
	f := Frame{
		Session:   s.SessionID,
		Tick:      s.Tick,
		Phase:     s.Phase.String(),
		Paused:    s.Paused,
		Score:     s.Score,
		HighScore: s.HighScore,
		Character: s.Character.Name(),
		Player: PlayerFrame{
			X:     round1(s.Player.X),
			Y:     round1(s.Player.Y),
			Tilt:  math.Round(s.Player.Tilt*100) / 100,
			R:     s.Player.Radius,
			Alive: s.Player.Alive,
		},
		Obstacles:  make([]ObstacleFrame, 0, len(s.Obstacles)),
		Background: make([]BackgroundFrame, 0, len(s.Background)),
	}
	for _, o := range s.Obstacles {
		f.Obstacles = append(f.Obstacles, ObstacleFrame{
			ID:      uint64(o.ID.Generation)<<32 | uint64(o.ID.Index),
			Variant: o.Variant.Name(),
			X:       round1(o.X),
			Y:       round1(o.Y),
			Upper:   o.Upper,
		})
	}
	for _, b := range s.Background {
		f.Background = append(f.Background, BackgroundFrame{
			Layer: b.Layer.String(),
			X:     round1(b.X),
			Y:     round1(b.Y),
		})
	}
	return f
}

// Encode serializes a frame with msgpack.
func Encode(f Frame) ([]byte, error) {
	data, err := msgpack.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("spectate: encode frame: %w", err)
	}
	return data, nil
}

// Decode parses a frame produced by Encode.
func Decode(data []byte) (Frame, error) {
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return Frame{}, fmt.Errorf("spectate: decode frame: %w", err)
	}
	return f, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
