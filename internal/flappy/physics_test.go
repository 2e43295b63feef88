package flappy

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

const eps = 1e-9

func TestIntegrateSemiImplicitEuler(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics

	tests := []struct {
		name string
		vy   float64
		dt   float64
	}{
		{"at rest", 0, 1.0 / 60},
		{"rising", 400, 1.0 / 60},
		{"falling", -250, 1.0 / 30},
		{"large step", 0, 0.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := PlayerState{Y: 10, VelocityY: tc.vy, Gravity: 980}
			Integrate(&p, tc.dt, phys)

			wantV := tc.vy - 980*tc.dt
			if math.Abs(p.VelocityY-wantV) > eps {
				t.Errorf("velocity = %f, expected %f", p.VelocityY, wantV)
			}
			// Position uses the updated velocity
			wantY := 10 + wantV*tc.dt
			if math.Abs(p.Y-wantY) > eps {
				t.Errorf("y = %f, expected %f", p.Y, wantY)
			}
		})
	}
}

func TestFlapSetsVelocity(t *testing.T) {
	var q EventQueue
	for _, vy := range []float64{-900, 0, 150} {
		p := PlayerState{VelocityY: vy}
		Flap(&p, 400, &q)
		if p.VelocityY != 400 {
			t.Errorf("Flap from vy=%f gave %f, expected 400", vy, p.VelocityY)
		}
	}
	events := q.Drain()
	if len(events) != 3 || events[0] != SoundJump {
		t.Errorf("expected three jump events, got %v", events)
	}
}

func TestNoTerminalVelocity(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics
	p := PlayerState{Gravity: 980}
	for i := 0; i < 600; i++ {
		Integrate(&p, 1.0/60, phys)
	}
	// Ten seconds of free fall keeps accelerating.
	if p.VelocityY > -9700 {
		t.Errorf("velocity = %f, expected unbounded fall near -9800", p.VelocityY)
	}
}

func TestTiltClamp(t *testing.T) {
	phys := config.DefaultFlappyConfig().Physics

	tests := []struct {
		vy   float64
		tilt float64
	}{
		{0, 0},
		{150, 0.25},
		{10000, 0.5},
		{-10000, -0.5},
	}

	for _, tc := range tests {
		// dt of zero leaves velocity untouched
		p := PlayerState{VelocityY: tc.vy, Gravity: 980}
		Integrate(&p, 0, phys)
		if math.Abs(p.Tilt-tc.tilt) > eps {
			t.Errorf("tilt(vy=%f) = %f, expected %f", tc.vy, p.Tilt, tc.tilt)
		}
	}
}

func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	p := NewPlayer(cfg, CharacterJiYi)
	if p.X != -200 || p.Y != 0 || p.Radius != 10 || p.Gravity != 980 || !p.Alive {
		t.Errorf("unexpected player %+v", p)
	}
}
