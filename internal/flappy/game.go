// Package flappy implements the simulation core of a Flappy Bird-style game:
// physics, obstacle spawning and scrolling, collision, scoring and the
// session state machine. It knows nothing about terminals, audio devices or
// databases; those are reached through the Gateway and event queue.
package flappy

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Phase is a session lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseLeaderboard
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Options are the collaborators of a Game. Zero values are usable.
type Options struct {
	Logger  *log.Logger
	Gateway Gateway
	Name    string // display name written to leaderboard entries

	// Now and NewSessionID are overridable for tests.
	Now          func() time.Time
	NewSessionID func() string
}

// StepResult summarizes one tick.
type StepResult struct {
	Phase     Phase
	Prev      Phase
	Score     int
	HighScore int
	Scored    int           // points added this tick
	Spawned   bool          // a pair was spawned this tick
	Collision CollisionKind // what ended the session, if anything
}

// PhaseChanged reports whether the tick moved to another phase.
func (r StepResult) PhaseChanged() bool {
	return r.Phase != r.Prev
}

// Game owns all simulation state. It is not safe for concurrent use.
type Game struct {
	cfg     config.FlappyConfig
	rt      core.RuntimeConfig
	log     *log.Logger
	gateway Gateway
	name    string
	now     func() time.Time
	newID   func() string

	variants   []Variant
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	spawner    *Spawner

	phase     Phase
	paused    bool
	ticks     int
	character Character
	sessionID string

	player     PlayerState
	obstacles  *Arena[Obstacle]
	background *Arena[BackgroundElement]

	score     int
	highScore int
	record    SaveRecord
	lastHit   CollisionKind

	events EventQueue
}

// New validates cfg, loads the save record and returns a game in the menu.
// Configuration faults are returned as errors wrapping config.ErrInvalid.
func New(cfg config.FlappyConfig, rt core.RuntimeConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	variants := make([]Variant, 0, len(cfg.Obstacles.Variants))
	for _, name := range cfg.Obstacles.Variants {
		v, err := ParseVariant(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalid, err)
		}
		variants = append(variants, v)
	}

	g := &Game{
		cfg:        cfg,
		rt:         rt,
		log:        opts.Logger,
		gateway:    opts.Gateway,
		name:       opts.Name,
		now:        opts.Now,
		newID:      opts.NewSessionID,
		variants:   variants,
		rng:        rand.New(rand.NewSource(rt.Seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		obstacles:  NewArena[Obstacle](),
		background: NewArena[BackgroundElement](),
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.gateway == nil {
		g.gateway = nopGateway{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.newID == nil {
		g.newID = uuid.NewString
	}
	g.spawner = NewSpawner(cfg, variants, g.rng, g.difficulty)

	g.record = g.gateway.Load()
	g.highScore = g.record.HighScore
	if g.record.SelectedCharacter.Valid() {
		g.character = g.record.SelectedCharacter
	}
	g.player = NewPlayer(cfg, g.character)
	return g, nil
}

// Step advances the simulation by dt seconds with the given input.
// A phase change ends the tick.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	res := StepResult{Prev: g.phase}

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhaseLeaderboard:
		if in.Has(core.ActionCancel) {
			g.setPhase(PhaseMenu)
			g.events.Push(SoundSwoosh)
		}
	case PhasePlaying:
		g.stepPlaying(dt, in, &res)
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.startSession()
		case in.Has(core.ActionCancel):
			g.toMenu()
		}
	}

	res.Phase = g.phase
	res.Score = g.score
	res.HighScore = g.highScore
	return res
}

func (g *Game) stepMenu(in core.InputFrame) {
	if in.Empty() {
		return
	}
	switch {
	case in.Has(core.ActionSelectLeft), in.Scroll < 0:
		g.SelectCharacter(g.character.Prev())
	case in.Has(core.ActionSelectRight), in.Scroll > 0:
		g.SelectCharacter(g.character.Next())
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.events.Push(SoundSwoosh)
		g.startSession()
	case in.Has(core.ActionOpenLeaderboard):
		g.events.Push(SoundSwoosh)
		g.setPhase(PhaseLeaderboard)
	}
}

// stepPlaying runs one simulation tick:
// input, physics, spawn, scroll, collision, scoring.
func (g *Game) stepPlaying(dt float64, in core.InputFrame, res *StepResult) {
	if in.Has(core.ActionCancel) {
		g.toMenu()
		return
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.ticks++

	if in.Has(core.ActionFlap) {
		Flap(&g.player, g.cfg.Physics.JumpForce, &g.events)
	}
	Integrate(&g.player, dt, g.cfg.Physics)

	res.Spawned = g.spawner.Update(dt, g.score, g.ticks, g.obstacles)

	ScrollObstacles(g.obstacles, dt, g.cfg.World.DespawnX)
	ScrollBackground(g.background, dt, g.cfg.World, g.cfg.Background, g.rng)

	if kind, id := DetectCollision(g.player, g.cfg.World.Bound, g.obstacles); kind != CollisionNone {
		res.Collision = kind
		g.events.Push(SoundHit)
		g.log.Debug("collision", "kind", kind, "entity", id, "tick", g.ticks, "y", g.player.Y)
		g.gameOver(kind)
		return
	}

	res.Scored = ApplyScoring(&g.score, g.player.X, g.cfg.Scoring, g.obstacles, &g.events)
}

// startSession clears the world and enters Playing.
func (g *Game) startSession() {
	g.clearWorld()
	g.player = NewPlayer(g.cfg, g.character)
	g.score = 0
	g.ticks = 0
	g.paused = false
	g.lastHit = CollisionNone
	g.sessionID = g.newID()
	g.spawner.Reset()
	SpawnBackground(g.background, g.cfg.Background)
	g.setPhase(PhasePlaying)
}

func (g *Game) toMenu() {
	g.clearWorld()
	g.paused = false
	g.setPhase(PhaseMenu)
}

// gameOver records the finished session and persists it once.
func (g *Game) gameOver(kind CollisionKind) {
	g.player.Alive = false
	g.lastHit = kind
	g.events.Push(SoundDie)
	g.highScore = max(g.highScore, g.score)

	g.record.SelectedCharacter = g.character
	g.record = AddScore(g.record, LeaderboardEntry{
		Score:     g.score,
		Character: g.character,
		Timestamp: g.now(),
		Name:      g.name,
		SessionID: g.sessionID,
	})
	if err := g.gateway.Save(g.record); err != nil {
		g.log.Error("failed to save game data", "err", err)
	}

	g.clearWorld()
	g.setPhase(PhaseGameOver)
}

func (g *Game) clearWorld() {
	g.obstacles.Clear()
	g.background.Clear()
}

func (g *Game) setPhase(p Phase) {
	if p == g.phase {
		return
	}
	g.log.Debug("phase change", "from", g.phase, "to", p, "score", g.score)
	g.phase = p
}

// SelectCharacter switches the active character. It takes effect on the
// next session.
func (g *Game) SelectCharacter(c Character) {
	if !c.Valid() {
		return
	}
	g.character = c
	g.record.SelectedCharacter = c
	if g.phase != PhasePlaying {
		g.player = NewPlayer(g.cfg, c)
	}
}

// DrainEvents returns the audio events emitted since the last drain.
func (g *Game) DrainEvents() []AudioEvent {
	return g.events.Drain()
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// Paused reports whether a Playing session is paused.
func (g *Game) Paused() bool { return g.paused }

// Score returns the running session score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen by this profile.
func (g *Game) HighScore() int { return g.highScore }

// Character returns the selected character.
func (g *Game) Character() Character { return g.character }

// Player returns a copy of the player state.
func (g *Game) Player() PlayerState { return g.player }

// Ticks returns the number of simulated ticks in the current session.
func (g *Game) Ticks() int { return g.ticks }

// SessionID identifies the current or last session.
func (g *Game) SessionID() string { return g.sessionID }

// LastCollision returns what ended the last session.
func (g *Game) LastCollision() CollisionKind { return g.lastHit }

// Record returns the in-memory save record.
func (g *Game) Record() SaveRecord { return g.record }
