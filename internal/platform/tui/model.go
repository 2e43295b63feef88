package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/spectate"
)

// Options are the optional collaborators of a Model.
type Options struct {
	Sink          audio.Sink    // receives audio events; nil plays nothing
	Hub           *spectate.Hub // receives a snapshot every tick; may be nil
	Scores        ScoreSource   // global scores for the leaderboard; may be nil
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model driving one flappy game.
type Model struct {
	game       *flappy.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	sink       audio.Sink
	hub        *spectate.Hub
	log        *log.Logger
	keys       KeyMap
	help       help.Model
	board      *leaderboardView
	inputFrame core.InputFrame
	shotDir    string
	quitting   bool
}

// NewModel creates a Bubble Tea model for game.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, opts Options) Model {
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	}

	h := help.New()
	h.Width = cfg.ScreenW
	board := newLeaderboardView(cfg.ScreenW, cfg.ScreenH, opts.Scores)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		sink:       opts.Sink,
		hub:        opts.Hub,
		log:        opts.Logger,
		keys:       DefaultKeyMap(),
		help:       h,
		board:      &board,
		inputFrame: core.NewInputFrame(),
		shotDir:    opts.ScreenshotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next
// tick so the simulation sees them at a fixed point.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if m.game.Phase() == flappy.PhaseLeaderboard {
		switch {
		case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
			m.board.Switch()
		default:
			cmd = m.board.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one fixed step and forwards its
// side effects.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.config.TickSeconds(), m.inputFrame)
	m.inputFrame.Clear()

	if events := m.game.DrainEvents(); len(events) > 0 {
		m.sink.Play(events...)
	}
	if m.hub != nil && (!m.game.Paused() || res.PhaseChanged()) {
		m.hub.Publish(m.game.Snapshot())
	}

	if res.PhaseChanged() {
		m.log.Debug("phase", "from", res.Prev, "to", res.Phase, "score", res.Score)
		switch res.Phase {
		case flappy.PhaseLeaderboard:
			m.board.Open(m.game.Record(), time.Now())
		case flappy.PhaseGameOver:
			m.log.Info("session over",
				"session", m.game.SessionID(),
				"score", res.Score,
				"hit", m.game.LastCollision(),
				"ticks", m.game.Ticks(),
				"y", m.game.Player().Y,
			)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Phase() == flappy.PhaseLeaderboard {
		return m.board.View(m.help.View(m.keys))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game returns the hosted game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// Run starts the Bubble Tea program for game.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
