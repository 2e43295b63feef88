package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// recordingSink collects played audio events.
type recordingSink struct {
	events []flappy.AudioEvent
	closed bool
}

func (s *recordingSink) Play(events ...flappy.AudioEvent) {
	s.events = append(s.events, events...)
}

func (s *recordingSink) Close() { s.closed = true }

func newTestModel(t *testing.T, rec flappy.SaveRecord) (Model, *recordingSink) {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	game, err := flappy.New(config.DefaultFlappyConfig(), rt, flappy.Options{
		Gateway: storage.NewMemory(rec),
		Name:    "tester",
	})
	if err != nil {
		t.Fatalf("flappy.New() failed: %v", err)
	}
	sink := &recordingSink{}
	m := NewModel(game, rt, Options{Sink: sink, ScreenshotDir: t.TempDir()})
	return m, sink
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(t, m, TickMsg(time.Now()))
	return m
}

func TestModelStartsGameOnSpace(t *testing.T) {
	m, sink := newTestModel(t, flappy.SaveRecord{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if got := m.Game().Phase(); got != flappy.PhaseMenu {
		t.Fatalf("phase before tick = %v, want menu", got)
	}

	m = tick(t, m)
	if got := m.Game().Phase(); got != flappy.PhasePlaying {
		t.Fatalf("phase = %v, want playing", got)
	}
	if len(sink.events) == 0 || sink.events[0] != flappy.SoundSwoosh {
		t.Errorf("sink events = %v, want swoosh first", sink.events)
	}
}

func TestModelInputIsConsumedOnce(t *testing.T) {
	m, sink := newTestModel(t, flappy.SaveRecord{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	m = tick(t, m)

	jumps := 0
	for _, e := range sink.events {
		if e == flappy.SoundJump {
			jumps++
		}
	}
	if jumps != 1 {
		t.Errorf("jump played %d times, want 1", jumps)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, flappy.SaveRecord{})

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelMouseWheelSelectsCharacter(t *testing.T) {
	m, _ := newTestModel(t, flappy.SaveRecord{})
	start := m.Game().Character()

	m, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	m = tick(t, m)

	if got := m.Game().Character(); got != start.Next() {
		t.Errorf("character = %v, want %v", got, start.Next())
	}
}

func TestModelLeaderboardView(t *testing.T) {
	rec := flappy.AddScore(flappy.SaveRecord{}, flappy.LeaderboardEntry{
		Score:     17,
		Character: flappy.CharacterRedBird,
		Timestamp: time.Now().Add(-2 * time.Hour),
		Name:      "ace",
	})
	m, _ := newTestModel(t, rec)

	m, _ = send(t, m, runeKey('L'))
	m = tick(t, m)
	if got := m.Game().Phase(); got != flappy.PhaseLeaderboard {
		t.Fatalf("phase = %v, want leaderboard", got)
	}

	view := m.View()
	for _, want := range []string{"LEADERBOARD", "17", "ace", "2h ago"} {
		if !strings.Contains(view, want) {
			t.Errorf("leaderboard view missing %q", want)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if got := m.Game().Phase(); got != flappy.PhaseMenu {
		t.Errorf("phase after esc = %v, want menu", got)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, flappy.SaveRecord{})

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()

	lines := strings.Split(view, "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, want 30", len(lines))
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t, flappy.SaveRecord{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	if !strings.HasPrefix(entries[0].Name(), "flappy_") {
		t.Errorf("screenshot name = %q", entries[0].Name())
	}
}
