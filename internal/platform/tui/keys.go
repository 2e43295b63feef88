package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap defines the key bindings of the game. One key may trigger several
// actions: space flaps while playing and confirms in the menu.
type KeyMap struct {
	Flap        key.Binding
	Confirm     key.Binding
	Left        key.Binding
	Right       key.Binding
	Cancel      key.Binding
	Restart     key.Binding
	Leaderboard key.Binding
	Pause       key.Binding
	Screenshot  key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Left, k.Right, k.Leaderboard, k.Cancel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Confirm, k.Pause, k.Restart},
		{k.Left, k.Right, k.Leaderboard},
		{k.Cancel, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "flap"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev bird"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next bird"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Leaderboard: key.NewBinding(
			key.WithKeys("L", "tab"),
			key.WithHelp("L/tab", "leaderboard"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Actions translates a key message to the actions it triggers.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Flap, core.ActionFlap},
		{k.Confirm, core.ActionConfirm},
		{k.Left, core.ActionSelectLeft},
		{k.Right, core.ActionSelectRight},
		{k.Cancel, core.ActionCancel},
		{k.Restart, core.ActionRestart},
		{k.Leaderboard, core.ActionOpenLeaderboard},
		{k.Pause, core.ActionPause},
		{k.Quit, core.ActionQuit},
	}

	var actions []core.Action
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

// MapKeyToFrame records the actions of a key message in frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	quit := false
	for _, a := range k.Actions(msg) {
		if a == core.ActionQuit {
			quit = true
			continue
		}
		frame.Set(a)
	}
	return quit
}

// MapMouseToFrame turns wheel motion into selection scroll.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		frame.AddScroll(-1)
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		frame.AddScroll(1)
	}
}
