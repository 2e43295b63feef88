package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// ScoreSource lists the best scores across all profiles.
type ScoreSource func(limit int) ([]storage.ScoreEntry, error)

type boardTab int

const (
	tabPersonal boardTab = iota
	tabGlobal
)

const globalLimit = 50

// leaderboardView renders the personal leaderboard of the running game and,
// when a ScoreSource is configured, the best scores of every profile.
type leaderboardView struct {
	table  table.Model
	tab    boardTab
	source ScoreSource
	record flappy.SaveRecord
	now    time.Time
	global []storage.ScoreEntry
	err    error
	width  int
	height int
}

func newLeaderboardView(width, height int, source ScoreSource) leaderboardView {
	v := leaderboardView{source: source, width: width, height: height}
	v.table = v.createTable()
	return v
}

func (v *leaderboardView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Bird", Width: 12},
		{Title: "Player", Width: 14},
		{Title: "When", Width: 12},
	}

	h := core.Clamp(v.height-10, 3, globalLimit)
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Open refreshes the view for a new visit.
func (v *leaderboardView) Open(rec flappy.SaveRecord, now time.Time) {
	v.record = rec
	v.now = now
	v.tab = tabPersonal
	v.global, v.err = nil, nil
	if v.source != nil {
		v.global, v.err = v.source(globalLimit)
	}
	v.refresh()
}

// Switch toggles between the personal and global tabs.
func (v *leaderboardView) Switch() {
	if v.source == nil {
		return
	}
	if v.tab == tabPersonal {
		v.tab = tabGlobal
	} else {
		v.tab = tabPersonal
	}
	v.refresh()
}

func (v *leaderboardView) Resize(width, height int) {
	v.width, v.height = width, height
	v.table = v.createTable()
	v.refresh()
}

func (v *leaderboardView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

func (v *leaderboardView) refresh() {
	if v.tab == tabGlobal {
		v.table.SetRows(globalRows(v.global, v.now))
	} else {
		v.table.SetRows(personalRows(v.record, v.now))
	}
	v.table.GotoTop()
}

// View renders the leaderboard with helpView below it.
func (v leaderboardView) View(helpView string) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("LEADERBOARD", v.width)))
	b.WriteString("\n\n")

	if v.source != nil {
		b.WriteString(centerText(v.tabLine(), v.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case v.tab == tabGlobal && v.err != nil:
		b.WriteString(tableStyle.Render(fmt.Sprintf("Scores unavailable: %v", v.err)))
	case len(v.table.Rows()) == 0:
		b.WriteString(tableStyle.Render("No scores yet. Go flap!"))
	default:
		b.WriteString(tableStyle.Render(v.table.View()))
	}
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	for _, line := range flappy.StatsLines(v.record) {
		b.WriteString(statsStyle.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(helpView))
	return b.String()
}

func (v leaderboardView) tabLine() string {
	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("22")).
		Padding(0, 1)

	personal, global := tabStyle, tabStyle
	if v.tab == tabGlobal {
		global = activeStyle
	} else {
		personal = activeStyle
	}
	return personal.Render("You") + " " + global.Render("Everyone")
}

func personalRows(rec flappy.SaveRecord, now time.Time) []table.Row {
	rows := make([]table.Row, len(rec.Leaderboard))
	for i, e := range rec.Leaderboard {
		rows[i] = entryRow(i, e, e.Name, now)
	}
	return rows
}

func globalRows(entries []storage.ScoreEntry, now time.Time) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		name := e.Name
		if name == "" {
			name = e.Profile
		}
		rows[i] = entryRow(i, e.LeaderboardEntry, name, now)
	}
	return rows
}

func entryRow(i int, e flappy.LeaderboardEntry, name string, now time.Time) table.Row {
	if name == "" {
		name = "-"
	}
	return table.Row{
		fmt.Sprintf("#%d", i+1),
		strconv.Itoa(e.Score),
		e.Character.String(),
		name,
		flappy.RelativeTime(e.Timestamp, now),
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
