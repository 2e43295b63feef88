package flappy

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	MountainChar = '▲'
	CloudChar    = '☁'
	BoundChar    = '═'
)

// viewport maps world units (origin at center, y up) to screen cells.
type viewport struct {
	worldW, worldH float64
	cols, rows     int
}

func (v viewport) col(x float64) int {
	return int(math.Floor((x + v.worldW/2) / v.worldW * float64(v.cols)))
}

func (v viewport) row(y float64) int {
	return int(math.Floor((v.worldH/2 - y) / v.worldH * float64(v.rows)))
}

// fill paints every cell whose area intersects b.
func (v viewport) fill(dst *core.Screen, b core.Box, r rune, c core.Color) {
	x0, x1 := v.col(b.MinX), v.col(b.MaxX)
	y0, y1 := v.row(b.MaxY), v.row(b.MinY)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dst.SetColor(x, y, r, c)
		}
	}
}

// Render draws the current phase to dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	switch g.phase {
	case PhaseMenu:
		g.renderMenu(dst)
	case PhaseLeaderboard:
		g.renderLeaderboard(dst)
	case PhasePlaying:
		g.renderWorld(dst)
		if g.paused {
			drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		cols:   dst.Width(),
		rows:   dst.Height(),
	}
}

func (g *Game) renderWorld(dst *core.Screen) {
	vp := g.viewport(dst)

	for _, e := range g.background.All() {
		x, y := vp.col(e.X), vp.row(e.Y)
		switch e.Layer {
		case LayerMountain:
			dst.SetColor(x, y, MountainChar, core.ColorGray)
			dst.SetColor(x-1, y+1, MountainChar, core.ColorGray)
			dst.SetColor(x+1, y+1, MountainChar, core.ColorGray)
		case LayerCloud:
			dst.DrawTextColor(x-1, y, "~☁~", core.ColorWhite)
		}
	}

	for _, o := range g.obstacles.All() {
		glyph, color := o.Variant.Glyph(), o.Variant.Color()
		if !o.Variant.Geometry().Precise {
			vp.fill(dst, ObstacleBounds(*o), glyph, color)
			continue
		}
		for _, seg := range SegmentBounds(*o) {
			vp.fill(dst, seg, glyph, color)
		}
	}

	bound := g.cfg.World.Bound
	dst.DrawHLine(0, vp.row(bound), dst.Width(), BoundChar, core.ColorGray)
	dst.DrawHLine(0, vp.row(-bound), dst.Width(), BoundChar, core.ColorGray)

	glyph := g.character.Glyph()
	switch {
	case g.player.Tilt > 0.25:
		glyph = '◥'
	case g.player.Tilt < -0.25:
		glyph = '◢'
	}
	dst.SetColor(vp.col(g.player.X), vp.row(g.player.Y), glyph, g.character.Color())

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", g.score, g.highScore), core.ColorBrightYellow)
}

func (g *Game) renderMenu(dst *core.Screen) {
	h := dst.Height()
	y := max(1, h/2-8)

	dst.DrawTextCentered(y, "F L A P P Y", core.ColorBrightYellow)
	y += 2
	dst.DrawTextCentered(y, fmt.Sprintf("◀  %c %s  ▶", g.character.Glyph(), g.character), g.character.Color())
	y++
	dst.DrawTextCentered(y, characterRoster(g.character), core.ColorGray)
	y++
	dst.DrawTextCentered(y, fmt.Sprintf("hitbox radius %.0f", g.character.Radius()), core.ColorGray)
	y += 2
	dst.DrawTextCentered(y, fmt.Sprintf("High Score: %d", g.highScore), core.ColorWhite)
	y += 2

	top := g.record.Top(5)
	if len(top) > 0 {
		dst.DrawTextCentered(y, "Top Scores", core.ColorCyan)
		y++
		for i, e := range top {
			dst.DrawTextCentered(y, fmt.Sprintf("%d. %4d  %s", i+1, e.Score, e.Character), core.ColorDefault)
			y++
		}
		y++
	}

	dst.DrawTextCentered(y, "Enter/Space: play   ←/→: character   L: leaderboard   Q: quit", core.ColorGray)
}

func (g *Game) renderLeaderboard(dst *core.Screen) {
	now := g.now()
	y := 1
	dst.DrawTextCentered(y, "LEADERBOARD", core.ColorBrightYellow)
	y += 2
	for _, line := range StatsLines(g.record) {
		dst.DrawTextCentered(y, line, core.ColorWhite)
		y++
	}
	y++

	if len(g.record.Leaderboard) == 0 {
		dst.DrawTextCentered(y, "No games played yet", core.ColorGray)
	}
	for i, e := range g.record.Leaderboard {
		line := fmt.Sprintf("%2d. %5d  %-12s %s", i+1, e.Score, e.Character, RelativeTime(e.Timestamp, now))
		dst.DrawTextCentered(y, line, core.ColorDefault)
		y++
	}

	dst.DrawTextCentered(dst.Height()-2, "Esc: back", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	title := "GAME OVER"
	if g.score > 0 && g.score >= g.highScore {
		title = "NEW HIGH SCORE!"
	}
	drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Best: %d  |  R: restart  Esc: menu", g.score, g.highScore))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextColor(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}

// characterRoster marks the selected character's position in the roster.
func characterRoster(selected Character) string {
	marks := make([]string, 0, characterCount)
	for _, c := range AllCharacters() {
		if c == selected {
			marks = append(marks, "●")
		} else {
			marks = append(marks, "○")
		}
	}
	return strings.Join(marks, " ")
}

// StatsLines formats the aggregate statistics of a record.
func StatsLines(r SaveRecord) []string {
	return []string{
		fmt.Sprintf("Games: %d   Total: %d   Average: %.1f   Best: %d",
			r.TotalGames, r.TotalScore, r.AverageScore(), r.HighScore),
	}
}

// RelativeTime formats t relative to now, e.g. "3m ago".
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
