package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-tetris/internal/game"
)

// Color palette
var (
	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#2a2a44"))

	lockedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#8a8a8a"))

	wallStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	pausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true).
			Blink(true)
)

// kindStyle is the solid style of a falling piece.
func kindStyle(k game.Kind) lipgloss.Style {
	c := lipgloss.Color(k.Color())
	return lipgloss.NewStyle().Foreground(c).Background(c)
}

// ghostStyle marks where the falling piece would land.
func ghostStyle(k game.Kind) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1a1a2e")).
		Foreground(lipgloss.Color(k.Color()))
}

// pieceCells returns the on-matrix cells of p as a lookup set. Cells above the
// ceiling are dropped.
func pieceCells(p game.Piece) map[game.Coordinate]bool {
	set := make(map[game.Coordinate]bool, game.CellCount)
	for _, o := range p.Offsets() {
		c := game.Coordinate{X: o.X, Y: o.Y}
		if c.InBounds() {
			set[c] = true
		}
	}
	return set
}

// RenderBoard draws the matrix, the ghost and the falling piece. Each cell is
// 2 characters wide for a square-ish appearance; the top row comes first.
func RenderBoard(e *game.Engine) string {
	var (
		cursorSet, ghostSet map[game.Coordinate]bool
		kind                game.Kind
	)
	if p, ok := e.Cursor(); ok {
		kind = p.Kind
		cursorSet = pieceCells(p)
		if g, ok := e.Ghost(); ok {
			ghostSet = pieceCells(g)
		}
	}

	matrix := e.Matrix()
	locked := matrix.Rows()

	rows := make([]string, 0, game.Height+1)
	for i, line := range locked {
		y := game.Height - 1 - i
		var b strings.Builder
		b.WriteString(wallStyle.Render("│"))
		for x := 0; x < game.Width; x++ {
			c := game.Coordinate{X: x, Y: y}
			switch {
			case cursorSet[c]:
				b.WriteString(kindStyle(kind).Render("██"))
			case line[x]:
				b.WriteString(lockedStyle.Render("▓▓"))
			case ghostSet[c]:
				b.WriteString(ghostStyle(kind).Render("░░"))
			default:
				b.WriteString(emptyStyle.Render(" ·"))
			}
		}
		b.WriteString(wallStyle.Render("│"))
		rows = append(rows, b.String())
	}
	rows = append(rows, wallStyle.Render("└"+strings.Repeat("──", game.Width)+"┘"))

	return strings.Join(rows, "\n")
}

// renderPreview draws a kind in spawn orientation on its local grid.
func renderPreview(k game.Kind) string {
	cells := pieceCells(game.Piece{Kind: k})
	var rows []string
	for y := 2; y >= 1; y-- {
		var b strings.Builder
		for x := 0; x < k.GridSize(); x++ {
			if cells[game.Coordinate{X: x, Y: y}] {
				b.WriteString(kindStyle(k).Render("██"))
			} else {
				b.WriteString("  ")
			}
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// RenderHUD renders the heads-up display: next piece, counters and status.
func RenderHUD(e *game.Engine, stats Stats, paused bool) string {
	var parts []string

	parts = append(parts, titleStyle.Render("TETRIS"))
	parts = append(parts, "")

	parts = append(parts, labelStyle.Render("NEXT"))
	parts = append(parts, renderPreview(e.Next()))
	parts = append(parts, "")

	parts = append(parts, fmt.Sprintf("Pieces: %d", stats.Pieces))
	parts = append(parts, fmt.Sprintf("Lines:  %d", stats.Lines))
	parts = append(parts, "")

	switch {
	case e.GameOver():
		parts = append(parts, gameOverStyle.Render("GAME OVER"))
		parts = append(parts, "Press [R] to restart")
	case paused:
		parts = append(parts, pausedStyle.Render("PAUSED"))
	}

	parts = append(parts, "")
	parts = append(parts, labelStyle.Render("←/→ Move | ↑/X/Z Rotate"))
	parts = append(parts, labelStyle.Render("↓ Soft drop | Space Hard drop"))
	parts = append(parts, labelStyle.Render("P Pause | Q Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
