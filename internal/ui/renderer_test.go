package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amalg/go-tetris/internal/game"
)

func TestRenderBoardDrawsLockedCells(t *testing.T) {
	m, engine := newTestModel(t)
	assert.NotContains(t, RenderBoard(engine), "▓▓")

	send(t, m, key(" "))

	lines := strings.Split(RenderBoard(engine), "\n")
	require.Len(t, lines, game.Height+1)
	assert.Equal(t, game.CellCount, strings.Count(strings.Join(lines, "\n"), "▓▓"))
	assert.Contains(t, lines[game.Height-1], "▓▓", "bottom row is drawn last")
	assert.NotContains(t, lines[0], "▓▓")
}
