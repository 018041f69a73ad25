package ui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/amalg/go-tetris/internal/game"
)

// tickMsg is a gravity tick.
type tickMsg time.Time

// spawnMsg asks for the first piece once the program is running.
type spawnMsg struct{}

// Stats counts what happened in the current game.
type Stats struct {
	Pieces int
	Lines  int
}

// Model is the Bubbletea model driving the engine. The engine is only touched
// from Update, so it needs no locking.
type Model struct {
	engine   *game.Engine
	stats    *Stats
	log      zerolog.Logger
	tickRate time.Duration
	paused   bool
	quitting bool
}

// NewModel creates a TUI model around the given engine.
func NewModel(engine *game.Engine, logger zerolog.Logger) Model {
	stats := &Stats{}
	engine.OnLock(func(p game.Piece) {
		stats.Pieces++
		logger.Debug().Stringer("kind", p.Kind).Int("pieces", stats.Pieces).Msg("piece locked")
	})

	tickRate := engine.Config.TickRate
	if tickRate <= 0 {
		tickRate = game.DefaultConfig().TickRate
	}

	return Model{
		engine:   engine,
		stats:    stats,
		log:      logger,
		tickRate: tickRate,
	}
}

// Init spawns the first piece and starts gravity.
func (m Model) Init() tea.Cmd {
	m.log.Info().Dur("tick_rate", m.tickRate).Msg("game started")
	return tea.Batch(
		func() tea.Msg { return spawnMsg{} },
		tick(m.tickRate),
	)
}

// Update handles key presses and gravity ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spawnMsg:
		if _, ok := m.engine.Cursor(); !ok {
			m.spawn()
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.gravity()
		}
		return m, tick(m.tickRate)
	}

	return m, nil
}

// View renders the matrix and the HUD side by side.
func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		RenderBoard(m.engine),
		"  ",
		RenderHUD(m.engine, *m.stats, m.paused),
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		m.log.Info().Int("pieces", m.stats.Pieces).Int("lines", m.stats.Lines).Msg("quit")
		return m, tea.Quit
	case "p":
		if !m.engine.GameOver() {
			m.paused = !m.paused
		}
		return m, nil
	case "r":
		if m.engine.GameOver() {
			m.restart()
		}
		return m, nil
	}

	if m.paused || m.engine.GameOver() {
		return m, nil
	}

	// Blocked moves and rotations are ignored.
	switch msg.String() {
	case "left", "a":
		_ = m.engine.Move(game.DirLeft)
	case "right", "d":
		_ = m.engine.Move(game.DirRight)
	case "up", "w", "x":
		_ = m.engine.Rotate(game.Clockwise)
	case "z":
		_ = m.engine.Rotate(game.CounterClockwise)
	case "down", "s":
		_ = m.engine.TickDown()
	case " ":
		m.settle(m.engine.HardDrop())
	}

	return m, nil
}

// gravity advances the game by one tick: spawn when empty, lock when the
// cursor is resting, fall otherwise.
func (m Model) gravity() {
	if m.engine.GameOver() {
		return
	}
	if _, ok := m.engine.Cursor(); !ok {
		m.spawn()
		return
	}
	if m.engine.CursorHasHitBottom() {
		// Already resting, so the drop only locks.
		m.settle(m.engine.HardDrop())
		return
	}
	_ = m.engine.TickDown()
}

// settle follows a lock attempt: clear lines and bring in the next piece.
func (m Model) settle(err error) {
	if errors.Is(err, game.ErrTopOut) {
		m.gameOver()
		return
	}
	if n := m.engine.ClearLines(); n > 0 {
		m.stats.Lines += n
		m.log.Debug().Int("rows", n).Int("lines", m.stats.Lines).Msg("lines cleared")
	}
	m.spawn()
}

func (m Model) spawn() {
	if err := m.engine.Spawn(); errors.Is(err, game.ErrTopOut) {
		m.gameOver()
	}
}

func (m Model) gameOver() {
	m.log.Info().Int("pieces", m.stats.Pieces).Int("lines", m.stats.Lines).Msg("game over")
}

func (m Model) restart() {
	m.engine.Reset()
	*m.stats = Stats{}
	m.log.Info().Msg("restart")
	m.spawn()
}

// tick returns a Cmd that fires the next gravity tick.
func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
