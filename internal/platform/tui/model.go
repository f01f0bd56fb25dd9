// Package tui provides the Bubble Tea integration for JezzBall.
// It handles the terminal UI loop, input mapping, session statistics and
// the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/games/jezzball"
	"github.com/newmanne/jezzball/internal/registry"
	"github.com/newmanne/jezzball/internal/storage"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// gridGame is implemented by games whose field is measured in grid units.
type gridGame interface {
	Field() jezzball.Field
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables session statistics.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.reset()
	return m
}

// reset restarts the game and refreshes the grid mapping for mouse input.
func (m *Model) reset() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()

	cell := 1
	if gg, ok := m.game.(gridGame); ok {
		cell = gg.Field().Cell
	}
	m.keys = NewKeyMapper(cell)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
			m.saveSession()
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.step()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleResize processes window resize events.
// The field is derived from the terminal size, so the game restarts.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.saveSession()
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.reset()
	return m, nil
}

// step runs one simulation tick with the input collected since the last one.
func (m *Model) step() {
	if m.inputFrame.Has(core.ActionRestart) {
		m.saveSession()
		m.config.Seed = time.Now().UnixNano()
		m.reset()
		m.inputFrame.Clear()
		return
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
}

// saveSession stores the current session's statistics. Sessions that never
// ran are skipped.
func (m *Model) saveSession() {
	if m.store == nil || m.gameState.Tick == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveSession(storage.Session{
		GameID:    m.game.ID(),
		Ticks:     m.gameState.Tick,
		Completed: m.gameState.Completed,
		Destroyed: m.gameState.Destroyed,
	})
	m.gameState = core.GameState{}
}

// State returns the most recent game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
