package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newmanne/jezzball/internal/config"
	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/games/jezzball"
	"github.com/newmanne/jezzball/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (Model, *jezzball.Game) {
	t.Helper()
	game := jezzball.NewWithConfig(config.DefaultJezzballConfig())
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestModelKeyInputReachesGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	m = update(t, m, TickMsg(time.Now()))

	if game.Orientation() != jezzball.AxisHorizontal {
		t.Errorf("Orientation() = %s, expected Horizontal", game.Orientation())
	}
	if m.State().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", m.State().Tick)
	}
}

func TestModelMouseMovesCursor(t *testing.T) {
	m, game := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion})
	update(t, m, TickMsg(time.Now()))

	if c := game.Cursor(); c.Cell != (jezzball.Point{X: 60, Y: 60}) {
		t.Errorf("cursor = %v, expected (60,60)", c.Cell)
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "Completed: 0") {
		t.Errorf("View() missing HUD: %q", view)
	}
}

func TestModelQuitSavesSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if next.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}

	sessions, err := store.RecentSessions(jezzball.GameID, 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Ticks != 5 {
		t.Errorf("sessions = %+v, expected one session of 5 ticks", sessions)
	}
}

func TestModelSkipsEmptySession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, _ := newTestModel(t, store)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	totals, _ := store.Totals(jezzball.GameID)
	if totals.Sessions != 0 {
		t.Errorf("Sessions = %d, expected 0", totals.Sessions)
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '●', core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") {
		t.Errorf("line 0 = %q, expected prefix ab", lines[0])
	}
	if !strings.Contains(lines[1], "●") {
		t.Errorf("line 1 = %q, expected ball glyph", lines[1])
	}
}
