package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newmanne/jezzball/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(20)

	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, core.ActionPlace, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionPlace, false},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionToggleAxis, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.ActionToggleAxis, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(tt.msg)
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = %s, %v, expected %s, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
		}
	}
}

func TestFieldPoint(t *testing.T) {
	km := NewKeyMapper(20)

	// Column 20, row 15 is grid cell (20, 14) below the status line
	x, y := km.FieldPoint(20, 15)
	if x != 410 || y != 290 {
		t.Errorf("FieldPoint(20, 15) = (%d, %d), expected (410, 290)", x, y)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper(20)

	frame := core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if frame.Pointer == nil || frame.Pointer.X != 70 || frame.Pointer.Y != 30 {
		t.Errorf("Pointer = %+v, expected (70, 30)", frame.Pointer)
	}
	if !frame.Has(core.ActionPlace) {
		t.Error("left press did not place")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, &frame)
	if !frame.Has(core.ActionToggleAxis) || frame.Has(core.ActionPlace) {
		t.Error("right press should toggle the axis only")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)
	if frame.Pointer == nil || frame.Has(core.ActionPlace) {
		t.Error("motion should move the pointer without placing")
	}

	frame = core.NewInputFrame()
	km.MapMouseToFrame(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, &frame)
	if frame.Pointer != nil {
		t.Error("wheel events should be ignored")
	}
}
