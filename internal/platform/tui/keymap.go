package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/games/jezzball"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes bindings and makes them testable.
type KeyMapper struct {
	// Cell is the number of field units per terminal character.
	Cell int
}

// NewKeyMapper creates a key mapper for a field with the given grid cell size.
func NewKeyMapper(cell int) *KeyMapper {
	if cell <= 0 {
		cell = 1
	}
	return &KeyMapper{Cell: cell}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "enter":
		return core.ActionPlace, false
	case "tab", "x":
		return core.ActionToggleAxis, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame from a mouse event. Any event
// moves the pointer to the center of the grid cell under the mouse; a left
// press places a pair and a right press toggles the axis.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}

	x, y := km.FieldPoint(msg.X, msg.Y)
	frame.SetPointer(x, y)

	if msg.Action != tea.MouseActionPress {
		return
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		frame.Set(core.ActionPlace)
	case tea.MouseButtonRight:
		frame.Set(core.ActionToggleAxis)
	}
}

// FieldPoint converts a terminal cell to field coordinates at the cell's center.
// The status line above the field is skipped.
func (km *KeyMapper) FieldPoint(col, row int) (int, int) {
	half := km.Cell / 2
	return col*km.Cell + half, (row-jezzball.HUDRows)*km.Cell + half
}
