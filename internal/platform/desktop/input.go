package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/newmanne/jezzball/internal/core"
)

// keyBindings maps keyboard keys to game actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeySpace:      core.ActionPlace,
	ebiten.KeyEnter:      core.ActionPlace,
	ebiten.KeyTab:        core.ActionToggleAxis,
	ebiten.KeyX:          core.ActionToggleAxis,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyEscape:     core.ActionPause,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyQ:          core.ActionQuit,
}

// buttonBindings maps mouse buttons to game actions.
var buttonBindings = map[ebiten.MouseButton]core.Action{
	ebiten.MouseButtonLeft:  core.ActionPlace,
	ebiten.MouseButtonRight: core.ActionToggleAxis,
}

// ActionForKey returns the action bound to k.
func ActionForKey(k ebiten.Key) core.Action {
	return keyBindings[k]
}

// ActionForButton returns the action bound to b.
func ActionForButton(b ebiten.MouseButton) core.Action {
	return buttonBindings[b]
}

// toField converts window coordinates to field coordinates.
// The HUD strip sits above the field.
func toField(x, y int) (int, int) {
	return x, y - hudHeight
}

// pollInput reads the keys and buttons pressed since the last update into
// frame. The pointer is reported only while it is over the field.
func pollInput(frame *core.InputFrame, fieldW, fieldH int) {
	for k, a := range keyBindings {
		if inpututil.IsKeyJustPressed(k) {
			frame.Set(a)
		}
	}
	for b, a := range buttonBindings {
		if inpututil.IsMouseButtonJustPressed(b) {
			frame.Set(a)
		}
	}

	x, y := toField(ebiten.CursorPosition())
	if x >= 0 && y >= 0 && x < fieldW && y < fieldH {
		frame.SetPointer(x, y)
	}
}
