// Package desktop runs JezzBall in an Ebitengine window with a pixel field.
package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/games/jezzball"
	"github.com/newmanne/jezzball/internal/storage"
)

// Window layout in pixels.
const (
	FieldWidth  = 800
	FieldHeight = 600
	hudHeight   = 20
)

var (
	backgroundColor = color.RGBA{R: 16, G: 18, B: 28, A: 255}
	hudColor        = color.RGBA{R: 32, G: 36, B: 52, A: 255}
	growingColor    = color.RGBA{R: 230, G: 200, B: 60, A: 255}
	completedColor  = color.RGBA{R: 220, G: 224, B: 235, A: 255}
	ballColor       = color.RGBA{R: 235, G: 70, B: 70, A: 255}
	cursorColor     = color.RGBA{R: 80, G: 200, B: 220, A: 255}
)

// Window adapts a game to ebiten.Game.
type Window struct {
	game    *jezzball.Game
	store   *storage.Store
	config  core.RuntimeConfig
	flashes *flashes
	frame   core.InputFrame
	state   core.GameState
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow prepares game for windowed play. Completion notifications are
// forwarded to next after the window records its highlight. A nil store
// disables session statistics.
func NewWindow(game *jezzball.Game, store *storage.Store, cfg core.RuntimeConfig, next jezzball.Observer) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.FieldW <= 0 {
		cfg.FieldW = FieldWidth
	}
	if cfg.FieldH <= 0 {
		cfg.FieldH = FieldHeight
	}
	cfg.ScreenW = cfg.FieldW
	cfg.ScreenH = cfg.FieldH + hudHeight

	w := &Window{
		game:    game,
		store:   store,
		config:  cfg,
		flashes: newFlashes(next),
		frame:   core.NewInputFrame(),
	}
	game.SetObserver(w.flashes)
	w.reset()
	return w
}

func (w *Window) reset() {
	w.game.Reset(w.config)
	w.state = w.game.State()
	w.flashes.reset()
}

// Update polls input and runs one simulation tick.
func (w *Window) Update() error {
	f := w.game.Field()
	pollInput(&w.frame, f.Width, f.Height)

	if w.frame.Has(core.ActionQuit) {
		w.saveSession()
		return ebiten.Termination
	}
	if w.frame.Has(core.ActionRestart) {
		w.saveSession()
		w.config.Seed = time.Now().UnixNano()
		w.reset()
		w.frame.Clear()
		return nil
	}

	w.state = w.game.Step(w.frame).State
	w.frame.Clear()

	if !w.state.Paused {
		w.flashes.update(1 / float32(w.config.TickRate))
	}
	return nil
}

// Draw renders the field, barriers, highlights, cursor, ball and HUD.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	vector.DrawFilledRect(screen, 0, 0, float32(w.config.ScreenW), hudHeight, hudColor, false)

	for _, b := range w.game.Barriers() {
		c := growingColor
		if b.State == jezzball.BarrierCompleted {
			c = completedColor
		}
		fillRect(screen, b.Bounds(), c)
	}

	for _, fl := range w.flashes.active {
		fillRect(screen, fl.bounds, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(fl.alpha * 255)})
	}

	f := w.game.Field()
	cur := w.game.Cursor()
	cell := f.CellRect(cur.Cell)
	vector.StrokeRect(screen, float32(cell.X), float32(cell.Y+hudHeight),
		float32(cell.W), float32(cell.H), 1, cursorColor, false)

	ball := w.game.Ball()
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y)+hudHeight,
		float32(ball.Radius), ballColor, true)

	ebitenutil.DebugPrintAt(screen, hudText(w.state, cur.Axis), 4, 2)
	if w.state.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume",
			f.Width/2-78, f.Height/2+hudHeight)
	}
}

// Layout keeps the logical screen fixed at the field plus the HUD strip.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.config.ScreenW, w.config.ScreenH
}

// State returns the most recent game state.
func (w *Window) State() core.GameState {
	return w.state
}

// saveSession stores the current session's statistics if it ran at all.
func (w *Window) saveSession() {
	if w.store == nil || w.state.Tick == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	w.store.SaveSession(storage.Session{
		GameID:    w.game.ID(),
		Ticks:     w.state.Tick,
		Completed: w.state.Completed,
		Destroyed: w.state.Destroyed,
	})
	w.state = core.GameState{}
}

func hudText(s core.GameState, axis jezzball.Axis) string {
	return fmt.Sprintf("Completed: %d  Destroyed: %d  Axis: %s", s.Completed, s.Destroyed, axis)
}

// fillRect draws a field rectangle below the HUD strip.
func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y+hudHeight), float32(r.W), float32(r.H), c, false)
}

// Run opens the window and blocks until it is closed.
func Run(game *jezzball.Game, store *storage.Store, cfg core.RuntimeConfig, next jezzball.Observer) error {
	w := NewWindow(game, store, cfg, next)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w.config.ScreenW, w.config.ScreenH)
	ebiten.SetTPS(w.config.TickRate)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	// Closing the window skips the quit key path.
	w.saveSession()
	return nil
}
