package jezzball

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/newmanne/jezzball/internal/config"
	"github.com/newmanne/jezzball/internal/core"
	"github.com/newmanne/jezzball/internal/registry"
)

// GameID is the registry identifier and stats key.
const GameID = "jezzball"

// Minimum field size in grid cells.
const (
	minColumns = 8
	minRows    = 6
)

// Game owns the live entity set and runs the fixed per-tick sequence.
// It is driven by a single goroutine; nothing in it is safe for concurrent use.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.JezzballConfig
	difficulty *config.DifficultyManager

	field    Field
	ball     Ball
	edge     EdgeMode
	barriers []*Barrier // Live set in creation order
	pending  []*Barrier // Created this tick, joining the live set next tick
	sched    Scheduler
	cursor   Cursor
	observer Observer
	rng      *rand.Rand

	nextID      int
	tick        uint64
	growthTicks uint64
	paused      bool
	completed   int
	destroyed   int

	tooSmall bool
}

// New creates a game using the built-in default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultJezzballConfig())
}

// NewWithConfig creates a game using cfg. The config is fixed for the
// lifetime of the game, including restarts.
func NewWithConfig(cfg config.JezzballConfig) *Game {
	return &Game{
		cfg:      cfg,
		observer: NopObserver{},
	}
}

// NewFromOptions loads the configuration named by opts, applies the
// difficulty preset and returns a game. Load failures fall back to defaults.
func NewFromOptions(opts registry.Options) *Game {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		cfg = config.DefaultJezzballConfig()
	}
	config.ApplyPreset(&cfg, config.ParsePreset(opts.Difficulty))
	return NewWithConfig(cfg)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "JezzBall"
}

// SetObserver installs the notification hook. A nil observer restores the no-op.
func (g *Game) SetObserver(o Observer) {
	if o == nil {
		o = NopObserver{}
	}
	g.observer = o
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.JezzballConfig {
	return g.cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	g.field = g.layoutField()
	g.tooSmall = g.field.Columns() < minColumns || g.field.Rows() < minRows

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	period := g.difficulty.GrowthPeriod(time.Duration(g.cfg.Barrier.GrowthPeriodMS) * time.Millisecond)
	g.growthTicks = growthPeriodTicks(period, runtime.TickRate)

	g.edge = EdgeMode(g.cfg.Ball.EdgeMode)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cx, cy := g.field.Center()
	g.ball = Ball{
		X:      cx,
		Y:      cy,
		VX:     g.difficulty.Speed(g.cfg.Ball.SpeedX),
		VY:     g.difficulty.Speed(g.cfg.Ball.SpeedY),
		Radius: g.cfg.Ball.Radius,
	}
	if g.rng.Intn(2) == 0 {
		g.ball.VX = -g.ball.VX
	}
	if g.rng.Intn(2) == 0 {
		g.ball.VY = -g.ball.VY
	}

	g.barriers = g.barriers[:0]
	g.pending = g.pending[:0]
	g.sched.Reset()
	g.cursor = Cursor{Axis: AxisVertical}
	g.cursor.MoveTo(int(cx), int(cy), g.field)

	g.nextID = 0
	g.tick = 0
	g.paused = false
	g.completed = 0
	g.destroyed = 0
}

// layoutField picks the field size: explicit runtime size, then config,
// then the screen below the HUD row with one character per grid cell.
func (g *Game) layoutField() Field {
	cell := g.cfg.Field.CellSize
	if cell <= 0 {
		cell = config.DefaultJezzballConfig().Field.CellSize
	}
	f := Field{Width: g.runtime.FieldW, Height: g.runtime.FieldH, Cell: cell}
	if f.Width <= 0 {
		f.Width = g.cfg.Field.Width
	}
	if f.Height <= 0 {
		f.Height = g.cfg.Field.Height
	}
	if f.Width <= 0 {
		f.Width = core.Max(g.runtime.ScreenW, 0) * cell
	}
	if f.Height <= 0 {
		f.Height = core.Max(g.runtime.ScreenH-HUDRows, 0) * cell
	}
	return f
}

// growthPeriodTicks converts a growth period to whole ticks, rounding up.
func growthPeriodTicks(period time.Duration, tickRate int) uint64 {
	ms := period.Milliseconds()
	ticks := (ms*int64(tickRate) + 999) / 1000
	if ticks < 1 {
		ticks = 1
	}
	return uint64(ticks)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.promotePending()

	g.advanceGrowth()

	g.ball.Move()
	g.ball.KeepInField(g.field, g.edge)

	g.resolveCollisions()

	g.observer.EvaluateEnclosure(g.completedBarriers())

	g.cursor.applyInput(in, g.field)
	if in.Has(core.ActionPlace) {
		// The cursor axis is always valid, so this cannot fail.
		_, _, _ = g.RequestBarrierPair(g.cursor.Cell.X, g.cursor.Cell.Y, g.cursor.Axis)
	}

	return core.StepResult{State: g.State()}
}

// promotePending moves barriers created since the last tick into the live
// set and starts their growth timers.
func (g *Game) promotePending() {
	for _, b := range g.pending {
		g.barriers = append(g.barriers, b)
		g.sched.Schedule(g.tick+g.growthTicks, EventGrow, b.ID)
	}
	g.pending = g.pending[:0]
}

// advanceGrowth fires due growth events. Events for barriers that are gone
// or no longer growing are dropped.
func (g *Game) advanceGrowth() {
	for _, ev := range g.sched.PopDue(g.tick) {
		if ev.Kind != EventGrow {
			continue
		}
		b := g.barrier(ev.BarrierID)
		if b == nil || b.State != BarrierGrowing {
			continue
		}
		if b.Grow(g.field.Cell, g.field) {
			g.completed++
			g.observer.OnBarrierCompleted(*b)
			continue
		}
		g.sched.Schedule(g.tick+g.growthTicks, EventGrow, b.ID)
	}
}

// resolveCollisions handles at most one ball hit and removes a destroyed
// barrier from the live set.
func (g *Game) resolveCollisions() {
	obstacles := make([]Collidable, len(g.barriers))
	for i, b := range g.barriers {
		obstacles[i] = b
	}

	hit, ok := ResolveCollision(&g.ball, obstacles)
	if !ok || !hit.Destroyed {
		return
	}

	b := g.barriers[hit.Index]
	g.sched.Cancel(b.ID)
	g.barriers = append(g.barriers[:hit.Index], g.barriers[hit.Index+1:]...)
	g.destroyed++
}

// barrier returns the live barrier with id, or nil.
func (g *Game) barrier(id int) *Barrier {
	for _, b := range g.barriers {
		if b.ID == id && b.Live() {
			return b
		}
	}
	return nil
}

func (g *Game) completedBarriers() []Barrier {
	var out []Barrier
	for _, b := range g.barriers {
		if b.State == BarrierCompleted {
			out = append(out, *b)
		}
	}
	return out
}

// RequestBarrierPair creates two growing barriers with opposite directions
// along axis at the grid cell under (x, y). Vertical pairs grow Up and Down,
// horizontal pairs Left and Right. The lead ray (Up or Left) starts at the
// cell's near edge and also covers the cell itself; the trail ray starts at
// its far edge. Both join the live set on the next tick.
func (g *Game) RequestBarrierPair(x, y int, axis Axis) (lead, trail *Barrier, err error) {
	if !axis.Valid() {
		return nil, nil, fmt.Errorf("%w: %d", ErrInvalidAxis, int(axis))
	}
	leadDir, trailDir := axis.Directions()

	origin := g.field.SnapOrigin(x, y)
	cell := g.field.Cell
	trailOrigin := origin
	if axis == AxisVertical {
		trailOrigin.Y += cell
	} else {
		trailOrigin.X += cell
	}

	lead, err = NewBarrier(g.nextID+1, origin, leadDir, cell)
	if err != nil {
		return nil, nil, err
	}
	trail, err = NewBarrier(g.nextID+2, trailOrigin, trailDir, cell)
	if err != nil {
		return nil, nil, err
	}
	lead.seed = g.field.CellRect(origin)
	g.nextID += 2

	g.pending = append(g.pending, lead, trail)
	return lead, trail, nil
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Barriers returns copies of the live barriers in creation order.
func (g *Game) Barriers() []Barrier {
	out := make([]Barrier, len(g.barriers))
	for i, b := range g.barriers {
		out[i] = *b
	}
	return out
}

// Field returns the play field bounds and grid cell size.
func (g *Game) Field() Field {
	return g.field
}

// Cursor returns the placement cursor.
func (g *Game) Cursor() Cursor {
	return g.cursor
}

// Orientation returns the axis the next placement will use.
func (g *Game) Orientation() Axis {
	return g.cursor.Axis
}

// Tick returns the number of ticks simulated since Reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:      g.tick,
		Completed: g.completed,
		Destroyed: g.destroyed,
		Paused:    g.paused,
	}
}

func init() {
	registry.Register(GameID, "JezzBall", func(opts registry.Options) registry.Game {
		return NewFromOptions(opts)
	})
}
