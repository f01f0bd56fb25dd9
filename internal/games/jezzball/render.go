package jezzball

import (
	"fmt"

	"github.com/newmanne/jezzball/internal/core"
)

// Visual characters for rendering. Each screen character is one grid cell.
const (
	BallChar          = '●'
	GrowingChar       = '▓'
	CompletedChar     = '█'
	CursorVertical    = '┃'
	CursorHorizontal  = '━'
	HUDRows           = 1
	overlayBoxPadding = 4
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d cells", minColumns, minRows+HUDRows)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBarriers(dst)
	g.renderCursor(dst)
	g.renderBall(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Completed: %d  Destroyed: %d", g.completed, g.destroyed)
	dst.DrawText(1, 0, left)

	right := fmt.Sprintf("Axis: %s", g.cursor.Axis)
	if len(left)+len(right)+3 <= dst.Width() {
		dst.DrawText(dst.Width()-len(right)-1, 0, right)
	}
}

// toScreen converts a field rectangle to the character cells it covers.
func (g *Game) toScreen(r core.Rect) core.Rect {
	c := g.field.Cell
	x0 := r.X / c
	y0 := r.Y/c + HUDRows
	x1 := (r.Right() + c - 1) / c
	y1 := (r.Bottom()+c-1)/c + HUDRows
	return core.RectFromEdges(x0, y0, x1, y1)
}

// renderBarriers draws live barriers; growing ones use a lighter glyph.
func (g *Game) renderBarriers(dst *core.Screen) {
	for _, b := range g.barriers {
		glyph, color := GrowingChar, core.ColorYellow
		if b.State == BarrierCompleted {
			glyph, color = CompletedChar, core.ColorBrightWhite
		}
		dst.DrawRect(g.toScreen(b.Bounds()), glyph, color)
	}
}

// renderCursor marks the placement cell with the current axis.
func (g *Game) renderCursor(dst *core.Screen) {
	glyph := CursorVertical
	if g.cursor.Axis == AxisHorizontal {
		glyph = CursorHorizontal
	}
	x := g.cursor.Cell.X / g.field.Cell
	y := g.cursor.Cell.Y/g.field.Cell + HUDRows
	if dst.Get(x, y) == ' ' {
		dst.SetColored(x, y, glyph, core.ColorCyan)
	}
}

// renderBall draws the ball at the cell containing its center.
func (g *Game) renderBall(dst *core.Screen) {
	x := int(g.ball.X) / g.field.Cell
	y := int(g.ball.Y)/g.field.Cell + HUDRows
	x = core.Clamp(x, 0, g.field.Columns()-1)
	y = core.Clamp(y, HUDRows, g.field.Rows()-1+HUDRows)
	dst.SetColored(x, y, BallChar, core.ColorBrightRed)
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + overlayBoxPadding
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
