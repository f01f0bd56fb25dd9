package jezzball

import (
	"testing"

	"github.com/newmanne/jezzball/internal/core"
)

func TestCollisionScenario(t *testing.T) {
	ball := Ball{X: 400, Y: 300, VX: 3, VY: 3, Radius: 5}
	wall := &Barrier{ID: 1, Origin: Point{400, 290}, Dir: DirLeft, Extent: 20, Thickness: 20, State: BarrierGrowing}

	ball.Move()
	hit, ok := ResolveCollision(&ball, []Collidable{wall})
	if !ok {
		t.Fatal("ResolveCollision() found no hit")
	}
	if hit.Index != 0 || !hit.Destroyed {
		t.Errorf("hit = %+v, expected index 0 destroyed", hit)
	}
	if ball.VX != 3 || ball.VY != -3 {
		t.Errorf("velocity = (%v, %v), expected (3, -3)", ball.VX, ball.VY)
	}
	if wall.State != BarrierDestroyed {
		t.Errorf("State = %s, expected Destroyed", wall.State)
	}
}

func TestCollisionReflectsByAxis(t *testing.T) {
	tests := []struct {
		name   string
		wall   *Barrier
		ball   Ball
		wantVX float64
		wantVY float64
	}{
		{
			name:   "horizontal negates vy",
			wall:   &Barrier{Origin: Point{100, 100}, Dir: DirRight, Extent: 60, Thickness: 20},
			ball:   Ball{X: 130, Y: 97, VX: 2, VY: 4, Radius: 5},
			wantVX: 2, wantVY: -4,
		},
		{
			name:   "vertical negates vx",
			wall:   &Barrier{Origin: Point{400, 320}, Dir: DirUp, Extent: 40, Thickness: 20},
			ball:   Ball{X: 397, Y: 300, VX: 3, VY: 1, Radius: 5},
			wantVX: -3, wantVY: 1,
		},
	}

	for _, tt := range tests {
		ball := tt.ball
		if _, ok := ResolveCollision(&ball, []Collidable{tt.wall}); !ok {
			t.Fatalf("%s: ResolveCollision() found no hit", tt.name)
		}
		if ball.VX != tt.wantVX || ball.VY != tt.wantVY {
			t.Errorf("%s: velocity = (%v, %v), expected (%v, %v)", tt.name, ball.VX, ball.VY, tt.wantVX, tt.wantVY)
		}
	}
}

func TestCollisionCompletedSurvives(t *testing.T) {
	ball := Ball{X: 390, Y: 300, VX: 3, VY: 3, Radius: 5}
	wall := &Barrier{Origin: Point{400, 290}, Dir: DirLeft, Extent: 20, Thickness: 20, State: BarrierCompleted}

	hit, ok := ResolveCollision(&ball, []Collidable{wall})
	if !ok {
		t.Fatal("ResolveCollision() found no hit")
	}
	if hit.Destroyed {
		t.Error("completed barrier reported destroyed")
	}
	if wall.State != BarrierCompleted {
		t.Errorf("State = %s, expected Completed", wall.State)
	}
	if ball.VY != -3 {
		t.Errorf("VY = %v, expected -3", ball.VY)
	}
}

func TestCollisionOneHitPerTick(t *testing.T) {
	ball := Ball{X: 410, Y: 300, VX: 3, VY: 3, Radius: 5}
	first := &Barrier{ID: 1, Origin: Point{400, 290}, Dir: DirRight, Extent: 40, Thickness: 20}
	second := &Barrier{ID: 2, Origin: Point{400, 295}, Dir: DirRight, Extent: 40, Thickness: 20}

	hit, ok := ResolveCollision(&ball, []Collidable{first, second})
	if !ok || hit.Index != 0 {
		t.Fatalf("hit = %+v, %v, expected index 0", hit, ok)
	}
	if ball.VY != -3 {
		t.Errorf("VY = %v, expected a single reflection to -3", ball.VY)
	}
	if first.State != BarrierDestroyed {
		t.Errorf("first State = %s, expected Destroyed", first.State)
	}
	if second.State != BarrierGrowing {
		t.Errorf("second State = %s, expected Growing", second.State)
	}
}

func TestCollisionMiss(t *testing.T) {
	ball := Ball{X: 100, Y: 100, VX: 3, VY: 3, Radius: 5}
	wall := &Barrier{Origin: Point{400, 290}, Dir: DirLeft, Extent: 20, Thickness: 20}

	hit, ok := ResolveCollision(&ball, []Collidable{wall})
	if ok || hit.Index != -1 {
		t.Errorf("ResolveCollision() = %+v, %v, expected no hit", hit, ok)
	}
	if ball.VX != 3 || ball.VY != 3 {
		t.Errorf("velocity changed on miss: (%v, %v)", ball.VX, ball.VY)
	}
}

// solidBlock is a Collidable that cannot break.
type solidBlock struct{}

func (solidBlock) Bounds() core.Rect { return core.Rect{X: 0, Y: 0, W: 10, H: 10} }
func (solidBlock) Axis() Axis        { return AxisVertical }

func TestCollisionNonBreakable(t *testing.T) {
	ball := Ball{X: 12, Y: 5, VX: -2, VY: 1, Radius: 3}

	hit, ok := ResolveCollision(&ball, []Collidable{solidBlock{}})
	if !ok || hit.Destroyed {
		t.Errorf("hit = %+v, %v, expected non-destroying hit", hit, ok)
	}
	if ball.VX != 2 {
		t.Errorf("VX = %v, expected 2", ball.VX)
	}
}
