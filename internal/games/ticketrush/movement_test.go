package ticketrush

import (
	"math"
	"testing"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// placeFree moves a player to an open floor spot away from every station.
func placeFree(g *Game, p *Player) {
	p.Rect = core.NewRectF(10, 11, g.cfg.Player.Width, g.cfg.Player.Height)
}

func heldFrame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Hold(a)
	}
	return f
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMovementPerAxis(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)
	step := p.Speed * g.dt

	x, y := p.Rect.X, p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionRight))
	if !almostEqual(p.Rect.X, x+step) || p.Rect.Y != y {
		t.Errorf("Right should move X by %f, got (%f,%f)", step, p.Rect.X-x, p.Rect.Y-y)
	}

	x, y = p.Rect.X, p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionDown))
	if p.Rect.X != x || !almostEqual(p.Rect.Y, y+step) {
		t.Errorf("Down should move Y by %f, got (%f,%f)", step, p.Rect.X-x, p.Rect.Y-y)
	}
}

func TestDiagonalNormalized(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)

	x, y := p.Rect.X, p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionRight, core.ActionDown))

	want := p.Speed * g.dt * invSqrt2
	if !almostEqual(p.Rect.X-x, want) || !almostEqual(p.Rect.Y-y, want) {
		t.Errorf("Diagonal step should be %f per axis, got (%f,%f)", want, p.Rect.X-x, p.Rect.Y-y)
	}
}

func TestOpposedInputsCancel(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)

	x, y := p.Rect.X, p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionLeft, core.ActionRight))
	if p.Rect.X != x || p.Rect.Y != y {
		t.Error("Opposed directions should cancel to zero velocity")
	}
}

func TestSlowChaosHalvesMovement(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)
	g.chaos = &chaosWindow{
		tmpl:      catalog.ChaosTemplate{ID: catalog.ChaosSlow, DurationSecs: 10},
		expiresAt: g.now + 10,
	}

	x := p.Rect.X
	g.movePlayer(p, heldFrame(core.ActionRight))

	want := 0.5 * p.Speed * g.dt
	if !almostEqual(p.Rect.X-x, want) {
		t.Errorf("SLOW should halve displacement to %f, got %f", want, p.Rect.X-x)
	}
}

func TestReverseChaosInvertsControls(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)
	g.chaos = &chaosWindow{
		tmpl:      catalog.ChaosTemplate{ID: catalog.ChaosReverse, DurationSecs: 8},
		expiresAt: g.now + 8,
	}

	x := p.Rect.X
	g.movePlayer(p, heldFrame(core.ActionLeft))
	if p.Rect.X <= x {
		t.Errorf("Left under REVERSE should move right, went from %f to %f", x, p.Rect.X)
	}

	y := p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionUp))
	if p.Rect.Y <= y {
		t.Errorf("Up under REVERSE should move down, went from %f to %f", y, p.Rect.Y)
	}
}

func TestFacingOverrideOrder(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)

	g.movePlayer(p, heldFrame(core.ActionDown, core.ActionRight))
	if p.Facing != FacingRight {
		t.Errorf("Down+right should face right, got %s", p.Facing)
	}

	g.movePlayer(p, heldFrame(core.ActionUp, core.ActionLeft))
	if p.Facing != FacingUp {
		t.Errorf("Up+left should face up, got %s", p.Facing)
	}

	// No input keeps the previous facing.
	g.movePlayer(p, heldFrame())
	if p.Facing != FacingUp {
		t.Errorf("Idle tick should keep facing, got %s", p.Facing)
	}
}

func TestWallSlide(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	p.Rect = core.NewRectF(0, 11, g.cfg.Player.Width, g.cfg.Player.Height)

	y := p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionLeft, core.ActionUp))

	if p.Rect.X != 0 {
		t.Errorf("X step into the wall should be rejected, got %f", p.Rect.X)
	}
	if p.Rect.Y >= y {
		t.Error("Y step should still apply while X is blocked")
	}
}

func TestStationSlide(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	// Just above the desk: a downward step collides, a sideways step is free.
	p.Rect = core.NewRectF(30, g.mapH-5.5, g.cfg.Player.Width, g.cfg.Player.Height)

	x, y := p.Rect.X, p.Rect.Y
	g.movePlayer(p, heldFrame(core.ActionDown, core.ActionRight))

	if p.Rect.Y != y {
		t.Errorf("Y step into the desk should be rejected, got %f", p.Rect.Y-y)
	}
	if p.Rect.X <= x {
		t.Error("X step should still apply while Y is blocked")
	}
}

func TestHeldBlockTracksHolder(t *testing.T) {
	g := newPlayingGame()
	p := g.players[0]
	placeFree(g, p)
	p.Holding = &Block{Kind: "MATH", Rect: core.NewRectF(0, 0, 3, 1)}

	g.movePlayer(p, heldFrame(core.ActionRight))

	if !almostEqual(p.Holding.Rect.X, p.Rect.X+heldOffsetX) {
		t.Errorf("Held block X should track holder, got %f want %f",
			p.Holding.Rect.X, p.Rect.X+heldOffsetX)
	}
	if !almostEqual(p.Holding.Rect.Y, p.Rect.Y-heldOffsetY) {
		t.Errorf("Held block Y should track holder, got %f want %f",
			p.Holding.Rect.Y, p.Rect.Y-heldOffsetY)
	}
}
