package ticketrush

import (
	"math"

	"github.com/vovakirdan/ticket-rush/internal/catalog"
	"github.com/vovakirdan/ticket-rush/internal/core"
)

// Held block visual offset relative to the holder.
const (
	heldOffsetX = 0.5
	heldOffsetY = 1.0
)

var invSqrt2 = 1 / math.Sqrt2

// movePlayer advances one player by one tick from the held directional
// input. Movement is resolved per axis: the X displacement is applied
// only if the resulting rectangle stays inside the map and clear of all
// stations, then Y is resolved the same way independently. This lets a
// player slide along a wall when moving diagonally into it.
func (g *Game) movePlayer(p *Player, in core.InputFrame) {
	up := in.IsHeld(core.ActionUp)
	down := in.IsHeld(core.ActionDown)
	left := in.IsHeld(core.ActionLeft)
	right := in.IsHeld(core.ActionRight)

	// Chaos: reversed controls swap each axis pair before reading.
	if g.chaosActive(catalog.ChaosReverse) {
		up, down = down, up
		left, right = right, left
	}

	var vx, vy float64
	if left {
		vx -= p.Speed
	}
	if right {
		vx += p.Speed
	}
	if up {
		vy -= p.Speed
	}
	if down {
		vy += p.Speed
	}

	// Chaos: memory leak halves movement.
	if g.chaosActive(catalog.ChaosSlow) {
		vx *= 0.5
		vy *= 0.5
	}

	// Normalize diagonals so diagonal speed equals axis speed.
	if vx != 0 && vy != 0 {
		vx *= invSqrt2
		vy *= invSqrt2
	}

	dx := vx * g.dt
	dy := vy * g.dt

	// Resolve X, then Y. Each axis is a hard accept-or-reject.
	next := p.Rect
	next.X += dx
	if g.fits(next) {
		p.Rect.X = next.X
	}

	next = p.Rect
	next.Y += dy
	if g.fits(next) {
		p.Rect.Y = next.Y
	}

	// Facing follows the intended movement vector; the last nonzero axis
	// in down, left, up, right order wins.
	if vy > 0 {
		p.Facing = FacingDown
	}
	if vx < 0 {
		p.Facing = FacingLeft
	}
	if vy < 0 {
		p.Facing = FacingUp
	}
	if vx > 0 {
		p.Facing = FacingRight
	}

	// A held block tracks its holder every tick.
	if p.Holding != nil {
		p.Holding.Rect.X = p.Rect.X + heldOffsetX
		p.Holding.Rect.Y = p.Rect.Y - heldOffsetY
	}
}

// fits reports whether the rectangle stays inside the map bounds and does
// not overlap any station.
func (g *Game) fits(r core.RectF) bool {
	if !r.Inside(g.mapW, g.mapH) {
		return false
	}
	for _, s := range g.stations {
		if r.Intersects(s.Rect) {
			return false
		}
	}
	return true
}
