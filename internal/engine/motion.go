package engine

import (
	"math"

	"github.com/vovakirdan/softskills-arcade/internal/core"
)

// DefaultCornerOffset is how far (in tiles) the four corner samples sit from
// an entity's center along each diagonal.
const DefaultCornerOffset = 0.35

// Entity is the shared shape of the player and every enemy.
type Entity struct {
	Pos    core.Vec // center, tile-fractional
	Speed  float64  // tiles per frame
	Radius float64  // 0 means a point entity sampled at its center only
}

// MoveResult is the outcome of one TryMove call.
type MoveResult struct {
	Pos      core.Vec
	BlockedX bool // X had a non-zero delta and was rejected
	BlockedY bool // Y had a non-zero delta and was rejected
}

// Blocked reports whether either axis was rejected.
func (r MoveResult) Blocked() bool {
	return r.BlockedX || r.BlockedY
}

// Mover resolves desired directions into collision-checked positions on a grid.
// One Mover serves every game; the grid's SolidSet carries the tile semantics.
type Mover struct {
	Grid         *Grid
	CornerOffset float64
}

// NewMover creates a Mover with the default corner offset.
func NewMover(g *Grid) Mover {
	return Mover{Grid: g, CornerOffset: DefaultCornerOffset}
}

// Collides reports whether an entity of the given radius centered at p would
// overlap a blocked tile: the center and four diagonal corners are sampled.
func (m Mover) Collides(p core.Vec, radius float64) bool {
	if m.Grid.BlockedAt(p) {
		return true
	}
	if radius <= 0 {
		return false
	}
	o := m.CornerOffset
	return m.Grid.IsBlocked(p.X-o, p.Y-o) ||
		m.Grid.IsBlocked(p.X+o, p.Y-o) ||
		m.Grid.IsBlocked(p.X-o, p.Y+o) ||
		m.Grid.IsBlocked(p.X+o, p.Y+o)
}

// TryMove moves e by (dx, dy)·Speed. Diagonal input is scaled by 1/√2 so every
// direction covers the same distance. X is resolved first, then Y from the
// possibly updated X, so a blocked axis does not stop the other one (wall
// sliding). When both axes are blocked the entity stays put.
func (m Mover) TryMove(e Entity, dx, dy float64) MoveResult {
	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}

	res := MoveResult{Pos: e.Pos}

	if dx != 0 {
		next := core.V(res.Pos.X+dx*e.Speed, res.Pos.Y)
		if m.Collides(next, e.Radius) {
			res.BlockedX = true
		} else {
			res.Pos = next
		}
	}

	if dy != 0 {
		next := core.V(res.Pos.X, res.Pos.Y+dy*e.Speed)
		if m.Collides(next, e.Radius) {
			res.BlockedY = true
		} else {
			res.Pos = next
		}
	}

	return res
}
