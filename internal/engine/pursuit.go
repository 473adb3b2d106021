package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/softskills-arcade/internal/core"
)

// Chaser is an enemy entity driven by Pursuit.
type Chaser struct {
	Entity
	Dir      core.Vec // unit cardinal direction, never diagonal
	Redirect int      // frames until the next decision; <= 0 forces one
}

// NewChaser creates a chaser that decides on its first update.
func NewChaser(pos core.Vec, speed, radius float64) Chaser {
	return Chaser{Entity: Entity{Pos: pos, Speed: speed, Radius: radius}}
}

// Pursuit is axis-locked chase AI. It is not pathfinding: a chaser walks along
// the axis of larger displacement until its timer runs out or it bumps a wall.
type Pursuit struct {
	MinInterval int
	MaxInterval int
	rng         *rand.Rand
}

// NewPursuit creates pursuit AI with redirect intervals in [minInterval,
// maxInterval). A nil rng gets a fixed seed so runs stay reproducible.
func NewPursuit(minInterval, maxInterval int, rng *rand.Rand) *Pursuit {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Pursuit{MinInterval: minInterval, MaxInterval: maxInterval, rng: rng}
}

// Decide picks the cardinal direction from from toward target. Equal displacement
// goes vertical; zero displacement goes up.
func Decide(from, target core.Vec) core.Vec {
	d := target.Sub(from)
	if math.Abs(d.X) > math.Abs(d.Y) {
		return core.V(core.Sign(d.X), 0)
	}
	if d.Y > 0 {
		return core.V(0, 1)
	}
	return core.V(0, -1)
}

func (p *Pursuit) interval() int {
	span := p.MaxInterval - p.MinInterval
	if span <= 0 {
		return p.MinInterval
	}
	return p.MinInterval + p.rng.Intn(span)
}

// Update runs one frame of AI and motion for c.
func (p *Pursuit) Update(c *Chaser, target core.Vec, m Mover) MoveResult {
	c.Redirect--
	if c.Redirect <= 0 {
		c.Dir = Decide(c.Pos, target)
		c.Redirect = p.interval()
	}

	res := m.TryMove(c.Entity, c.Dir.X, c.Dir.Y)
	c.Pos = res.Pos
	if res.Blocked() {
		c.Redirect = 0
	}
	return res
}
