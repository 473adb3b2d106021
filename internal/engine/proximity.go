package engine

import "github.com/vovakirdan/softskills-arcade/internal/core"

// Proximity answers "is a within threshold of b" in pixel units. Positions are
// tile-fractional and are scaled by TileSize before comparison, so every call
// site states its threshold in the same units.
type Proximity struct {
	TileSize float64
}

// Distance returns the Euclidean distance between a and b in pixels.
func (p Proximity) Distance(a, b core.Vec) float64 {
	return a.Dist(b) * p.TileSize
}

// Within reports whether a and b are strictly closer than threshold pixels.
func (p Proximity) Within(a, b core.Vec, threshold float64) bool {
	return p.Distance(a, b) < threshold
}
