// Package engine holds the real-time core shared by the arcade games: the tile
// grid, axis-separated motion with corner sampling, chase AI, proximity checks,
// frame-driven timers and the single-pending transition scheduler.
//
// Nothing in this package renders, reads keys or plays audio. Hosts talk to it
// through InputSource and FeedbackSink, and games hand read-only snapshots to
// whatever draws them.
package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/softskills-arcade/internal/core"
)

// Tile is the semantic kind of a grid cell.
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
	TileDesk
	TilePlant
	TileComputer
	TileVending
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	case TileDesk:
		return "desk"
	case TilePlant:
		return "plant"
	case TileComputer:
		return "computer"
	case TileVending:
		return "vending"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}

// SolidSet is the per-game set of tiles that block movement.
type SolidSet uint32

// SolidOf builds a SolidSet from tile kinds.
func SolidOf(tiles ...Tile) SolidSet {
	var s SolidSet
	for _, t := range tiles {
		s |= 1 << t
	}
	return s
}

// Has reports whether t is solid in this set.
func (s SolidSet) Has(t Tile) bool {
	return s&(1<<t) != 0
}

var (
	// MazeSolid: only walls block in the maze game.
	MazeSolid = SolidOf(TileWall)
	// OfficeSolid: furniture blocks too, computers sit on desks and are walkable.
	OfficeSolid = SolidOf(TileWall, TileDesk, TilePlant, TileVending)
)

// Legends map layout runes to tiles.
var (
	MazeLegend = map[rune]Tile{
		'#': TileWall,
		'.': TileFloor,
		' ': TileFloor,
	}
	OfficeLegend = map[rune]Tile{
		'#': TileWall,
		'.': TileFloor,
		' ': TileFloor,
		'D': TileDesk,
		'P': TilePlant,
		'C': TileComputer,
		'V': TileVending,
	}
)

var (
	ErrEmptyGrid   = errors.New("engine: empty grid")
	ErrRaggedGrid  = errors.New("engine: grid rows have different lengths")
	ErrUnknownTile = errors.New("engine: unknown tile rune")
)

// Grid is an immutable row-major tile map with its origin at the top-left.
type Grid struct {
	width  int
	height int
	tiles  []Tile
	solid  SolidSet
}

// NewGrid builds a grid from rows of tiles. All rows must have the same length.
func NewGrid(rows [][]Tile, solid SolidSet) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	g := &Grid{
		width:  w,
		height: len(rows),
		tiles:  make([]Tile, 0, w*len(rows)),
		solid:  solid,
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrRaggedGrid, y, len(row), w)
		}
		g.tiles = append(g.tiles, row...)
	}
	return g, nil
}

// ParseGrid builds a grid from a text layout, one string per row.
func ParseGrid(layout []string, legend map[rune]Tile, solid SolidSet) (*Grid, error) {
	rows := make([][]Tile, len(layout))
	for y, line := range layout {
		for x, r := range []rune(line) {
			t, ok := legend[r]
			if !ok {
				return nil, fmt.Errorf("%w %q at (%d, %d)", ErrUnknownTile, r, x, y)
			}
			rows[y] = append(rows[y], t)
		}
	}
	return NewGrid(rows, solid)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Solid returns the grid's solid tile set.
func (g *Grid) Solid() SolidSet { return g.solid }

// TileAt returns the tile at (col, row). ok is false outside the grid.
func (g *Grid) TileAt(col, row int) (t Tile, ok bool) {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return TileWall, false
	}
	return g.tiles[row*g.width+col], true
}

// IsBlocked reports whether a continuous tile-fractional point lies on a solid
// tile. Anything outside the grid (or NaN) is blocked.
func (g *Grid) IsBlocked(x, y float64) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return true
	}
	if x < 0 || y < 0 || x >= float64(g.width) || y >= float64(g.height) {
		return true
	}
	col, row := core.V(x, y).Cell()
	t, ok := g.TileAt(col, row)
	if !ok {
		return true
	}
	return g.solid.Has(t)
}

// BlockedAt is IsBlocked for a Vec.
func (g *Grid) BlockedAt(p core.Vec) bool {
	return g.IsBlocked(p.X, p.Y)
}

// BorderOpenings lists the border cells that are not solid, i.e. the authored
// exits of an otherwise sealed arena.
func (g *Grid) BorderOpenings() [][2]int {
	var open [][2]int
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if row != 0 && row != g.height-1 && col != 0 && col != g.width-1 {
				continue
			}
			if t, _ := g.TileAt(col, row); !g.solid.Has(t) {
				open = append(open, [2]int{col, row})
			}
		}
	}
	return open
}

// String renders the grid with '#' for solid tiles and '.' for the rest.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.width; col++ {
			t, _ := g.TileAt(col, row)
			if g.solid.Has(t) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
