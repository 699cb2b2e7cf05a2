// Package maze provides a sparse collection of tiles keyed by coordinate.
//
// Coordinates grow to the right (x) and downward (y). A tile occupies the
// unit square whose upper left corner is its coordinate:
//
//	  0       1       2     x
//	   +-------+-------+---->
//	   | (0,0) | (1,0) |
//	  1+-------+-------+
//	   | (0,1) | (1,1) |
//	  y|
//	   V
package maze

import (
	"errors"
	"iter"

	"github.com/samdwyer/penomaze/internal/tile"
)

// ErrEmptyMaze indicates an operation that needs at least one tile.
var ErrEmptyMaze = errors.New("maze: maze contains no tiles")

// Coordinate is the integer position of a tile.
type Coordinate struct {
	X, Y int
}

// Neighbor returns the coordinate adjacent to c in the given direction.
func (c Coordinate) Neighbor(d tile.Direction) Coordinate {
	switch d {
	case tile.North:
		return Coordinate{c.X, c.Y - 1}
	case tile.East:
		return Coordinate{c.X + 1, c.Y}
	case tile.South:
		return Coordinate{c.X, c.Y + 1}
	case tile.West:
		return Coordinate{c.X - 1, c.Y}
	default:
		return c
	}
}

// BoundingBox is the smallest rectangle holding every tile of a maze.
// Min is inclusive and Max is exclusive.
type BoundingBox struct {
	Min, Max Coordinate
}

// Width returns the number of columns in the box.
func (b BoundingBox) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the number of rows in the box.
func (b BoundingBox) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains returns true if c lies inside the box.
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.X >= b.Min.X && c.X < b.Max.X && c.Y >= b.Min.Y && c.Y < b.Max.Y
}

// Maze is a collection of tiles, at most one per coordinate.
type Maze struct {
	tiles map[Coordinate]tile.Tile
	order []Coordinate // first insertion order of each coordinate
}

// New creates an empty maze.
func New() *Maze {
	return &Maze{
		tiles: make(map[Coordinate]tile.Tile),
		order: make([]Coordinate, 0),
	}
}

// AddTile places a tile at the given coordinate, replacing any tile already there.
func (m *Maze) AddTile(c Coordinate, t tile.Tile) {
	if _, exists := m.tiles[c]; !exists {
		m.order = append(m.order, c)
	}
	m.tiles[c] = t
}

// Tile returns the tile at the given coordinate and whether one was found.
func (m *Maze) Tile(c Coordinate) (tile.Tile, bool) {
	t, ok := m.tiles[c]
	return t, ok
}

// Len returns the number of tiles in the maze.
func (m *Maze) Len() int {
	return len(m.tiles)
}

// Coordinates returns the occupied coordinates in insertion order.
func (m *Maze) Coordinates() []Coordinate {
	out := make([]Coordinate, len(m.order))
	copy(out, m.order)
	return out
}

// All iterates over every (coordinate, tile) pair in insertion order.
func (m *Maze) All() iter.Seq2[Coordinate, tile.Tile] {
	return func(yield func(Coordinate, tile.Tile) bool) {
		for _, c := range m.order {
			if !yield(c, m.tiles[c]) {
				return
			}
		}
	}
}

// BoundingBox computes the bounding box of all tiles.
func (m *Maze) BoundingBox() (BoundingBox, error) {
	if len(m.order) == 0 {
		return BoundingBox{}, ErrEmptyMaze
	}

	first := m.order[0]
	box := BoundingBox{
		Min: first,
		Max: Coordinate{first.X + 1, first.Y + 1},
	}
	for _, c := range m.order[1:] {
		box.Min.X = min(box.Min.X, c.X)
		box.Min.Y = min(box.Min.Y, c.Y)
		box.Max.X = max(box.Max.X, c.X+1)
		box.Max.Y = max(box.Max.Y, c.Y+1)
	}
	return box, nil
}

// Equal reports whether both mazes hold the same tiles at the same coordinates.
func (m *Maze) Equal(other *Maze) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.tiles) != len(other.tiles) {
		return false
	}
	for c, t := range m.tiles {
		o, ok := other.tiles[c]
		if !ok || !t.Equal(o) {
			return false
		}
	}
	return true
}
