// Package tile provides the wall configuration of a single maze square.
package tile

import (
	"fmt"
	"strconv"
	"strings"
)

// Art dimensions of a single tile.
const (
	ArtWidth  = 9
	ArtHeight = 5
)

// Tile represents a unit square with either a wall or an opening on each side.
// Tiles are values: rotating one never affects a copy held elsewhere.
type Tile struct {
	walls [4]bool // indexed by Direction
}

// New creates a tile from a list of four walls in north, east, south, west order,
// rotated the given number of times.
func New(walls []bool, rotations int) (Tile, error) {
	if len(walls) != 4 {
		return Tile{}, fmt.Errorf("%w, not %d", ErrInvalidWallCount, len(walls))
	}

	var t Tile
	copy(t.walls[:], walls)
	return t.Rotate(rotations), nil
}

// FromWalls creates a tile directly from a fixed wall array.
func FromWalls(walls [4]bool) Tile {
	return Tile{walls: walls}
}

// HasWall returns true if the tile has a wall in the given direction.
func (t Tile) HasWall(d Direction) (bool, error) {
	if !d.Valid() {
		return false, fmt.Errorf("%w, not %d", ErrInvalidDirection, d)
	}
	return t.walls[d], nil
}

// IsOpen returns true if the tile has no wall in the given direction.
func (t Tile) IsOpen(d Direction) (bool, error) {
	wall, err := t.HasWall(d)
	if err != nil {
		return false, err
	}
	return !wall, nil
}

// Walls returns the wall flags in north, east, south, west order.
func (t Tile) Walls() [4]bool {
	return t.walls
}

// Rotate returns the tile turned n times by 90 degrees counter clockwise.
// Each turn moves the wall of slot i-1 into slot i and the west wall to north.
func (t Tile) Rotate(n int) Tile {
	for i := 0; i < n%4; i++ {
		west := t.walls[West]
		for d := West; d > North; d-- {
			t.walls[d] = t.walls[d-1]
		}
		t.walls[North] = west
	}
	return t
}

// Equal reports whether both tiles have the same walls.
func (t Tile) Equal(other Tile) bool {
	return t.walls == other.walls
}

// AsciiArt returns five lines of nine characters that draw the tile as a box.
func (t Tile) AsciiArt() [ArtHeight]string {
	var art [ArtHeight]string

	art[0] = horizontalEdge(t.walls[North])
	art[ArtHeight-1] = horizontalEdge(t.walls[South])

	side := "     "
	if t.walls[West] {
		side = "|    "
	}
	if t.walls[East] {
		side += "   |"
	} else {
		side += "    "
	}
	for i := 1; i < ArtHeight-1; i++ {
		art[i] = side
	}

	return art
}

// String returns the tile as Tile(north,east,south,west).
func (t Tile) String() string {
	parts := make([]string, len(t.walls))
	for i, w := range t.walls {
		parts[i] = strconv.FormatBool(w)
	}
	return "Tile(" + strings.Join(parts, ",") + ")"
}

func horizontalEdge(wall bool) string {
	if wall {
		return "+-------+"
	}
	return "+       +"
}
