package maze

import (
	"fmt"

	"github.com/samdwyer/penomaze/internal/tile"
)

// Inconsistency describes a shared edge on which two neighbouring tiles disagree.
type Inconsistency struct {
	At        Coordinate
	Direction tile.Direction
	Neighbor  Coordinate
}

// String returns a short description of the mismatching edge.
func (i Inconsistency) String() string {
	return fmt.Sprintf("(%d,%d) %s edge disagrees with (%d,%d)",
		i.At.X, i.At.Y, i.Direction, i.Neighbor.X, i.Neighbor.Y)
}

// AreWallsConsistent returns true if every pair of adjacent tiles agrees on
// whether their shared edge is walled. Tiles without a neighbour in some
// direction impose no constraint there.
func AreWallsConsistent(m *Maze) bool {
	for c, t := range m.All() {
		if _, found := firstMismatch(m, c, t); found {
			return false
		}
	}
	return true
}

// Inconsistencies returns every mismatching shared edge in insertion order.
// Each edge is reported once, from the tile that was added first.
func Inconsistencies(m *Maze) []Inconsistency {
	var result []Inconsistency
	seen := make(map[Inconsistency]bool)

	for c, t := range m.All() {
		for _, d := range tile.Directions {
			n := c.Neighbor(d)
			other, ok := m.Tile(n)
			if !ok || agrees(t, other, d) {
				continue
			}
			if seen[Inconsistency{At: n, Direction: d.Opposite(), Neighbor: c}] {
				continue
			}
			inc := Inconsistency{At: c, Direction: d, Neighbor: n}
			seen[inc] = true
			result = append(result, inc)
		}
	}
	return result
}

// firstMismatch returns the first direction in which t disagrees with its neighbour.
func firstMismatch(m *Maze, c Coordinate, t tile.Tile) (tile.Direction, bool) {
	for _, d := range tile.Directions {
		other, ok := m.Tile(c.Neighbor(d))
		if ok && !agrees(t, other, d) {
			return d, true
		}
	}
	return 0, false
}

// agrees compares t's wall in direction d with the neighbour's opposite wall.
func agrees(t, neighbor tile.Tile, d tile.Direction) bool {
	return t.Walls()[d] == neighbor.Walls()[d.Opposite()]
}
