package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/penomaze/internal/tile"
)

func TestWallsConsistentHorizontalMismatch(t *testing.T) {
	m := New()
	// Cross is open east, Closed is walled west.
	m.AddTile(Coordinate{0, 0}, tile.Cross.Tile(0))
	m.AddTile(Coordinate{1, 0}, tile.Closed.Tile(0))

	assert.False(t, AreWallsConsistent(m))

	incs := Inconsistencies(m)
	require.Len(t, incs, 1)
	assert.Equal(t, Inconsistency{At: Coordinate{0, 0}, Direction: tile.East, Neighbor: Coordinate{1, 0}}, incs[0])
}

func TestWallsConsistentVerticalMismatch(t *testing.T) {
	m := New()
	// Corner is walled north and west, open south.
	m.AddTile(Coordinate{0, 0}, tile.Corner.Tile(0))
	m.AddTile(Coordinate{0, 1}, tile.Closed.Tile(0))

	assert.False(t, AreWallsConsistent(m))
	assert.Len(t, Inconsistencies(m), 1)
}

func TestWallsConsistentAgreeingEdges(t *testing.T) {
	m := New()
	// Corner(3) is walled west and south, open east, so a Cross to its east agrees.
	m.AddTile(Coordinate{0, 0}, tile.Corner.Tile(3))
	m.AddTile(Coordinate{1, 0}, tile.Cross.Tile(0))
	m.AddTile(Coordinate{0, 1}, tile.Closed.Tile(0))

	// Corner(3) south wall meets Closed north wall.
	assert.True(t, AreWallsConsistent(m))
	assert.Empty(t, Inconsistencies(m))
}

func TestWallsConsistentIsolatedTiles(t *testing.T) {
	m := New()
	m.AddTile(Coordinate{0, 0}, tile.Cross.Tile(0))
	m.AddTile(Coordinate{2, 0}, tile.Closed.Tile(0))
	m.AddTile(Coordinate{1, 1}, tile.DeadEnd.Tile(1))

	assert.True(t, AreWallsConsistent(m))
}

func TestWallsConsistentEmpty(t *testing.T) {
	assert.True(t, AreWallsConsistent(New()))
	assert.Empty(t, Inconsistencies(New()))
}

func TestInconsistenciesReportEachEdgeOnce(t *testing.T) {
	m := New()
	m.AddTile(Coordinate{1, 1}, tile.Cross.Tile(0))
	m.AddTile(Coordinate{1, 0}, tile.Closed.Tile(0))
	m.AddTile(Coordinate{2, 1}, tile.Closed.Tile(0))
	m.AddTile(Coordinate{1, 2}, tile.Cross.Tile(0))

	incs := Inconsistencies(m)
	assert.Equal(t, []Inconsistency{
		{At: Coordinate{1, 1}, Direction: tile.North, Neighbor: Coordinate{1, 0}},
		{At: Coordinate{1, 1}, Direction: tile.East, Neighbor: Coordinate{2, 1}},
	}, incs)
	assert.Equal(t, "(1,1) north edge disagrees with (1,0)", incs[0].String())
}
