package mazefile

import (
	"strings"

	"github.com/samdwyer/penomaze/internal/maze"
	"github.com/samdwyer/penomaze/internal/tile"
)

// orientations maps orientation letters to counter clockwise rotations.
var orientations = map[string]int{
	"N": 0,
	"E": 1,
	"S": 2,
	"W": 3,
}

// Builder turns positioned tile tokens such as "Corner.E" into tiles of a maze.
type Builder struct {
	maze *maze.Maze
}

// NewBuilder creates a builder that adds tiles to m.
func NewBuilder(m *maze.Maze) *Builder {
	return &Builder{maze: m}
}

// Maze returns the maze being built.
func (b *Builder) Maze() *maze.Maze {
	return b.maze
}

// Consume adds the tile described by token at coordinate c.
func (b *Builder) Consume(c maze.Coordinate, token string) error {
	t, err := ParseTileToken(token)
	if err != nil {
		return err
	}
	b.maze.AddTile(c, t)
	return nil
}

// ParseTileToken returns a new tile for a "<Name>.<Orientation>" token.
func ParseTileToken(token string) (tile.Tile, error) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return tile.Tile{}, violationf("tile token must have a name and an orientation separated by '.'")
	}

	name, orientation := parts[0], parts[1]

	variant, ok := tile.ParseVariant(name)
	if !ok {
		return tile.Tile{}, violationf("invalid tile token '%s'", name)
	}

	rotations, ok := orientations[orientation]
	if !ok {
		return tile.Tile{}, violationf("invalid orientation token '%s'", orientation)
	}

	return variant.Tile(rotations), nil
}
