package ui

import (
	"github.com/samdwyer/penomaze/internal/maze"
	"github.com/samdwyer/penomaze/internal/tile"
)

// MazeView is the ASCII art of a maze prepared for drawing on a terminal.
type MazeView struct {
	Lines  []string
	Box    maze.BoundingBox
	alerts map[maze.Coordinate]bool
}

// NewMazeView renders m and marks every tile that disagrees with a neighbour.
func NewMazeView(m *maze.Maze) (*MazeView, error) {
	box, err := m.BoundingBox()
	if err != nil {
		return nil, err
	}
	lines, err := maze.AsciiArtRenderer{}.Lines(m)
	if err != nil {
		return nil, err
	}

	alerts := make(map[maze.Coordinate]bool)
	for _, inc := range maze.Inconsistencies(m) {
		alerts[inc.At] = true
		alerts[inc.Neighbor] = true
	}

	return &MazeView{Lines: lines, Box: box, alerts: alerts}, nil
}

// Width returns the width of the art in characters.
func (v *MazeView) Width() int {
	return v.Box.Width() * tile.ArtWidth
}

// Height returns the height of the art in lines.
func (v *MazeView) Height() int {
	return len(v.Lines)
}

// AlertCount returns the number of tiles marked as inconsistent.
func (v *MazeView) AlertCount() int {
	return len(v.alerts)
}

// TileAt returns the maze coordinate drawn at art column col and line row.
func (v *MazeView) TileAt(col, row int) maze.Coordinate {
	return maze.Coordinate{
		X: v.Box.Min.X + col/tile.ArtWidth,
		Y: v.Box.Min.Y + row/tile.ArtHeight,
	}
}

// IsAlert returns true if the tile at c disagrees with a neighbour.
func (v *MazeView) IsAlert(c maze.Coordinate) bool {
	return v.alerts[c]
}
