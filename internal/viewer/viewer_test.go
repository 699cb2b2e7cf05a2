package viewer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/penomaze/internal/maze"
	"github.com/samdwyer/penomaze/internal/tile"
	"github.com/samdwyer/penomaze/internal/ui"
)

// newTestViewer builds a viewer without a terminal screen.
func newTestViewer(t *testing.T, width, height int) *Viewer {
	t.Helper()
	m := maze.New()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.AddTile(maze.Coordinate{X: x, Y: y}, tile.Cross.Tile(0))
		}
	}
	view, err := ui.NewMazeView(m)
	require.NoError(t, err)
	return &Viewer{view: view, title: "test", running: true}
}

func TestScroll(t *testing.T) {
	v := newTestViewer(t, 3, 2)

	v.scroll(1, 1)
	assert.Equal(t, tile.ArtWidth, v.offsetX)
	assert.Equal(t, tile.ArtHeight, v.offsetY)

	// Clamped at the last tile column and row
	v.scroll(5, 5)
	assert.Equal(t, 2*tile.ArtWidth, v.offsetX)
	assert.Equal(t, tile.ArtHeight, v.offsetY)

	v.scroll(-10, -10)
	assert.Equal(t, 0, v.offsetX)
	assert.Equal(t, 0, v.offsetY)
}

func TestScrollSingleTile(t *testing.T) {
	v := newTestViewer(t, 1, 1)
	v.scroll(1, pageTiles)
	assert.Equal(t, 0, v.offsetX)
	assert.Equal(t, 0, v.offsetY)
}

func TestStatus(t *testing.T) {
	v := newTestViewer(t, 3, 2)
	status := v.status()

	assert.True(t, strings.HasPrefix(status, "test  3x2 tiles"), status)
	assert.NotContains(t, status, "inconsistent")
}

func TestStatusWithAlerts(t *testing.T) {
	m := maze.New()
	m.AddTile(maze.Coordinate{X: 0, Y: 0}, tile.Closed.Tile(0))
	m.AddTile(maze.Coordinate{X: 1, Y: 0}, tile.Cross.Tile(0))
	view, err := ui.NewMazeView(m)
	require.NoError(t, err)

	v := &Viewer{view: view, title: "bad"}
	assert.Contains(t, v.status(), "2 inconsistent tiles")
}
