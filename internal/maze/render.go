package maze

import (
	"bufio"
	"io"
	"strings"

	"github.com/samdwyer/penomaze/internal/tile"
)

// blankCell is drawn for every art line of an empty grid position.
var blankCell = strings.Repeat(" ", tile.ArtWidth)

// AsciiArtRenderer draws a maze as text, five lines of nine characters per tile.
type AsciiArtRenderer struct{}

// Render writes the ASCII art of every row of the maze's bounding box to w.
// Positions without a tile are drawn as blanks.
func (AsciiArtRenderer) Render(m *Maze, w io.Writer) error {
	box, err := m.BoundingBox()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for y := box.Min.Y; y < box.Max.Y; y++ {
		// Collect art once per grid row
		row := make([]*[tile.ArtHeight]string, 0, box.Width())
		for x := box.Min.X; x < box.Max.X; x++ {
			if t, ok := m.Tile(Coordinate{x, y}); ok {
				art := t.AsciiArt()
				row = append(row, &art)
			} else {
				row = append(row, nil)
			}
		}

		for line := 0; line < tile.ArtHeight; line++ {
			for _, art := range row {
				if art != nil {
					bw.WriteString(art[line])
				} else {
					bw.WriteString(blankCell)
				}
			}
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}

// RenderString returns the ASCII art of the maze as a single string.
func (r AsciiArtRenderer) RenderString(m *Maze) (string, error) {
	var sb strings.Builder
	if err := r.Render(m, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Lines returns the ASCII art of the maze split into lines without newlines.
func (r AsciiArtRenderer) Lines(m *Maze) ([]string, error) {
	out, err := r.RenderString(m)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n"), nil
}
