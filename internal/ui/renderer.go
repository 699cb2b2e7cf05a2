package ui

import "github.com/gdamore/tcell/v2"

// Renderer handles drawing a maze view to a canvas.
type Renderer struct {
	canvas  Canvas
	palette Palette
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, palette Palette) *Renderer {
	return &Renderer{canvas: canvas, palette: palette}
}

// Render draws the part of the view that starts at art position (offsetX, offsetY).
// The last screen line is left free for a status message.
func (r *Renderer) Render(view *MazeView, offsetX, offsetY int) {
	r.canvas.Clear()

	width, height := r.canvas.Size()
	rows := height - 1

	for y := 0; y < rows; y++ {
		row := y + offsetY
		if row < 0 || row >= len(view.Lines) {
			continue
		}
		line := view.Lines[row]
		for x := 0; x < width; x++ {
			col := x + offsetX
			if col < 0 || col >= len(line) {
				continue
			}
			ch := rune(line[col])
			if ch == ' ' {
				continue
			}
			style := r.wallStyle(view.IsAlert(view.TileAt(col, row)))
			r.canvas.SetContent(x, y, ch, style)
		}
	}

	r.canvas.Show()
}

// RenderMessage displays a message on the given screen line.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(r.palette.Text)
	for i, ch := range msg {
		r.canvas.SetContent(i, y, ch, style)
	}
	r.canvas.Show()
}

// wallStyle returns the style for wall characters of a tile.
func (r *Renderer) wallStyle(alert bool) tcell.Style {
	if alert {
		return tcell.StyleDefault.Foreground(r.palette.Alert).Bold(true)
	}
	return tcell.StyleDefault.Foreground(r.palette.Wall)
}
