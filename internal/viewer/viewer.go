// Package viewer provides an interactive, scrollable terminal view of a maze.
package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/penomaze/internal/maze"
	"github.com/samdwyer/penomaze/internal/telemetry"
	"github.com/samdwyer/penomaze/internal/tile"
	"github.com/samdwyer/penomaze/internal/ui"
)

// pageTiles is the number of tile rows moved by page up and page down.
const pageTiles = 4

// Viewer holds the state of an interactive maze view.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	view     *ui.MazeView
	title    string
	offsetX  int
	offsetY  int
	running  bool
}

// New creates a viewer for m on a fresh terminal screen.
func New(m *maze.Maze, title string, palette ui.Palette) (*Viewer, error) {
	view, err := ui.NewMazeView(m)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare maze view: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		view:     view,
		title:    title,
		running:  true,
	}, nil
}

// Run executes the view loop until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	_, span := tracer.Start(ctx, "viewer.init")
	span.SetAttributes(
		attribute.String("viewer.title", v.title),
		attribute.Int("viewer.art_width", v.view.Width()),
		attribute.Int("viewer.art_height", v.view.Height()),
		attribute.Int("viewer.alerts", v.view.AlertCount()),
	)
	span.End()

	for v.running {
		v.renderer.Render(v.view, v.offsetX, v.offsetY)
		_, height := v.screen.Size()
		v.renderer.RenderMessage(v.status(), height-1)

		v.handleInput()
	}

	v.screen.Close()
	return nil
}

// status returns the text of the bottom screen line.
func (v *Viewer) status() string {
	msg := fmt.Sprintf("%s  %dx%d tiles", v.title, v.view.Box.Width(), v.view.Box.Height())
	if n := v.view.AlertCount(); n > 0 {
		msg += fmt.Sprintf("  %d inconsistent tiles", n)
	}
	return msg + "  [arrows scroll, q quits]"
}

// handleInput processes a single input event.
func (v *Viewer) handleInput() {
	ev := v.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyUp:
		v.scroll(0, -1)
	case tcell.KeyDown:
		v.scroll(0, 1)
	case tcell.KeyLeft:
		v.scroll(-1, 0)
	case tcell.KeyRight:
		v.scroll(1, 0)
	case tcell.KeyPgUp:
		v.scroll(0, -pageTiles)
	case tcell.KeyPgDn:
		v.scroll(0, pageTiles)
	case tcell.KeyHome:
		v.offsetX, v.offsetY = 0, 0

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		}
	}
}

// scroll moves the view by whole tiles, keeping at least one tile column and row visible.
func (v *Viewer) scroll(dx, dy int) {
	v.offsetX = clamp(v.offsetX+dx*tile.ArtWidth, 0, v.view.Width()-tile.ArtWidth)
	v.offsetY = clamp(v.offsetY+dy*tile.ArtHeight, 0, v.view.Height()-tile.ArtHeight)
}

func clamp(n, lo, hi int) int {
	return max(min(n, hi), lo)
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}
