package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette holds the colours used to draw a maze.
type Palette struct {
	Wall  tcell.Color // walls of consistent tiles
	Alert tcell.Color // walls of tiles that disagree with a neighbour
	Text  tcell.Color // status line
}

// DefaultPalette returns the colours used when none are configured.
func DefaultPalette() Palette {
	return Palette{
		Wall:  tcell.ColorDarkGray,
		Alert: tcell.ColorRed,
		Text:  tcell.ColorWhite,
	}
}

// NewPalette builds a palette from hex wall and alert colours.
func NewPalette(wallHex, alertHex string) (Palette, error) {
	p := DefaultPalette()

	wall, err := ParseHexColor(wallHex)
	if err != nil {
		return p, fmt.Errorf("wall color: %w", err)
	}
	alert, err := ParseHexColor(alertHex)
	if err != nil {
		return p, fmt.Errorf("alert color: %w", err)
	}

	p.Wall, p.Alert = wall, alert
	return p, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
