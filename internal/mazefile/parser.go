package mazefile

import (
	"strconv"

	"github.com/samdwyer/penomaze/internal/maze"
)

// PositionedTokenConsumer receives tile tokens together with their coordinate.
type PositionedTokenConsumer func(c maze.Coordinate, token string) error

// Parser reads the maze dimensions from the first two tokens and assigns every
// following token a coordinate, row by row from the top left corner.
//
// A Parser is used for a single mazefile. It does not detect a mazefile that
// lists fewer tiles than width times height.
type Parser struct {
	width, height int // -1 until read
	x, y          int
	assigned      int
	consumer      PositionedTokenConsumer
}

// NewParser creates a parser waiting for the maze width.
func NewParser() *Parser {
	return &Parser{width: -1, height: -1}
}

// SetConsumer registers the function that receives positioned tile tokens.
func (p *Parser) SetConsumer(consumer PositionedTokenConsumer) {
	p.consumer = consumer
}

// Width returns the declared maze width, or -1 if it has not been read.
func (p *Parser) Width() int {
	return p.width
}

// Height returns the declared maze height, or -1 if it has not been read.
func (p *Parser) Height() int {
	return p.height
}

// Assigned returns the number of tile tokens given a coordinate so far.
func (p *Parser) Assigned() int {
	return p.assigned
}

// Consume processes the next token of the mazefile.
func (p *Parser) Consume(token string) error {
	switch {
	case p.width < 0:
		n, err := parseDimension(token, "first")
		if err != nil {
			return err
		}
		p.width = n
		return nil

	case p.height < 0:
		n, err := parseDimension(token, "second")
		if err != nil {
			return err
		}
		p.height = n
		return nil
	}

	if p.x > p.width-1 || p.y > p.height-1 {
		return violationf("too many tiles")
	}

	c := maze.Coordinate{X: p.x, Y: p.y}
	if p.consumer != nil {
		if err := p.consumer(c, token); err != nil {
			return err
		}
	}
	p.assigned++

	// Advance in row-major order
	if p.x < p.width-1 {
		p.x++
	} else {
		p.x = 0
		p.y++
	}
	return nil
}

// parseDimension reads a non-negative maze dimension.
func parseDimension(token, position string) (int, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, violationf("%s token must be an integer", position)
	}
	if n < 0 {
		return 0, violationf("%s token must be a non-negative integer", position)
	}
	return n, nil
}
