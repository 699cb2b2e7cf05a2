package tile

// Direction identifies one side of a tile.
type Direction uint8

const (
	// North is the upper side of a tile.
	North Direction = iota
	// East is the right side of a tile.
	East
	// South is the lower side of a tile.
	South
	// West is the left side of a tile.
	West
)

// Directions lists every valid direction in wall order.
var Directions = [4]Direction{North, East, South, West}

// Valid returns true if d is one of North, East, South or West.
func (d Direction) Valid() bool {
	return d <= West
}

// Opposite returns the direction facing d across a shared edge.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
