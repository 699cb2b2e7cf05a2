package tile

import "errors"

var (
	// ErrInvalidDirection indicates a direction outside North..West.
	ErrInvalidDirection = errors.New("tile: direction must be 0, 1, 2 or 3")
	// ErrInvalidWallCount indicates a wall list that does not hold exactly four entries.
	ErrInvalidWallCount = errors.New("tile: walls must contain exactly 4 booleans")
)
