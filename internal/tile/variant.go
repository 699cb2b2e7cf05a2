package tile

// Variant identifies one of the predefined tile shapes.
type Variant uint8

const (
	// Straight is open north and south, walled east and west.
	Straight Variant = iota
	// Corner is walled north and west.
	Corner
	// T is walled north only.
	T
	// DeadEnd is open to the south only.
	DeadEnd
	// Cross is open on every side.
	Cross
	// Closed is walled on every side.
	Closed
	// Seesaw has the walls of a Straight tile.
	Seesaw
)

// variantDef describes a variant's mazefile name and unrotated walls.
type variantDef struct {
	name  string
	walls [4]bool
}

var variants = [...]variantDef{
	Straight: {"Straight", [4]bool{false, true, false, true}},
	Corner:   {"Corner", [4]bool{true, false, false, true}},
	T:        {"T", [4]bool{true, false, false, false}},
	DeadEnd:  {"DeadEnd", [4]bool{true, true, false, true}},
	Cross:    {"Cross", [4]bool{false, false, false, false}},
	Closed:   {"Closed", [4]bool{true, true, true, true}},
	Seesaw:   {"Seesaw", [4]bool{false, true, false, true}},
}

// Variants lists every predefined variant.
var Variants = []Variant{Straight, Corner, T, DeadEnd, Cross, Closed, Seesaw}

// ParseVariant returns the variant with the given mazefile name.
// Names are matched exactly and case sensitively.
func ParseVariant(name string) (Variant, bool) {
	for i := range variants {
		if variants[i].name == name {
			return Variant(i), true
		}
	}
	return 0, false
}

// Valid returns true if v is a predefined variant.
func (v Variant) Valid() bool {
	return int(v) < len(variants)
}

// String returns the variant's mazefile name.
func (v Variant) String() string {
	if !v.Valid() {
		return "unknown"
	}
	return variants[v].name
}

// Tile returns a new tile of this variant rotated the given number of times.
func (v Variant) Tile(rotations int) Tile {
	if !v.Valid() {
		return Tile{}
	}
	return FromWalls(variants[v].walls).Rotate(rotations)
}
