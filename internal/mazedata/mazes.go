package mazedata

// MazeDef describes a bundled mazefile loaded from index.json.
type MazeDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "demo2.fixed")
	Name        string `json:"name"`        // Display name
	File        string `json:"file"`        // Embedded mazefile name
	Valid       bool   `json:"valid"`       // Whether the mazefile follows the format
	Consistent  bool   `json:"consistent"`  // Whether all shared walls agree (valid mazes only)
	Description string `json:"description"` // One line summary
}

// Lines returns the lines of the maze's mazefile.
func (d *MazeDef) Lines() ([]string, error) {
	return LoadLines(d.File)
}

// IndexFile represents the structure of index.json.
type IndexFile struct {
	Mazes []MazeDef `json:"mazes"`
}

// LoadMazes loads maze definitions from the embedded index.json file.
func LoadMazes() ([]MazeDef, error) {
	file, err := Load[IndexFile]("index.json")
	if err != nil {
		return nil, err
	}
	return file.Mazes, nil
}
