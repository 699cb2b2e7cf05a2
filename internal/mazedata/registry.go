package mazedata

import "errors"

// Registry holds the bundled maze definitions and provides lookup utilities.
type Registry struct {
	byID map[string]*MazeDef
	all  []MazeDef
}

// NewRegistry creates a registry from loaded maze definitions.
func NewRegistry(mazes []MazeDef) *Registry {
	registry := &Registry{
		byID: make(map[string]*MazeDef),
		all:  mazes,
	}
	for i := range mazes {
		registry.byID[mazes[i].ID] = &mazes[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded index.json.
func LoadRegistry() (*Registry, error) {
	mazes, err := LoadMazes()
	if err != nil {
		return nil, err
	}
	if len(mazes) == 0 {
		return nil, errors.New("no mazes loaded from index.json")
	}
	return NewRegistry(mazes), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the maze definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *MazeDef {
	return r.byID[id]
}

// All returns all maze definitions in index order.
func (r *Registry) All() []MazeDef {
	return r.all
}

// Count returns the number of mazes in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
