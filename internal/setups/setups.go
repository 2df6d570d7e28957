// Package setups provides named starting positions. The standard opening is
// built in; further setups are read from YAML files and registered by ID.
package setups

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-hexchess/internal/hexchess"
	"github.com/vovakirdan/tui-hexchess/internal/setups/formats"
)

// StandardID is the ID of the built-in opening.
const StandardID = "standard"

// Setup is a named board radius and placement.
type Setup struct {
	ID        string
	Name      string
	Radius    int
	Placement hexchess.Placement
	FilePath  string // empty for built-in setups
}

// NewBoard builds a fresh board from the setup.
func (s Setup) NewBoard() (*hexchess.Board, error) {
	b, err := hexchess.NewBoard(s.Radius, s.Placement)
	if err != nil {
		return nil, fmt.Errorf("setups: %s: %w", s.ID, err)
	}
	return b, nil
}

// Info contains metadata about a registered setup.
type Info struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Radius int    `json:"radius"`
	Pieces int    `json:"pieces"`
}

var (
	registered = make(map[string]Setup)
	mu         sync.RWMutex
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

func init() {
	Register(Setup{
		ID:        StandardID,
		Name:      "Standard opening",
		Radius:    hexchess.DefaultRadius,
		Placement: hexchess.StandardPlacement(),
	})

	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		panic(fmt.Sprintf("setups: reading builtin setups: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("builtin", e.Name()))
		if err != nil {
			panic(fmt.Sprintf("setups: reading %s: %v", e.Name(), err))
		}
		parsed, err := formats.ParseYAML(data)
		if err != nil {
			panic(fmt.Sprintf("setups: builtin %s: %v", e.Name(), err))
		}
		Register(fromParsed(parsed, ""))
	}
}

// Register adds a setup to the registry.
// Panics if a setup with the same ID is already registered.
func Register(s Setup) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registered[s.ID]; exists {
		panic(fmt.Sprintf("setups: setup %q already registered", s.ID))
	}
	registered[s.ID] = s
}

// RegisterOrReplace adds a setup, replacing an existing one with the same ID.
// It refuses to replace the standard opening.
func RegisterOrReplace(s Setup) error {
	if s.ID == StandardID {
		return fmt.Errorf("setups: %q is reserved", StandardID)
	}
	mu.Lock()
	defer mu.Unlock()
	registered[s.ID] = s
	return nil
}

// List returns information about all registered setups, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(registered))
	for _, s := range registered {
		result = append(result, Info{
			ID:     s.ID,
			Name:   s.Name,
			Radius: s.Radius,
			Pieces: len(s.Placement.Pieces),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns a registered setup by ID.
func Get(id string) (Setup, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := registered[id]
	if !ok {
		return Setup{}, fmt.Errorf("setups: unknown setup %q", id)
	}
	s.Placement = s.Placement.Clone()
	return s, nil
}

// Exists checks if a setup with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registered[id]
	return ok
}

func fromParsed(p formats.Setup, filePath string) Setup {
	name := p.Name
	if name == "" {
		name = p.ID
	}
	return Setup{
		ID:        p.ID,
		Name:      name,
		Radius:    p.Radius,
		Placement: p.Placement,
		FilePath:  filePath,
	}
}

// Encode renders the setup in the YAML file format.
func (s Setup) Encode() ([]byte, error) {
	return formats.MarshalYAML(formats.Setup{
		ID:        s.ID,
		Name:      s.Name,
		Radius:    s.Radius,
		Placement: s.Placement,
	})
}
