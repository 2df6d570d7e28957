package setups

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-hexchess/internal/setups/formats"
)

// Loader reads setup files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a new setup loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// DefaultDir returns ~/.hexchess/setups.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexchess", "setups")
}

// LoadAll recursively loads every setup file under Root, sorted by ID.
// A missing root yields no setups. Any malformed file is an error.
func (l *Loader) LoadAll() ([]Setup, error) {
	var out []Setup

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		s, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		out = append(out, s)
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("setups: walking %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single setup file.
func (l *Loader) LoadFile(path string) (Setup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Setup{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Setup{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return fromParsed(parsed, path), nil
}

// RegisterAll loads every setup under Root into the registry and returns
// how many were registered.
func (l *Loader) RegisterAll() (int, error) {
	all, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	for _, s := range all {
		if err := RegisterOrReplace(s); err != nil {
			return 0, fmt.Errorf("%s: %w", s.FilePath, err)
		}
	}
	return len(all), nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Setup, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Setup{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
