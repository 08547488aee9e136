// Package levels loads maze layouts from YAML files and the built-in set.
// This package depends on maze but maze does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-mazechase/internal/levels/formats"
	"github.com/vovakirdan/tui-mazechase/internal/maze"
)

// DefaultID is the maze used when nothing else is asked for.
const DefaultID = "classic"

// Level is a validated maze definition.
type Level struct {
	ID       string
	Name     string
	Size     int
	Template maze.Template
	FilePath string
}

// Collectibles returns how many collectible cells the level starts with.
func (l Level) Collectibles() int {
	n := 0
	for _, c := range l.Template.Cells {
		if c == maze.Collectible {
			n++
		}
	}
	return n
}

// Rows returns the level layout as ASCII rows.
func (l Level) Rows() []string {
	raw := make([]int, len(l.Template.Cells))
	for i, c := range l.Template.Cells {
		raw[i] = int(c)
	}
	return formats.FormatRows(l.Size, raw)
}

// Loader handles loading mazes from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(levels)
	return levels, nil
}

// LoadFile loads and validates a single maze file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := parse(data, filepath.Ext(path))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if level.ID == "" {
		level.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		level.Template.ID = level.ID
	}
	if level.Name == "" {
		level.Name = level.ID
		level.Template.Name = level.ID
	}
	level.FilePath = path
	return level, nil
}

// LoadByID loads a specific maze by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("maze not found: %s", id)
}

// ListIDs returns all maze IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return ids(levels), nil
}

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the mazes shipped with the binary, sorted by ID.
func Builtin() []Level {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("levels: reading embedded mazes: %v", err))
	}

	levels := make([]Level, 0, len(entries))
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("levels: reading embedded maze %s: %v", e.Name(), err))
		}
		level, err := parse(data, filepath.Ext(e.Name()))
		if err != nil {
			panic(fmt.Sprintf("levels: embedded maze %s: %v", e.Name(), err))
		}
		levels = append(levels, level)
	}

	sortByID(levels)
	return levels
}

// BuiltinIDs returns the IDs of the built-in mazes.
func BuiltinIDs() []string {
	return ids(Builtin())
}

// Resolve finds a maze by reference: empty means the default maze, a string
// naming an existing file is loaded from disk, anything else must be a
// built-in ID.
func Resolve(ref string) (Level, error) {
	if ref == "" {
		ref = DefaultID
	}

	if isSupportedExtension(filepath.Ext(ref)) {
		if _, err := os.Stat(ref); err == nil {
			return (&Loader{}).LoadFile(ref)
		}
	}

	for _, lvl := range Builtin() {
		if lvl.ID == ref {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("maze %q is neither a file nor a built-in (%s)",
		ref, strings.Join(BuiltinIDs(), ", "))
}

func parse(data []byte, ext string) (Level, error) {
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, err
	}

	cells, err := maze.ParseCells(parsed.Cells)
	if err != nil {
		return Level{}, err
	}
	tpl := maze.Template{
		ID:    parsed.ID,
		Name:  parsed.Name,
		Size:  parsed.Size,
		Cells: cells,
	}
	if err := tpl.Validate(); err != nil {
		return Level{}, err
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Size:     parsed.Size,
		Template: tpl,
	}, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Maze, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Maze{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
}

func ids(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}
