// Package formats provides maze file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLMaze represents the YAML structure for a maze file.
// Either Cells or Rows describes the layout; Cells wins when both are set.
type YAMLMaze struct {
	ID    string   `yaml:"id"`
	Name  string   `yaml:"name"`
	Size  int      `yaml:"size"`
	Cells []int    `yaml:"cells,omitempty"`
	Rows  []string `yaml:"rows,omitempty"`
}

// Maze is a parsed maze file: raw cell codes, not yet validated against the
// engine's alphabet.
type Maze struct {
	ID    string
	Name  string
	Size  int
	Cells []int
}

// ErrNoLayout is returned for files that define neither cells nor rows.
var ErrNoLayout = errors.New("maze file defines neither cells nor rows")

// Row characters.
const (
	RuneWall        = '#'
	RuneCollectible = '.'
	RuneEmpty       = ' '
	RuneEmptyAlt    = '_'
)

// ParseYAML parses a YAML maze file.
func ParseYAML(data []byte) (Maze, error) {
	var ym YAMLMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	m := Maze{ID: ym.ID, Name: ym.Name, Size: ym.Size}
	if m.Name == "" {
		m.Name = m.ID
	}

	switch {
	case len(ym.Cells) > 0:
		m.Cells = ym.Cells
	case len(ym.Rows) > 0:
		cells, err := ParseRows(ym.Rows)
		if err != nil {
			return Maze{}, err
		}
		if m.Size == 0 {
			m.Size = len(ym.Rows)
		}
		m.Cells = cells
	default:
		return Maze{}, ErrNoLayout
	}

	return m, nil
}

// ParseRows converts ASCII rows into cell codes (0 empty, 1 wall, 2 collectible).
// Every row must be as wide as there are rows.
func ParseRows(rows []string) ([]int, error) {
	n := len(rows)
	cells := make([]int, 0, n*n)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != n {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(runes), n)
		}
		for x, r := range runes {
			switch r {
			case RuneWall:
				cells = append(cells, 1)
			case RuneCollectible:
				cells = append(cells, 2)
			case RuneEmpty, RuneEmptyAlt:
				cells = append(cells, 0)
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", y, x, r)
			}
		}
	}
	return cells, nil
}

// FormatRows renders cell codes back to ASCII rows. Unknown codes become '?'.
func FormatRows(size int, cells []int) []string {
	rows := make([]string, 0, size)
	for y := 0; y < size; y++ {
		row := make([]rune, size)
		for x := 0; x < size; x++ {
			i := y*size + x
			row[x] = '?'
			if i < len(cells) {
				switch cells[i] {
				case 0:
					row[x] = RuneEmpty
				case 1:
					row[x] = RuneWall
				case 2:
					row[x] = RuneCollectible
				}
			}
		}
		rows = append(rows, string(row))
	}
	return rows
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
