// Package maze implements the movement and collision engine for Maze Chase.
// It has no dependency on the terminal or Bubble Tea: a Session is advanced one
// fixed tick at a time and exposes read-only views for the renderer.
package maze

import "fmt"

// CellCode classifies a single maze cell.
type CellCode uint8

const (
	Empty       CellCode = 0
	Wall        CellCode = 1
	Collectible CellCode = 2
)

// Valid reports whether c belongs to the cell alphabet.
func (c CellCode) Valid() bool {
	return c <= Collectible
}

func (c CellCode) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Collectible:
		return "collectible"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// GridReader is the read-only view of a grid handed to renderers.
type GridReader interface {
	Size() int
	CellAt(index int) CellCode
	IsWall(index int) bool
	CollectiblesLeft() int
	Cells() []CellCode
}

// Grid is a square N×N maze addressed by linear index row*N + col.
// Only COLLECTIBLE cells ever change, and only to EMPTY.
type Grid struct {
	size        int
	cells       []CellCode
	collectible int
}

// NewGrid builds a grid from a validated copy of the template.
func NewGrid(t Template) (*Grid, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{
		size:  t.Size,
		cells: make([]CellCode, len(t.Cells)),
	}
	copy(g.cells, t.Cells)
	for _, c := range g.cells {
		if c == Collectible {
			g.collectible++
		}
	}
	return g, nil
}

// Size returns N, the width and height of the grid in cells.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether index addresses a cell of the grid.
func (g *Grid) InBounds(index int) bool {
	return index >= 0 && index < len(g.cells)
}

// Index converts (row, col) to a linear index. It returns -1 when the
// coordinates fall outside the grid.
func (g *Grid) Index(row, col int) int {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return -1
	}
	return row*g.size + col
}

// RowCol converts a linear index to (row, col).
func (g *Grid) RowCol(index int) (row, col int) {
	g.mustInBounds(index)
	return index / g.size, index % g.size
}

// CellAt returns the code of the cell at index.
// Panics when index is out of range; callers check InBounds first.
func (g *Grid) CellAt(index int) CellCode {
	g.mustInBounds(index)
	return g.cells[index]
}

// IsWall reports whether the cell at index is a wall.
func (g *Grid) IsWall(index int) bool {
	return g.CellAt(index) == Wall
}

// ConsumeIfCollectible clears a COLLECTIBLE cell to EMPTY and reports whether
// anything was consumed. Other cells are left untouched.
func (g *Grid) ConsumeIfCollectible(index int) bool {
	if g.CellAt(index) != Collectible {
		return false
	}
	g.cells[index] = Empty
	g.collectible--
	return true
}

// CollectiblesLeft returns the number of COLLECTIBLE cells remaining.
func (g *Grid) CollectiblesLeft() int {
	return g.collectible
}

// Cells returns a copy of the cell codes in row-major order.
func (g *Grid) Cells() []CellCode {
	out := make([]CellCode, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) mustInBounds(index int) {
	if !g.InBounds(index) {
		panic(fmt.Sprintf("maze: cell index %d out of range [0, %d)", index, len(g.cells)))
	}
}
