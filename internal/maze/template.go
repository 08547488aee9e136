package maze

import "fmt"

// Template is the immutable blueprint a Grid is built from: Size*Size cell
// codes in row-major order.
type Template struct {
	ID    string
	Name  string
	Size  int
	Cells []CellCode
}

// Validate checks the template dimensions and cell alphabet.
func (t Template) Validate() error {
	if t.Size < 1 {
		return fmt.Errorf("maze: template %q has size %d: %w", t.ID, t.Size, ErrTemplateSize)
	}
	// Divide rather than square Size so a huge Size cannot wrap around.
	n := len(t.Cells)
	if n%t.Size != 0 || n/t.Size != t.Size {
		return fmt.Errorf("maze: template %q has %d cells, want %dx%d: %w",
			t.ID, n, t.Size, t.Size, ErrTemplateSize)
	}
	for i, c := range t.Cells {
		if !c.Valid() {
			return fmt.Errorf("maze: template %q cell %d has code %d: %w", t.ID, i, uint8(c), ErrInvalidCell)
		}
	}
	return nil
}

// ParseCells converts raw integer codes into cell codes.
// Values outside the alphabet are rejected.
func ParseCells(raw []int) ([]CellCode, error) {
	cells := make([]CellCode, len(raw))
	for i, v := range raw {
		if v < 0 || v > int(Collectible) {
			return nil, fmt.Errorf("maze: cell %d has code %d: %w", i, v, ErrInvalidCell)
		}
		cells[i] = CellCode(v)
	}
	return cells, nil
}

// classicLayout is the original 15x15 maze: 0 empty, 1 wall, 2 dot.
var classicLayout = []int{
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	1, 2, 2, 2, 2, 2, 2, 1, 2, 2, 2, 2, 2, 2, 1,
	1, 2, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 2, 1,
	1, 2, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1, 2, 1,
	1, 2, 1, 2, 1, 1, 1, 0, 1, 1, 1, 2, 1, 2, 1,
	1, 2, 2, 2, 1, 0, 0, 0, 0, 0, 1, 2, 2, 2, 1,
	1, 1, 1, 2, 1, 0, 1, 1, 1, 0, 1, 2, 1, 1, 1,
	1, 2, 2, 2, 2, 0, 1, 0, 1, 0, 2, 2, 2, 2, 1,
	1, 1, 1, 2, 1, 0, 1, 1, 1, 0, 1, 2, 1, 1, 1,
	1, 2, 2, 2, 1, 0, 0, 0, 0, 0, 1, 2, 2, 2, 1,
	1, 2, 1, 2, 1, 1, 1, 1, 1, 1, 1, 2, 1, 2, 1,
	1, 2, 1, 2, 2, 2, 2, 1, 2, 2, 2, 2, 1, 2, 1,
	1, 2, 1, 1, 1, 1, 2, 1, 2, 1, 1, 1, 1, 2, 1,
	1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// ClassicSize is the side length of the classic maze.
const ClassicSize = 15

// ClassicTemplate returns a fresh copy of the classic maze.
func ClassicTemplate() Template {
	cells, err := ParseCells(classicLayout)
	if err != nil {
		panic(err)
	}
	return Template{
		ID:    "classic",
		Name:  "Classic",
		Size:  ClassicSize,
		Cells: cells,
	}
}
