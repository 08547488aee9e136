package maze

// Position is an agent location in pixel space (grid coordinates times the
// cell size).
type Position struct {
	X, Y int
}

// At returns the pixel position of the top-left corner of (row, col).
func At(row, col, cellSize int) Position {
	return Position{X: col * cellSize, Y: row * cellSize}
}

// Aligned reports whether p sits exactly on a cell boundary on both axes.
func (p Position) Aligned(cellSize int) bool {
	return p.X%cellSize == 0 && p.Y%cellSize == 0
}

// Containing returns the (row, col) of the cell holding the pixel p.
func (p Position) Containing(cellSize int) (row, col int) {
	return floorDiv(p.Y, cellSize), floorDiv(p.X, cellSize)
}

// Nearest returns the (row, col) of the cell p overlaps the most.
func (p Position) Nearest(cellSize int) (row, col int) {
	half := cellSize / 2
	return floorDiv(p.Y+half, cellSize), floorDiv(p.X+half, cellSize)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Mover answers "can an agent step from this cell in this direction".
// It is the only place wall and boundary checks are made.
type Mover struct {
	grid *Grid
}

// NewMover returns a Mover over g.
func NewMover(g *Grid) Mover {
	return Mover{grid: g}
}

// TryStep reports whether stepping one cell from `from` in dir is legal and
// the index of the target cell. A neighbour outside the grid is treated as a
// wall and reported as -1; stepping off a row edge never wraps.
func (m Mover) TryStep(from int, dir Direction) (legal bool, to int) {
	if !dir.Cardinal() {
		return false, from
	}

	row, col := m.grid.RowCol(from)
	dx, dy := dir.Vector()
	to = m.grid.Index(row+dy, col+dx)
	if to < 0 {
		return false, -1
	}
	if m.grid.IsWall(to) {
		return false, to
	}
	return true, to
}

// Legal returns the cardinal directions that are open from `from`, in scan order.
func (m Mover) Legal(from int) []Direction {
	open := make([]Direction, 0, len(scanOrder))
	for _, d := range scanOrder {
		if ok, _ := m.TryStep(from, d); ok {
			open = append(open, d)
		}
	}
	return open
}
