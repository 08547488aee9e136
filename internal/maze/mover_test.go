package maze

import (
	"reflect"
	"testing"
)

func TestTryStep(t *testing.T) {
	g, _ := NewGrid(templateFromRows(t,
		"#####",
		"#. .#",
		"#.#.#",
		"#...#",
		"#####",
	))
	mv := NewMover(g)
	from := g.Index(1, 1)

	tests := []struct {
		name  string
		dir   Direction
		legal bool
		to    int
	}{
		{"open right", Right, true, g.Index(1, 2)},
		{"open down", Down, true, g.Index(2, 1)},
		{"wall left", Left, false, g.Index(1, 0)},
		{"wall up", Up, false, g.Index(0, 1)},
		{"none", None, false, from},
		{"invalid", Direction(42), false, from},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			legal, to := mv.TryStep(from, tc.dir)
			if legal != tc.legal || to != tc.to {
				t.Errorf("TryStep(%d, %v) = (%v, %d), expected (%v, %d)", from, tc.dir, legal, to, tc.legal, tc.to)
			}
		})
	}
}

func TestTryStepBorderlessEdges(t *testing.T) {
	// No wall border: the grid edge itself must block.
	g, _ := NewGrid(templateFromRows(t,
		"...",
		"...",
		"...",
	))
	mv := NewMover(g)

	tests := []struct {
		name     string
		row, col int
		dir      Direction
	}{
		{"off top", 0, 1, Up},
		{"off bottom", 2, 1, Down},
		{"off left does not wrap", 1, 0, Left},
		{"off right does not wrap", 1, 2, Right},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			legal, to := mv.TryStep(g.Index(tc.row, tc.col), tc.dir)
			if legal || to != -1 {
				t.Errorf("TryStep() = (%v, %d), expected (false, -1)", legal, to)
			}
		})
	}
}

func TestMoverLegal(t *testing.T) {
	g, _ := NewGrid(templateFromRows(t,
		"#####",
		"#   #",
		"# # #",
		"#   #",
		"#####",
	))
	mv := NewMover(g)

	got := mv.Legal(g.Index(1, 2))
	expected := []Direction{Right, Left}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Legal() = %v, expected %v", got, expected)
	}

	got = mv.Legal(g.Index(1, 1))
	expected = []Direction{Right, Down}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Legal() from corner = %v, expected %v", got, expected)
	}
}

func TestPositionAlignment(t *testing.T) {
	tests := []struct {
		pos     Position
		aligned bool
		row     int
		col     int
	}{
		{Position{0, 0}, true, 0, 0},
		{Position{24, 48}, true, 2, 1},
		{Position{28, 48}, false, 2, 1},
		{Position{24, 47}, false, 1, 1},
		{Position{-4, 0}, false, 0, -1},
	}

	for _, tc := range tests {
		if tc.pos.Aligned(24) != tc.aligned {
			t.Errorf("%+v.Aligned(24) = %v, expected %v", tc.pos, !tc.aligned, tc.aligned)
		}
		row, col := tc.pos.Containing(24)
		if row != tc.row || col != tc.col {
			t.Errorf("%+v.Containing(24) = (%d, %d), expected (%d, %d)", tc.pos, row, col, tc.row, tc.col)
		}
	}
}

func TestPositionNearest(t *testing.T) {
	row, col := Position{X: 35, Y: 24}.Nearest(24)
	if row != 1 || col != 1 {
		t.Errorf("Nearest() = (%d, %d), expected (1, 1)", row, col)
	}
	row, col = Position{X: 36, Y: 24}.Nearest(24)
	if row != 1 || col != 2 {
		t.Errorf("Nearest() = (%d, %d), expected (1, 2)", row, col)
	}
}

func TestDirection(t *testing.T) {
	for _, d := range []Direction{Left, Right, Up, Down} {
		dx, dy := d.Vector()
		ox, oy := d.Opposite().Vector()
		if dx != -ox || dy != -oy {
			t.Errorf("%v and its opposite should cancel", d)
		}
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d.String(), parsed, err)
		}
	}

	if dx, dy := None.Vector(); dx != 0 || dy != 0 {
		t.Error("None should not move")
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should be invalid")
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection should reject unknown names")
	}
}
