package maze

import (
	"testing"
)

// templateFromRows builds a square template from ASCII rows:
// '#' wall, '.' collectible, anything else empty.
func templateFromRows(t *testing.T, rows ...string) Template {
	t.Helper()

	n := len(rows)
	cells := make([]CellCode, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			t.Fatalf("row %d has width %d, want %d", i, len(row), n)
		}
		for _, ch := range row {
			switch ch {
			case '#':
				cells = append(cells, Wall)
			case '.':
				cells = append(cells, Collectible)
			default:
				cells = append(cells, Empty)
			}
		}
	}
	return Template{ID: "test", Name: "Test", Size: n, Cells: cells}
}

// corridor is a 7x7 maze with a single horizontal corridor on row 1.
func corridor(t *testing.T) Template {
	return templateFromRows(t,
		"#######",
		"#.....#",
		"#######",
		"#######",
		"#######",
		"#######",
		"#######",
	)
}

// soloConfig returns a config with no adversaries and the player at spawn.
func soloConfig(tpl Template, spawn Cell) SessionConfig {
	return SessionConfig{
		Template:           tpl,
		CellSize:           DefaultCellSize,
		PlayerSpawn:        spawn,
		PlayerSpeed:        DefaultPlayerSpeed,
		CollisionThreshold: DefaultCollisionGap,
		ExploreOneIn:       0,
		Scan:               ScanRotation,
	}
}

func mustSession(t *testing.T, cfg SessionConfig) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}

// runTicks advances s n times with the given request on the first tick and
// None afterwards.
func runTicks(s *Session, first Direction, n int) Status {
	status := s.Status()
	for i := 0; i < n; i++ {
		req := None
		if i == 0 {
			req = first
		}
		status = s.Tick(req)
	}
	return status
}
