package maze

import "testing"

func TestPlayerRejectsTurnIntoWall(t *testing.T) {
	s := mustSession(t, soloConfig(corridor(t), Cell{Row: 1, Col: 1}))

	s.Tick(Right)
	s.Tick(None)
	s.Tick(Up) // mid-corridor, Up is a wall everywhere on this row
	if got := s.Player().Direction(); got != Right {
		t.Fatalf("direction changed before alignment: %v", got)
	}

	for i := 0; i < 3; i++ {
		s.Tick(None)
	}
	// Aligned on column 2 now; the latched Up request must be rejected.
	if pos := s.Player().Position(); pos.X != 48 {
		t.Fatalf("expected player at x=48 before alignment tick, got %d", pos.X)
	}

	s.Tick(None)
	p := s.Player()
	if p.Direction() != Right {
		t.Errorf("Direction() = %v, expected right", p.Direction())
	}
	if p.Position() != (Position{X: 52, Y: 24}) {
		t.Errorf("Position() = %+v, expected {52 24}", p.Position())
	}
	if p.Requested() != Up {
		t.Errorf("Requested() = %v, the rejected request should stay latched", p.Requested())
	}
}

func TestPlayerQueuedTurn(t *testing.T) {
	tpl := templateFromRows(t,
		"#######",
		"#.....#",
		"###.###",
		"###.###",
		"#######",
		"#######",
		"#######",
	)
	s := mustSession(t, soloConfig(tpl, Cell{Row: 1, Col: 1}))

	s.Tick(Right)
	s.Tick(Down) // queued long before the opening at column 3

	// Column 2 (tick 7) has no opening; column 3 (tick 13) does.
	for i := 0; i < 10; i++ {
		s.Tick(None)
		if s.Player().Direction() != Right {
			t.Fatalf("tick %d: turned early to %v", s.Ticks(), s.Player().Direction())
		}
	}

	s.Tick(None)
	p := s.Player()
	if p.Direction() != Down {
		t.Fatalf("Direction() = %v, expected down at the opening", p.Direction())
	}
	if p.Position() != (Position{X: 72, Y: 28}) {
		t.Errorf("Position() = %+v, expected {72 28}", p.Position())
	}
}

func TestPlayerStopsAtWall(t *testing.T) {
	s := mustSession(t, soloConfig(corridor(t), Cell{Row: 1, Col: 1}))

	runTicks(s, Right, 30)

	p := s.Player()
	if p.Direction() != None {
		t.Errorf("Direction() = %v, expected none after hitting the wall", p.Direction())
	}
	if p.Position() != (Position{X: 120, Y: 24}) {
		t.Errorf("Position() = %+v, expected {120 24}", p.Position())
	}
}

func TestPlayerIgnoresInvalidRequests(t *testing.T) {
	s := mustSession(t, soloConfig(corridor(t), Cell{Row: 1, Col: 1}))

	s.Tick(Right)
	s.Tick(Direction(99))
	s.Tick(Direction(-3))
	s.Tick(None)

	if got := s.Player().Requested(); got != Right {
		t.Errorf("Requested() = %v, invalid and empty requests should keep the latch", got)
	}
	if got := s.Player().Direction(); got != Right {
		t.Errorf("Direction() = %v, expected right", got)
	}
}

func TestPlayerStandsStillWithoutInput(t *testing.T) {
	s := mustSession(t, soloConfig(corridor(t), Cell{Row: 1, Col: 1}))
	start := s.Player().Position()

	runTicks(s, None, 10)

	if s.Player().Position() != start {
		t.Errorf("player moved without input to %+v", s.Player().Position())
	}
}

func TestPlayerEatsSpawnCell(t *testing.T) {
	s := mustSession(t, soloConfig(corridor(t), Cell{Row: 1, Col: 1}))
	g := s.Grid()

	s.Tick(None)
	if g.CellAt(8) != Empty {
		t.Errorf("spawn cell = %v, expected the dot to be eaten on the first tick", g.CellAt(8))
	}
	if g.CollectiblesLeft() != 4 {
		t.Errorf("CollectiblesLeft() = %d, expected 4", g.CollectiblesLeft())
	}
}

func TestPlayerClearsCorridor(t *testing.T) {
	s := mustSession(t, soloConfig(corridor(t), Cell{Row: 1, Col: 1}))
	g := s.Grid()

	left := g.CollectiblesLeft()
	for i := 0; i < 40; i++ {
		req := None
		if i == 0 {
			req = Right
		}
		s.Tick(req)

		now := g.CollectiblesLeft()
		if now > left {
			t.Fatalf("tick %d: collectibles grew from %d to %d", i, left, now)
		}
		left = now
	}

	if left != 0 {
		t.Fatalf("CollectiblesLeft() = %d, expected 0", left)
	}
	for i, c := range g.Cells() {
		if c != Empty && c != Wall {
			t.Errorf("cell %d = %v, only empty and wall should remain", i, c)
		}
	}
}
