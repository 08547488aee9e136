package maze

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

func TestNewSessionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SessionConfig)
		err    error
	}{
		{"short template", func(c *SessionConfig) { c.Template.Cells = c.Template.Cells[:10] }, ErrTemplateSize},
		{"bad cell code", func(c *SessionConfig) { c.Template.Cells[20] = CellCode(9) }, ErrInvalidCell},
		{"zero cell size", func(c *SessionConfig) { c.CellSize = 0 }, ErrCellSize},
		{"speed does not divide", func(c *SessionConfig) { c.PlayerSpeed = 5 }, ErrSpeed},
		{"zero speed", func(c *SessionConfig) { c.PlayerSpeed = 0 }, ErrSpeed},
		{"speed above cell size", func(c *SessionConfig) { c.Adversaries[0].Speed = 48 }, ErrSpeed},
		{"player on wall", func(c *SessionConfig) { c.PlayerSpawn = Cell{Row: 0, Col: 0} }, ErrSpawn},
		{"player outside", func(c *SessionConfig) { c.PlayerSpawn = Cell{Row: 15, Col: 1} }, ErrSpawn},
		{"adversary on wall", func(c *SessionConfig) { c.Adversaries[2].Spawn = Cell{Row: 11, Col: 7} }, ErrSpawn},
		{"zero threshold", func(c *SessionConfig) { c.CollisionThreshold = 0 }, ErrThreshold},
		{"bad heading", func(c *SessionConfig) { c.Adversaries[1].Heading = Direction(12) }, ErrHeading},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSessionConfig()
			cfg.Adversaries = append([]AdversarySpec(nil), cfg.Adversaries...)
			tc.mutate(&cfg)

			s, err := NewSession(cfg)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewSession() error = %v, expected %v", err, tc.err)
			}
			if s != nil {
				t.Error("NewSession() must not return a session on error")
			}
		})
	}
}

func TestDefaultSession(t *testing.T) {
	s := mustSession(t, DefaultSessionConfig())

	if s.Status() != Running {
		t.Errorf("Status() = %v, expected running", s.Status())
	}
	if s.Grid().Size() != ClassicSize {
		t.Errorf("Grid().Size() = %d, expected %d", s.Grid().Size(), ClassicSize)
	}
	if s.Player().Position() != (Position{X: 7 * 24, Y: 3 * 24}) {
		t.Errorf("player spawn = %+v", s.Player().Position())
	}

	tags := []string{}
	for _, a := range s.Adversaries() {
		tags = append(tags, a.Tag())
		if a.Direction() != Right {
			t.Errorf("%s starts heading %v, expected right", a.Tag(), a.Direction())
		}
	}
	if !reflect.DeepEqual(tags, []string{"red", "pink", "cyan", "orange"}) {
		t.Errorf("adversary order = %v", tags)
	}
}

func headOnConfig(t *testing.T) SessionConfig {
	cfg := soloConfig(corridor(t), Cell{Row: 1, Col: 1})
	cfg.Adversaries = []AdversarySpec{chaser("red", 1, 5, Left)}
	return cfg
}

func TestHeadOnCollision(t *testing.T) {
	s := mustSession(t, headOnConfig(t))

	// The gap closes 6px per tick from 96px; it drops below the 12px
	// threshold on tick 15, not at exactly 12px on tick 14.
	for i := 1; i <= 14; i++ {
		req := None
		if i == 1 {
			req = Right
		}
		if status := s.Tick(req); status != Running {
			t.Fatalf("tick %d: status %v, expected running", i, status)
		}
	}

	if status := s.Tick(None); status != GameOver {
		snap := s.Snapshot()
		t.Fatalf("tick 15: status %v, expected game over (player %+v, adversary %+v)",
			status, snap.Player.Pos, snap.Adversaries[0].Pos)
	}
}

func TestCollisionIsPerAxis(t *testing.T) {
	// Diagonal neighbours: the adversary is forced off its cell on tick 1,
	// leaving gaps of 22px and 24px. Both axes must be under the threshold.
	tpl := templateFromRows(t,
		"#####",
		"#   #",
		"#   #",
		"#   #",
		"#####",
	)
	cfg := soloConfig(tpl, Cell{Row: 2, Col: 2})
	cfg.Adversaries = []AdversarySpec{chaser("red", 1, 1, None)}
	cfg.CollisionThreshold = 25
	if got := mustSession(t, cfg).Tick(None); got != GameOver {
		t.Errorf("24px apart on both axes with threshold 25: status %v, expected game over", got)
	}

	cfg.CollisionThreshold = 24
	s := mustSession(t, cfg)
	if got := s.Tick(None); got != Running {
		t.Errorf("24px apart with threshold 24: status %v, expected running", got)
	}
}

func TestGameOverIsFinal(t *testing.T) {
	s := mustSession(t, headOnConfig(t))
	runTicks(s, Right, 15)
	if s.Status() != GameOver {
		t.Fatalf("expected game over after the head-on run")
	}

	snap := s.Snapshot()
	cells := s.Grid().Cells()

	for i := 0; i < 50; i++ {
		if got := s.Tick(Direction(i % 5)); got != GameOver {
			t.Fatalf("Tick() after game over = %v", got)
		}
	}

	if !reflect.DeepEqual(snap, s.Snapshot()) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", snap, s.Snapshot())
	}
	if !reflect.DeepEqual(cells, s.Grid().Cells()) {
		t.Error("grid changed after game over")
	}
}

// randomInput returns a pseudo-random request stream that mostly repeats
// "no request" and sometimes sends junk.
func randomInput(rng *rand.Rand) Direction {
	if rng.Intn(6) != 0 {
		return None
	}
	choices := []Direction{Left, Right, Up, Down, None, Direction(77)}
	return choices[rng.Intn(len(choices))]
}

func TestSessionInvariants(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		cfg := DefaultSessionConfig()
		cfg.Seed = seed
		if seed%2 == 0 {
			cfg.Scan = ScanUniform
		}
		s := mustSession(t, cfg)
		input := rand.New(rand.NewSource(seed * 31))
		size := cfg.CellSize
		n := s.Grid().Size()

		prev := s.Snapshot()
		prevCells := s.Grid().Cells()

		for tick := 0; tick < 2000 && s.Status() == Running; tick++ {
			s.Tick(randomInput(input))
			snap := s.Snapshot()
			cells := s.Grid().Cells()

			agents := append([]AgentState{snap.Player}, snap.Adversaries...)
			before := append([]AgentState{prev.Player}, prev.Adversaries...)
			for i, a := range agents {
				// Heading changes only at cell alignment.
				if a.Dir != before[i].Dir && !before[i].Pos.Aligned(size) {
					t.Fatalf("seed %d tick %d: %s turned %v->%v at unaligned %+v",
						seed, snap.Tick, a.Tag, before[i].Dir, a.Dir, before[i].Pos)
				}
				// Neither cell the agent overlaps may be a wall.
				row, col := a.Pos.Containing(size)
				row2, col2 := Position{X: a.Pos.X + size - 1, Y: a.Pos.Y + size - 1}.Containing(size)
				for _, rc := range [][2]int{{row, col}, {row2, col2}} {
					if rc[0] < 0 || rc[0] >= n || rc[1] < 0 || rc[1] >= n {
						t.Fatalf("seed %d tick %d: %s left the grid at %+v", seed, snap.Tick, a.Tag, a.Pos)
					}
					if cells[rc[0]*n+rc[1]] == Wall {
						t.Fatalf("seed %d tick %d: %s inside a wall at %+v", seed, snap.Tick, a.Tag, a.Pos)
					}
				}
			}

			// Collectibles only ever disappear.
			for i, c := range cells {
				if c == Collectible && prevCells[i] != Collectible {
					t.Fatalf("seed %d tick %d: cell %d became collectible", seed, snap.Tick, i)
				}
				if (c == Wall) != (prevCells[i] == Wall) {
					t.Fatalf("seed %d tick %d: wall cell %d changed", seed, snap.Tick, i)
				}
			}
			if snap.CollectiblesLeft > prev.CollectiblesLeft {
				t.Fatalf("seed %d tick %d: collectible count grew", seed, snap.Tick)
			}

			prev, prevCells = snap, cells
		}
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := DefaultSessionConfig()
	cfg.Seed = 2024

	s1 := mustSession(t, cfg)
	s2 := mustSession(t, cfg)
	in1 := rand.New(rand.NewSource(5))
	in2 := rand.New(rand.NewSource(5))

	for i := 0; i < 1500; i++ {
		s1.Tick(randomInput(in1))
		s2.Tick(randomInput(in2))

		if !reflect.DeepEqual(s1.Snapshot(), s2.Snapshot()) {
			t.Fatalf("tick %d: sessions diverged\n%+v\n%+v", i+1, s1.Snapshot(), s2.Snapshot())
		}
		if !reflect.DeepEqual(s1.Grid().Cells(), s2.Grid().Cells()) {
			t.Fatalf("tick %d: grids diverged", i+1)
		}
	}
}

func TestSessionTickCounter(t *testing.T) {
	s := mustSession(t, headOnConfig(t))
	runTicks(s, Right, 40)

	if s.Ticks() != 15 {
		t.Errorf("Ticks() = %d, expected 15 (counting stops at game over)", s.Ticks())
	}
}
