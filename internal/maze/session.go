package maze

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mazechase/internal/core"
)

// Status is the terminal state of a session. It only moves forward.
type Status int

const (
	Running Status = iota
	GameOver
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cell addresses a grid cell by row and column.
type Cell struct {
	Row, Col int
}

// AdversarySpec describes one adversary at session start.
type AdversarySpec struct {
	Tag     string
	Color   core.Color
	Spawn   Cell
	Speed   int
	Heading Direction
}

// SessionConfig holds everything needed to build a session deterministically.
type SessionConfig struct {
	Template           Template
	CellSize           int
	PlayerSpawn        Cell
	PlayerSpeed        int
	Adversaries        []AdversarySpec
	CollisionThreshold int
	ExploreOneIn       int
	Scan               ScanMode
	Seed               int64
}

// Default engine constants of the classic game.
const (
	DefaultCellSize     = 24
	DefaultPlayerSpeed  = 4
	DefaultChaserSpeed  = 2
	DefaultCollisionGap = DefaultCellSize / 2
)

// DefaultSessionConfig returns the classic maze with four corner adversaries.
func DefaultSessionConfig() SessionConfig {
	corner := func(tag string, c core.Color, row, col int) AdversarySpec {
		return AdversarySpec{
			Tag:     tag,
			Color:   c,
			Spawn:   Cell{Row: row, Col: col},
			Speed:   DefaultChaserSpeed,
			Heading: Right,
		}
	}

	return SessionConfig{
		Template:    ClassicTemplate(),
		CellSize:    DefaultCellSize,
		PlayerSpawn: Cell{Row: 3, Col: 7},
		PlayerSpeed: DefaultPlayerSpeed,
		Adversaries: []AdversarySpec{
			corner("red", core.ColorRed, 1, 1),
			corner("pink", core.ColorPink, 1, 13),
			corner("cyan", core.ColorCyan, 13, 1),
			corner("orange", core.ColorOrange, 13, 13),
		},
		CollisionThreshold: DefaultCollisionGap,
		ExploreOneIn:       DefaultExploreOneIn,
		Scan:               ScanRotation,
	}
}

// Validate checks the configuration against the template it names.
func (c SessionConfig) Validate() error {
	if err := c.Template.Validate(); err != nil {
		return err
	}
	if c.CellSize < 1 {
		return fmt.Errorf("maze: cell size %d: %w", c.CellSize, ErrCellSize)
	}
	if err := c.checkSpeed("player", c.PlayerSpeed); err != nil {
		return err
	}
	if err := c.checkSpawn("player", c.PlayerSpawn); err != nil {
		return err
	}
	for i, a := range c.Adversaries {
		name := fmt.Sprintf("adversary %d (%s)", i, a.Tag)
		if err := c.checkSpeed(name, a.Speed); err != nil {
			return err
		}
		if err := c.checkSpawn(name, a.Spawn); err != nil {
			return err
		}
		if !a.Heading.Valid() {
			return fmt.Errorf("maze: %s heading %d: %w", name, int(a.Heading), ErrHeading)
		}
	}
	if c.CollisionThreshold < 1 {
		return fmt.Errorf("maze: threshold %d: %w", c.CollisionThreshold, ErrThreshold)
	}
	return nil
}

func (c SessionConfig) checkSpeed(who string, speed int) error {
	if speed < 1 || speed > c.CellSize || c.CellSize%speed != 0 {
		return fmt.Errorf("maze: %s speed %d with cell size %d: %w", who, speed, c.CellSize, ErrSpeed)
	}
	return nil
}

func (c SessionConfig) checkSpawn(who string, at Cell) error {
	n := c.Template.Size
	if at.Row < 0 || at.Row >= n || at.Col < 0 || at.Col >= n {
		return fmt.Errorf("maze: %s spawn (%d,%d) outside %dx%d grid: %w", who, at.Row, at.Col, n, n, ErrSpawn)
	}
	if c.Template.Cells[at.Row*n+at.Col] == Wall {
		return fmt.Errorf("maze: %s spawn (%d,%d) is a wall: %w", who, at.Row, at.Col, ErrSpawn)
	}
	return nil
}

// Session is one play-through: a grid, a player and the adversaries chasing
// it. Sessions are never reset; a restart builds a new one.
type Session struct {
	grid        *Grid
	mover       Mover
	cellSize    int
	threshold   int
	player      *Player
	adversaries []*Adversary
	status      Status
	ticks       uint64
}

// NewSession validates cfg and builds a fresh session.
// Each adversary gets its own random stream derived from cfg.Seed.
func NewSession(cfg SessionConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := NewGrid(cfg.Template)
	if err != nil {
		return nil, err
	}

	s := &Session{
		grid:      grid,
		mover:     NewMover(grid),
		cellSize:  cfg.CellSize,
		threshold: cfg.CollisionThreshold,
		player: &Player{
			Agent: Agent{
				pos:   At(cfg.PlayerSpawn.Row, cfg.PlayerSpawn.Col, cfg.CellSize),
				speed: cfg.PlayerSpeed,
			},
		},
	}

	seeds := rand.New(rand.NewSource(cfg.Seed))
	s.adversaries = make([]*Adversary, len(cfg.Adversaries))
	for i, spec := range cfg.Adversaries {
		rng := rand.New(rand.NewSource(seeds.Int63()))
		s.adversaries[i] = &Adversary{
			Agent: Agent{
				pos:   At(spec.Spawn.Row, spec.Spawn.Col, cfg.CellSize),
				dir:   spec.Heading,
				speed: spec.Speed,
			},
			tag:    spec.Tag,
			color:  spec.Color,
			policy: newPolicy(cfg.Scan, rng, cfg.ExploreOneIn),
		}
	}

	return s, nil
}

// Tick advances the simulation by one step using req as the latest player
// input. After GameOver it changes nothing.
func (s *Session) Tick(req Direction) Status {
	if s.status == GameOver {
		return s.status
	}
	s.ticks++

	s.player.request(req)
	s.player.step(s.mover, s.cellSize)

	for _, a := range s.adversaries {
		a.step(s.mover, s.cellSize)
	}

	p := s.player.pos
	for _, a := range s.adversaries {
		if core.Abs(a.pos.X-p.X) < s.threshold && core.Abs(a.pos.Y-p.Y) < s.threshold {
			s.status = GameOver
			break
		}
	}

	return s.status
}

// Status returns the current session status.
func (s *Session) Status() Status {
	return s.status
}

// Ticks returns how many ticks have been simulated while running.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// CellSize returns the pixel size of one cell.
func (s *Session) CellSize() int {
	return s.cellSize
}

// Grid returns a read-only view of the maze.
func (s *Session) Grid() GridReader {
	return s.grid
}

// Player returns a read-only view of the player.
func (s *Session) Player() PlayerView {
	return s.player
}

// Adversaries returns read-only views of the adversaries in tick order.
func (s *Session) Adversaries() []AdversaryView {
	out := make([]AdversaryView, len(s.adversaries))
	for i, a := range s.adversaries {
		out[i] = a
	}
	return out
}

// AgentState is a value copy of an agent for snapshots.
type AgentState struct {
	Tag string
	Pos Position
	Dir Direction
}

// Snapshot captures the session state for determinism checks and replay.
type Snapshot struct {
	Tick             uint64
	Status           Status
	Player           AgentState
	Requested        Direction
	Adversaries      []AgentState
	CollectiblesLeft int
}

// Snapshot returns the current state as plain values.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:             s.ticks,
		Status:           s.status,
		Player:           AgentState{Tag: "player", Pos: s.player.pos, Dir: s.player.dir},
		Requested:        s.player.requested,
		Adversaries:      make([]AgentState, len(s.adversaries)),
		CollectiblesLeft: s.grid.CollectiblesLeft(),
	}
	for i, a := range s.adversaries {
		snap.Adversaries[i] = AgentState{Tag: a.tag, Pos: a.pos, Dir: a.dir}
	}
	return snap
}
