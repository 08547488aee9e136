// Package mazechase adapts the maze engine to the game platform: input
// mapping, scoring, restarts and text rendering.
package mazechase

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/levels"
	"github.com/vovakirdan/tui-mazechase/internal/maze"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

// Registered game IDs.
const (
	ID     = "mazechase"
	FairID = "mazechase_fair"
)

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeCaught  Outcome = "caught"
	OutcomeCleared Outcome = "cleared"
	OutcomeQuit    Outcome = "quit"
)

const hudHeight = 2

// Package-level settings applied on the next Reset.
var (
	configPath string
	mazeRef    string
)

// SetConfigPath sets the config file used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetMaze selects the maze (built-in ID or file path) for new games.
// Empty defers to the config file.
func SetMaze(ref string) {
	mazeRef = ref
}

// Load resolves the configuration and maze the way Reset does, returning
// the first error instead of falling back to defaults.
func Load(cfgPath, ref string) (config.MazeChaseConfig, levels.Level, error) {
	cfg, err := config.LoadMazeChase(cfgPath)
	if err != nil {
		return config.MazeChaseConfig{}, levels.Level{}, err
	}
	if ref == "" {
		ref = cfg.Maze
	}
	lvl, err := levels.Resolve(ref)
	if err != nil {
		return config.MazeChaseConfig{}, levels.Level{}, err
	}
	if _, err := cfg.SessionConfig(lvl.Template, 0); err != nil {
		return config.MazeChaseConfig{}, levels.Level{}, fmt.Errorf("maze %s: %w", lvl.ID, err)
	}
	return cfg, lvl, nil
}

// Game implements registry.Game on top of a maze.Session.
type Game struct {
	id    string
	title string
	scan  maze.ScanMode // forced scan mode; empty keeps the config's
	pick  string        // per-instance maze; empty defers to SetMaze

	cfg     config.MazeChaseConfig
	level   levels.Level
	session *maze.Session
	loadErr error

	rng          *rand.Rand
	tick         uint64
	collectibles int
	outcome      Outcome

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates the classic game.
func New() *Game {
	return &Game{id: ID, title: "Maze Chase"}
}

// NewFair creates the variant whose adversaries choose uniformly among open
// directions.
func NewFair() *Game {
	return &Game{id: FairID, title: "Maze Chase (Fair)", scan: maze.ScanUniform}
}

var (
	_ registry.Resizer      = (*Game)(nil)
	_ registry.RunReporter  = (*Game)(nil)
	_ registry.MazeSelector = (*Game)(nil)
)

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
	registry.Register(FairID, func() registry.Game {
		return NewFair()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.title
}

// Reset builds a fresh session. Configuration errors fall back to the
// built-in defaults; LoadError reports them.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.outcome = OutcomeNone
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	ref := g.pick
	if ref == "" {
		ref = mazeRef
	}
	g.cfg, g.level, g.loadErr = Load(configPath, ref)
	if g.loadErr != nil {
		g.cfg = config.DefaultMazeChaseConfig()
		g.level = levels.Builtin()[0]
	}
	if g.scan != "" {
		g.cfg.Behavior.Scan = string(g.scan)
	}

	sc, err := g.cfg.SessionConfig(g.level.Template, cfg.Seed)
	if err != nil {
		// Defaults always validate against the classic maze.
		panic(fmt.Sprintf("mazechase: default session config: %v", err))
	}
	g.session, err = maze.NewSession(sc)
	if err != nil {
		panic(fmt.Sprintf("mazechase: %v", err))
	}
	g.collectibles = g.session.Grid().CollectiblesLeft()
	g.checkSize()
}

// UseMaze selects the maze for this instance from the next Reset on.
func (g *Game) UseMaze(ref string) {
	g.pick = ref
}

// Resize updates the screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkSize()
}

func (g *Game) checkSize() {
	n := g.session.Grid().Size()
	g.tooSmall = g.screenW < 2*n || g.screenH < n+hudHeight+1
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.outcome != OutcomeNone {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && g.outcome == OutcomeNone {
		g.paused = !g.paused
	}

	if g.outcome != OutcomeNone || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.session.Tick(requestFor(input)) == maze.GameOver {
		g.outcome = OutcomeCaught
	} else if g.collectibles > 0 && g.session.Grid().CollectiblesLeft() == 0 {
		g.outcome = OutcomeCleared
	}

	return core.StepResult{State: g.State()}
}

// requestFor maps the frame's movement keys to a direction. When several
// arrive in one frame the last one wins.
func requestFor(input core.InputFrame) maze.Direction {
	switch input.Latest(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
	case core.ActionUp:
		return maze.Up
	case core.ActionDown:
		return maze.Down
	case core.ActionLeft:
		return maze.Left
	case core.ActionRight:
		return maze.Right
	default:
		return maze.None
	}
}

// Score returns the number of collectibles eaten so far.
func (g *Game) Score() int {
	return g.collectibles - g.session.Grid().CollectiblesLeft()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		GameOver: g.outcome != OutcomeNone,
		Paused:   g.paused,
	}
}

// Outcome returns how the run ended, or OutcomeNone while it is running.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// MazeID returns the ID of the maze being played.
func (g *Game) MazeID() string {
	return g.level.ID
}

// Ticks returns how many engine ticks the current run has simulated.
func (g *Game) Ticks() uint64 {
	return g.session.Ticks()
}

// RunSummary describes the current run for the results history.
func (g *Game) RunSummary() core.RunSummary {
	return core.RunSummary{
		MazeID:  g.level.ID,
		Ticks:   g.session.Ticks(),
		Outcome: string(g.outcome),
	}
}

// LoadError returns the error that forced a fallback to defaults, if any.
func (g *Game) LoadError() error {
	return g.loadErr
}

// Snapshot captures the adapter and engine state for determinism testing.
type Snapshot struct {
	Tick    uint64
	Score   int
	Outcome Outcome
	Paused  bool
	Engine  maze.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Score:   g.Score(),
		Outcome: g.outcome,
		Paused:  g.paused,
		Engine:  g.session.Snapshot(),
	}
}
