package mazechase

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/maze"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

// useConfig points new games at a test config and restores the defaults
// afterwards. HOME is isolated so a developer's own config is never read.
func useConfig(t *testing.T, path, ref string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath(path)
	SetMaze(ref)
	t.Cleanup(func() {
		SetConfigPath("")
		SetMaze("")
	})
}

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	if err := g.LoadError(); err != nil {
		t.Fatalf("LoadError() = %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func step(g *Game, n int, actions ...core.Action) {
	for i := 0; i < n; i++ {
		if i == 0 {
			g.Step(frame(actions...))
		} else {
			g.Step(core.NewInputFrame())
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, tc := range []struct{ id, title string }{
		{ID, "Maze Chase"},
		{FairID, "Maze Chase (Fair)"},
	} {
		g, err := registry.Create(tc.id)
		if err != nil {
			t.Fatalf("registry.Create(%q) failed: %v", tc.id, err)
		}
		if g.ID() != tc.id || g.Title() != tc.title {
			t.Errorf("Create(%q) = %q/%q", tc.id, g.ID(), g.Title())
		}
	}
}

func TestRequestLastWriteWins(t *testing.T) {
	tests := []struct {
		actions []core.Action
		want    maze.Direction
	}{
		{nil, maze.None},
		{[]core.Action{core.ActionPause}, maze.None},
		{[]core.Action{core.ActionUp}, maze.Up},
		{[]core.Action{core.ActionUp, core.ActionLeft}, maze.Left},
		{[]core.Action{core.ActionRight, core.ActionDown, core.ActionPause}, maze.Down},
		{[]core.Action{core.ActionDown, core.ActionRight, core.ActionDown}, maze.Down},
	}

	for _, tc := range tests {
		if got := requestFor(frame(tc.actions...)); got != tc.want {
			t.Errorf("requestFor(%v) = %v, expected %v", tc.actions, got, tc.want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	useConfig(t, "", "")

	g1 := newGame(t, 12345)
	g2 := newGame(t, 12345)

	script := map[int]core.Action{
		5: core.ActionLeft, 40: core.ActionDown, 90: core.ActionRight,
		150: core.ActionUp, 220: core.ActionLeft, 300: core.ActionDown,
	}
	for i := 0; i < 400; i++ {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestScoreCountsCollectibles(t *testing.T) {
	useConfig(t, "", "")
	g := newGame(t, 1)

	if g.Score() != 0 {
		t.Fatalf("initial score = %d", g.Score())
	}

	// The spawn cell holds a collectible and is eaten on the first tick.
	g.Step(core.NewInputFrame())
	if g.State().Score != 1 {
		t.Errorf("score after first tick = %d, expected 1", g.State().Score)
	}
	if g.MazeID() != "classic" {
		t.Errorf("MazeID() = %q", g.MazeID())
	}
}

func TestPause(t *testing.T) {
	useConfig(t, "", "")
	g := newGame(t, 1)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	before := g.Ticks()
	step(g, 10)
	if g.Ticks() != before {
		t.Errorf("engine advanced while paused: %d -> %d", before, g.Ticks())
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected unpaused")
	}
	if g.Ticks() != before+1 {
		t.Errorf("unpausing frame should tick the engine once, got %d -> %d", before, g.Ticks())
	}
}

func TestCaughtAndRestart(t *testing.T) {
	useConfig(t, "testdata/headon.yaml", "")
	g := newGame(t, 7)

	step(g, 14, core.ActionRight)
	if g.State().GameOver {
		t.Fatal("caught too early")
	}
	g.Step(core.NewInputFrame())
	if g.Outcome() != OutcomeCaught || !g.State().GameOver {
		t.Fatalf("Outcome() = %q, expected caught", g.Outcome())
	}

	frozen := g.Snapshot().Engine
	step(g, 5, core.ActionLeft)
	if !reflect.DeepEqual(frozen, g.Snapshot().Engine) {
		t.Error("engine changed after being caught")
	}

	g.Step(frame(core.ActionRestart))
	if g.Outcome() != OutcomeNone || g.Ticks() != 0 || g.Score() != 0 {
		t.Errorf("restart did not rebuild the session: outcome %q ticks %d score %d",
			g.Outcome(), g.Ticks(), g.Score())
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	useConfig(t, "", "")
	g := newGame(t, 3)

	step(g, 3)
	g.Step(frame(core.ActionRestart))
	if g.Ticks() != 4 {
		t.Errorf("Ticks() = %d, expected restart to be ignored mid-run", g.Ticks())
	}
}

func TestCleared(t *testing.T) {
	useConfig(t, "testdata/solo.yaml", "")
	g := newGame(t, 1)

	step(g, 30, core.ActionRight)

	if g.Outcome() != OutcomeCleared {
		t.Fatalf("Outcome() = %q, expected cleared", g.Outcome())
	}
	if g.Score() != 5 {
		t.Errorf("Score() = %d, expected 5", g.Score())
	}
	if g.Snapshot().Engine.Status != maze.Running {
		t.Error("clearing the maze must not change the engine status")
	}
}

func TestFairVariantForcesUniformScan(t *testing.T) {
	useConfig(t, "", "")
	g := NewFair()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if g.cfg.Behavior.Scan != string(maze.ScanUniform) {
		t.Errorf("scan = %q, expected uniform", g.cfg.Behavior.Scan)
	}
	if New().scan != "" {
		t.Error("classic variant must keep the configured scan mode")
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, _, err := Load("", "atlantis"); err == nil {
		t.Error("Load with an unknown maze should fail")
	}
	if _, _, err := Load("testdata/missing.yaml", ""); err == nil {
		t.Error("Load with a missing config should fail")
	}

	cfg, lvl, err := Load("", "crossroads")
	if err != nil {
		t.Fatalf("Load(crossroads) failed: %v", err)
	}
	if lvl.ID != "crossroads" || cfg.Grid.CellSize != maze.DefaultCellSize {
		t.Errorf("Load returned %q / %+v", lvl.ID, cfg.Grid)
	}
}

func TestResetFallsBackOnBadMaze(t *testing.T) {
	useConfig(t, "", "atlantis")
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if g.LoadError() == nil {
		t.Fatal("expected a load error")
	}
	if g.MazeID() != "classic" {
		t.Errorf("fallback maze = %q, expected classic", g.MazeID())
	}
}

func TestRender(t *testing.T) {
	useConfig(t, "", "")
	g := newGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Maze: Classic") {
		t.Errorf("HUD = %q", hud)
	}

	// 15x15 maze, two columns per cell, centred below the HUD: origin (25, 5).
	if got := screen.GetCell(25, 5); got.Rune != glyphWall || got.Color != core.ColorBlue {
		t.Errorf("top-left wall = %+v", got)
	}
	if got := screen.Get(25+2*2, 5+1); got != glyphCollectible {
		t.Errorf("collectible at (1,2) = %q", got)
	}
	if got := screen.GetCell(25+2*7, 5+3); got.Rune != 'O' || got.Color != core.ColorBrightYellow {
		t.Errorf("player = %+v", got)
	}
	if got := screen.GetCell(25+2*1, 5+1); got.Rune != glyphAdversary || got.Color != core.ColorRed {
		t.Errorf("red adversary at (1,1) = %+v", got)
	}
}

func TestRenderHalfCellColumns(t *testing.T) {
	useConfig(t, "testdata/solo.yaml", "")
	g := newGame(t, 1)
	screen := core.NewScreen(80, 24)

	// 3 ticks at 4px: x = 24 + 12, exactly half a cell to the right.
	step(g, 3, core.ActionRight)
	g.Render(screen)

	offX, offY := g.mapOrigin(screen)
	if got := screen.Get(offX+3, offY+1); got != '<' {
		t.Errorf("player at half cell = %q, row %q", got, screen.Row(offY+1))
	}
}

func TestRenderOverlays(t *testing.T) {
	useConfig(t, "", "")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})
	screen := core.NewScreen(20, 10)
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small overlay:\n%s", screen.String())
	}
	if g.Ticks() != 0 {
		t.Error("engine must not tick while the window is too small")
	}

	g.Resize(80, 24)
	screen.Resize(80, 24)
	g.Step(frame(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Errorf("expected pause overlay:\n%s", screen.String())
	}
}

func TestUseMazeOverridesPackageSetting(t *testing.T) {
	useConfig(t, "", "classic")
	g := New()
	g.UseMaze("crossroads")
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if g.MazeID() != "crossroads" {
		t.Errorf("MazeID() = %q, expected crossroads", g.MazeID())
	}
}

func TestRunSummary(t *testing.T) {
	useConfig(t, "testdata/headon.yaml", "")
	g := newGame(t, 1)

	step(g, 15, core.ActionRight)
	sum := g.RunSummary()
	if sum.MazeID != "corridor" || sum.Ticks != 15 || sum.Outcome != string(OutcomeCaught) {
		t.Errorf("RunSummary() = %+v", sum)
	}
}
