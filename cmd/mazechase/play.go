package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mazechase/internal/core"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
	"github.com/vovakirdan/tui-mazechase/internal/platform/tui"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

var flagMaze string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to "mazechase".

Controls:
  Arrows/WASD/HJKL - Steer (the turn is taken at the next opening)
  P/Space          - Pause
  R                - Restart (after the run ends)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Mazes:
  --maze takes a built-in maze ID or a path to a .yaml/.yml maze file.
  Without it the maze named in the config is used.

Examples:
  mazechase play
  mazechase play mazechase_fair
  mazechase play --maze crossroads
  mazechase play --maze ./my-maze.yaml --config ./mazechase.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMaze, "maze", "", "Built-in maze ID or maze file path")
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig(rate int) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database, continuing without one on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := mazechase.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'mazechase list')", gameID)
	}

	gameCfg, err := preflight(flagMaze)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(tickRate(gameCfg))); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
