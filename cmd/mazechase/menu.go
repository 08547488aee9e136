package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/platform/tui"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a game variant and maze interactively",
	Long: `Start in interactive menu mode.

After a run ends, press B or Esc to return to the menu.

Controls:
  Up/Down/j/k     - Choose game variant
  Left/Right/h/l  - Choose maze
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  mazechase menu
  mazechase menu --maze ./my-maze.yaml
  mazechase menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMaze, "maze", "", "Preselected maze ID or maze file path")
}

func runMenu(_ *cobra.Command, _ []string) error {
	gameCfg, err := preflight(flagMaze)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig(tickRate(gameCfg))
	maze := flagMaze

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg, maze)
		if err != nil {
			return err
		}

		// Keep size changes and the last maze choice
		cfg = menuResult.Config
		maze = menuResult.Maze

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if goBack {
				continue
			}
			return nil
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}
		if sel, ok := game.(registry.MazeSelector); ok {
			sel.UseMaze(maze)
		}

		// Fresh seed per run unless pinned
		run := cfg
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}

		logger.Debug("starting run", "game", menuResult.GameID, "maze", maze)
		if err := tui.Run(game, store, run); err != nil {
			return fmt.Errorf("running game: %w", err)
		}
	}
}
