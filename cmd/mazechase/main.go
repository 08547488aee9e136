// mazechase is a terminal maze chase: eat every dot before the adversaries
// catch you.
//
// Usage:
//
//	mazechase list              - List game variants
//	mazechase play [game]       - Play a game
//	mazechase menu              - Pick variant and maze interactively
//	mazechase mazes             - List, show and validate mazes
//	mazechase sim               - Run a headless simulation
//	mazechase serve             - Start SSH server for remote play
//	mazechase scores [game]     - Show high scores and recent runs
//
// Global flags:
//
//	--fps <rate>       - Override the configured tick rate
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.mazechase/scores.db)
//	--config <path>    - Use a custom mazechase.yaml
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/config"
	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "mazechase",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazechase",
	Short: "Maze Chase - eat the dots, dodge the chasers",
	Long: `Maze Chase is a terminal maze game. Steer through the maze, eat every
dot and stay out of reach of the adversaries.

Available commands:
  list     - Show game variants
  play     - Play directly
  menu     - Interactive picker for variant and maze
  mazes    - List, show and validate mazes
  sim      - Headless simulation
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs

Examples:
  mazechase play
  mazechase play mazechase_fair --maze crossroads
  mazechase menu
  mazechase sim --ticks 2000 --seed 7
  mazechase serve --ssh :2222
  mazechase scores`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazechase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom mazechase.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// tickRate returns --fps when set, otherwise the configured rate.
func tickRate(cfg config.MazeChaseConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.TickRate
}

// preflight loads the config and maze once so that bad files are reported
// before the terminal switches to the alternate screen.
func preflight(maze string) (config.MazeChaseConfig, error) {
	cfg, lvl, err := mazechase.Load(flagConfig, maze)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded", "maze", lvl.ID, "size", lvl.Size, "dots", lvl.Collectibles(), "tick_rate", cfg.TickRate)

	mazechase.SetConfigPath(flagConfig)
	mazechase.SetMaze(maze)
	return cfg, nil
}
