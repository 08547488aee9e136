package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
	"github.com/vovakirdan/tui-mazechase/internal/registry"
	"github.com/vovakirdan/tui-mazechase/internal/storage"
)

var (
	flagScoresRecent int
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 scores, overall stats and the most recent runs
for a game variant. The game defaults to "mazechase".

Examples:
  mazechase scores
  mazechase scores mazechase_fair --recent 20
  mazechase scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 5, "Number of recent runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := mazechase.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'mazechase list')", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazechase play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Played: %d  Average: %.1f  Cleared: %d  Caught: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.Cleared, stats.Caught)
	}

	if flagScoresRecent <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(gameID, flagScoresRecent)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	fmt.Printf("  %-12s  %-8s  %-6s  %-6s  %s\n", "Maze", "Outcome", "Score", "Ticks", "Date")
	for _, r := range runs {
		fmt.Printf("  %-12s  %-8s  %-6d  %-6d  %s\n",
			r.MazeID, r.Outcome, r.Score, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
