package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazechase/internal/games/mazechase"
	"github.com/vovakirdan/tui-mazechase/internal/levels"
)

var flagMazeDir string

var mazesCmd = &cobra.Command{
	Use:   "mazes",
	Short: "List available mazes",
	Long: `Lists the built-in mazes and, with --dir, every maze file found
under a directory.

Examples:
  mazechase mazes
  mazechase mazes --dir ./mazes
  mazechase mazes show crossroads
  mazechase mazes validate ./my-maze.yaml`,
	Args: cobra.NoArgs,
	RunE: runMazes,
}

var mazesShowCmd = &cobra.Command{
	Use:   "show <maze>",
	Short: "Print a maze layout",
	Args:  cobra.ExactArgs(1),
	RunE:  runMazesShow,
}

var mazesValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check maze files against the engine and the current config",
	Long: `Parses each maze file and builds a session from it with the current
config, so spawn points on walls and bad cell codes are reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMazesValidate,
}

func init() {
	mazesCmd.Flags().StringVar(&flagMazeDir, "dir", "", "Directory of maze files to list")
	mazesCmd.AddCommand(mazesShowCmd)
	mazesCmd.AddCommand(mazesValidateCmd)
}

func printLevels(title string, lvls []levels.Level) {
	fmt.Println(title)
	fmt.Println()

	maxIDLen := 2
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-5s  %-4s  %s\n", maxIDLen, "ID", "Size", "Dots", "Name")
	fmt.Printf("  %-*s  %-5s  %-4s  %s\n", maxIDLen, "--", "----", "----", "----")
	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Size, l.Size)
		fmt.Printf("  %-*s  %-5s  %-4d  %s\n", maxIDLen, l.ID, size, l.Collectibles(), l.Name)
	}
	fmt.Println()
}

func runMazes(_ *cobra.Command, _ []string) error {
	printLevels("Built-in mazes:", levels.Builtin())

	if flagMazeDir == "" {
		return nil
	}

	found, err := levels.NewLoader(flagMazeDir).LoadAll()
	if err != nil {
		return err
	}
	if len(found) == 0 {
		fmt.Printf("No valid maze files under %s.\n", flagMazeDir)
		return nil
	}
	printLevels(fmt.Sprintf("Mazes in %s:", flagMazeDir), found)
	return nil
}

func runMazesShow(_ *cobra.Command, args []string) error {
	lvl, err := levels.Resolve(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s) %dx%d, %d dots\n\n", lvl.Name, lvl.ID, lvl.Size, lvl.Size, lvl.Collectibles())
	for _, row := range lvl.Rows() {
		fmt.Println("  " + row)
	}
	return nil
}

func runMazesValidate(_ *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		if _, err := os.Stat(path); err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}

		_, lvl, err := mazechase.Load(flagConfig, path)
		if err != nil {
			failed++
			fmt.Printf("FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Printf("ok    %s: %s, %d dots\n", path, lvl.ID, lvl.Collectibles())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d mazes invalid", failed, len(args))
	}
	return nil
}
