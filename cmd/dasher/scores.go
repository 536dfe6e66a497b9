package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/platform/tui"
	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best runs",
	Long: `Display the best runs for a variant: most obstacles dodged first,
faster runs first on a tie.

Examples:
  dasher scores
  dasher scores dasher-classic
  dasher scores --recent --limit 5
  dasher scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored run of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := variantArg(args)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'dasher list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("runs cleared", "game", gameID)
		fmt.Printf("Cleared all runs of %s.\n", title)
		return
	}

	var runs []storage.Run
	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Printf("%s - %s\n", heading, title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dasher play %s' to set the first one!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "Rank", "Dodged", "Result", "Time", "When")
	fmt.Printf("  %-4s  %-6s  %-6s  %-8s  %s\n", "----", "------", "------", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-6s  %-8s  %s\n",
			i+1, r.Score, r.Outcome, tui.FormatDuration(r.Duration), humanize.Time(r.CreatedAt))
	}

	fmt.Println()
	if st, err := store.Stats(gameID); err == nil {
		fmt.Println(tui.StatsLine(st))
	}
}
