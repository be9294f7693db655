package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chromadash/internal/platform/tui"
	"github.com/vovakirdan/chromadash/internal/registry"
	"github.com/vovakirdan/chromadash/internal/storage"
)

var (
	flagPlain bool
	flagAll   bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the run history of a mode. In a terminal this opens the
interactive scoreboard; with --plain, or when output is piped, it prints
the top 10 runs. Without a mode, the plain output summarizes every mode.

Examples:
  chromadash scores
  chromadash scores chroma --plain
  chromadash scores chroma --all
  chromadash scores chroma-classic --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the scoreboard")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Print every recorded run, newest first")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the mode's history and best score")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'chromadash list' to see available modes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagClear:
		if gameID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
			os.Exit(1)
		}
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores of %s.\n", gameID)
		}
	case flagPlain || flagAll || !term.IsTerminal(int(os.Stdout.Fd())):
		if gameID == "" {
			err = printSummary(store)
		} else {
			err = printScores(store, gameID)
		}
	default:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunScoreboard(store, gameID, width, height, flagFPS)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID string) error {
	var scores []storage.ScoreEntry
	var err error
	if flagAll {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", titleOf(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'chromadash play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "Rank", "Score", "Distance", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "----", "-----", "--------", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-8d  %-9.0f  %-6s  %s\n", i+1, entry.Score, entry.Distance,
			formatDuration(entry.Ticks), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Avg: %.1f  Longest: %s\n", stats.GamesCount, stats.AvgScore, formatDuration(stats.BestTicks))
	}
	return nil
}

// printSummary prints one line per mode that has been played.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-5s  %-6s  %-8s  %s\n", "Mode", "Runs", "Best", "Avg", "Last played")
	fmt.Printf("  %-16s  %-5s  %-6s  %-8s  %s\n", "----", "----", "----", "---", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %-5d  %-6d  %-8.1f  %s\n", id, s.GamesCount, s.HighScore, s.AvgScore,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func titleOf(gameID string) string {
	for _, g := range registry.List() {
		if g.ID == gameID {
			return g.Title
		}
	}
	return gameID
}

// formatDuration renders ticks at --fps as m:ss.
func formatDuration(ticks int) string {
	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	secs := ticks / fps
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
