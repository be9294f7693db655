// chromadash is an endless color-matching runner for the terminal.
//
// Usage:
//
//	chromadash list              - List available modes
//	chromadash play [mode]       - Play a mode, or pick one from the menu
//	chromadash sim [mode]        - Run the autopilot headless
//	chromadash serve             - Start SSH server for remote play
//	chromadash scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.chromadash/scores.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Registers the runner modes
	_ "github.com/vovakirdan/chromadash/internal/runner"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chromadash",
	Short: "Chroma Dash - an endless color runner in your terminal",
	Long: `Chroma Dash is an endless runner: keep running, jump between floor
tiles and switch your color so that it matches the tile you land on.

Available commands:
  list     - Show all modes
  play     - Play a mode directly, or pick one from the menu
  sim      - Let the autopilot play headless and print a summary
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  chromadash list
  chromadash play
  chromadash play chroma --difficulty hard
  chromadash sim --ticks 3600 --runs 5
  chromadash serve --ssh :2222
  chromadash scores chroma`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chromadash/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger returns a logger writing to w at the --log-level level.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "chromadash",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// fileLogger logs to ~/.chromadash/chromadash.log so the alt screen
// stays clean. Returns a discarding logger when the file can't be opened.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".chromadash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "chromadash.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}
