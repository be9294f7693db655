package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/platform/tui"
	"github.com/vovakirdan/chromadash/internal/registry"
	"github.com/vovakirdan/chromadash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagAutopilot  bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Chroma Dash",
	Long: `Start a run of the given mode. Without a mode, a menu lets you pick
one and browse the scoreboard.

Controls:
  Space/Up/W      - Jump (double jump in the air)
  Down/S          - Descend (fast fall while airborne)
  Tab/C           - Switch color
  P/Esc           - Pause
  R               - Restart (after game over)
  A               - Toggle autopilot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start from the lowest tier, progresses to max
  normal - Start as if 50 points were already scored
  hard   - Start as if 150 points were already scored
  fixed  - No progression, stays at the config's head start

With --watch, edits to the config file are validated and applied on
the next restart.

Examples:
  chromadash play
  chromadash play chroma --difficulty easy
  chromadash play chroma-classic
  chromadash play chroma --config ./runner.yaml --watch`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file when it changes")
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Start with the autopilot playing")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	watcher := openWatcher(logger)

	var runErr error
	if len(args) == 0 {
		runErr = tui.RunSession(tui.SessionConfig{
			Store:      store,
			Logger:     logger,
			ConfigPath: flagConfig,
			Difficulty: flagDifficulty,
			Watcher:    watcher,
		}, rt)
	} else {
		runErr = playMode(args[0], store, logger, watcher, rt)
	}

	if watcher != nil {
		watcher.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func playMode(id string, store *storage.Store, logger *log.Logger, watcher *config.Watcher, rt core.RuntimeConfig) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown mode %q (run 'chromadash list' to see available modes)", id)
	}

	opts := registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Logger:     logger,
	}
	if store != nil {
		opts.Store = store
	}
	game, err := registry.Create(id, opts)
	if err != nil {
		return err
	}

	return tui.Run(game, rt, tui.Options{
		Store:      store,
		Logger:     logger,
		Watcher:    watcher,
		Difficulty: flagDifficulty,
		Autopilot:  flagAutopilot,
	})
}

// openWatcher watches --config, or the file the config search found.
// The embedded default has nothing to watch.
func openWatcher(logger *log.Logger) *config.Watcher {
	if !flagWatch {
		return nil
	}
	path := flagConfig
	if path == "" {
		if _, src, err := config.LoadRunnerWithSource(""); err == nil && src != "embedded" && src != "builtin" {
			path = src
		}
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file on disk, reloading disabled")
		return nil
	}

	w, err := config.NewWatcher(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not watch %s: %v\n", path, err)
		return nil
	}
	logger.Info("watching config", "path", w.Path())
	return w
}
