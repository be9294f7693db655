package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/registry"
	"github.com/vovakirdan/chromadash/internal/runner"
)

var (
	flagSimTicks int
	flagSimRuns  int
)

var simCmd = &cobra.Command{
	Use:   "sim [mode]",
	Short: "Run the autopilot headless",
	Long: `Simulate runs without a terminal. The autopilot plays each run for
at most --ticks ticks, then a summary line is printed per run.
Consecutive runs use consecutive seeds, so a fixed --seed reproduces
the whole batch. Simulated runs are never recorded.

Examples:
  chromadash sim
  chromadash sim chroma-classic --runs 10
  chromadash sim --seed 42 --ticks 36000 --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult summarizes one headless run.
type simResult struct {
	seed     int64
	ticks    int
	score    int
	distance float64
	speed    float64
	coins    int
	spawned  int
	repairs  int
	cause    string
}

func runSim(cmd *cobra.Command, args []string) {
	mode := runner.ModeChroma
	if len(args) > 0 {
		mode = args[0]
	}
	if !registry.Exists(mode) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", mode)
		fmt.Fprintln(os.Stderr, "Run 'chromadash list' to see available modes.")
		os.Exit(1)
	}

	logger := newLogger(os.Stderr)
	cfg, err := runner.ResolveConfig(mode, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	game, err := runner.New(mode, cfg, runner.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %s: %d run(s), up to %d ticks at %d fps\n", game.Title(), flagSimRuns, flagSimTicks, flagFPS)
	if !cfg.Difficulty.Enabled {
		fmt.Println("Difficulty progression is off")
	}
	fmt.Println()
	fmt.Printf("  %-20s  %-6s  %-6s  %-9s  %-6s  %-9s  %-7s  %s\n", "Seed", "Ticks", "Score", "Distance", "Speed", "Coins", "Repairs", "Result")
	fmt.Printf("  %-20s  %-6s  %-6s  %-9s  %-6s  %-9s  %-7s  %s\n", "----", "-----", "-----", "--------", "-----", "-----", "-------", "------")

	var total, best int
	for i := 0; i < flagSimRuns; i++ {
		r := simulate(game, core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: flagFPS,
			Seed:     seed + int64(i),
		}, flagSimTicks)

		result := r.cause
		if result == "" {
			result = "survived"
		}
		coins := fmt.Sprintf("%d/%d", r.coins, r.spawned)
		fmt.Printf("  %-20d  %-6d  %-6d  %-9.1f  %-6.2f  %-9s  %-7d  %s\n",
			r.seed, r.ticks, r.score, r.distance, r.speed, coins, r.repairs, result)

		total += r.score
		best = max(best, r.score)
	}

	if flagSimRuns > 1 {
		fmt.Println()
		fmt.Printf("Best: %d  Avg: %.1f\n", best, float64(total)/float64(flagSimRuns))
	}
}

// simulate plays one run with the autopilot until it ends or the tick
// budget is spent.
func simulate(game *runner.Game, rt core.RuntimeConfig, maxTicks int) simResult {
	game.Reset(rt)
	for game.Ticks() < maxTicks {
		res := game.Step(game.AutopilotInput())
		if res.State.GameOver {
			break
		}
	}

	s := game.Snapshot()
	st := game.Stats()
	return simResult{
		seed:     rt.Seed,
		ticks:    st.Ticks,
		score:    s.Score,
		distance: st.Distance,
		speed:    s.Params.Speed,
		coins:    st.CoinsCollected,
		spawned:  st.CoinsSpawned,
		repairs:  st.Repairs,
		cause:    s.Player.Cause,
	}
}
