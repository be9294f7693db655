package runner

import (
	"fmt"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/registry"
)

func init() {
	registry.Register(ModeChroma, "Chroma Dash", factory(ModeChroma))
	registry.Register(ModeClassic, "Chroma Dash Classic", factory(ModeClassic))
}

func factory(mode string) registry.Factory {
	return func(opts registry.Options) (registry.Game, error) {
		cfg, err := ResolveConfig(mode, opts)
		if err != nil {
			return nil, err
		}
		return New(mode, cfg, WithLogger(opts.Logger), WithStore(opts.Store))
	}
}

// ResolveConfig builds the runner config for mode from the options:
// an explicit config wins, then the config search path. The classic
// mode always recycles at fixed boundaries.
func ResolveConfig(mode string, opts registry.Options) (config.RunnerConfig, error) {
	var cfg config.RunnerConfig
	switch {
	case opts.Config != nil:
		cfg = *opts.Config
	case mode == ModeClassic && opts.ConfigPath == "":
		cfg = config.ClassicRunnerConfig()
	default:
		loaded, err := config.LoadRunner(opts.ConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("runner: %w", err)
		}
		cfg = loaded
	}

	if mode == ModeClassic {
		cfg.Floor.RecycleMode = config.RecycleBoundary
	}

	if opts.Difficulty != "" {
		preset := config.ParsePreset(opts.Difficulty)
		if preset == "" {
			return cfg, fmt.Errorf("runner: unknown difficulty %q", opts.Difficulty)
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return cfg, nil
}
