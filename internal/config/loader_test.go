package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		t.Fatalf("embedded runner.yaml does not parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded runner.yaml drifted from DefaultRunnerConfig:\n%+v\n%+v", cfg, DefaultRunnerConfig())
	}
}

func TestLoadRunnerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("floor:\n  pool_size: 16\ncoins:\n  reward: 25\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, src, err := LoadRunnerWithSource(path)
	if err != nil {
		t.Fatalf("LoadRunnerWithSource: %v", err)
	}
	if src != path {
		t.Errorf("source = %q, expected %q", src, path)
	}
	if cfg.Floor.PoolSize != 16 || cfg.Coins.Reward != 25 {
		t.Errorf("overrides not applied: pool=%d reward=%d", cfg.Floor.PoolSize, cfg.Coins.Reward)
	}
	// Keys absent from the file keep their defaults
	if cfg.Floor.TileWidth != DefaultRunnerConfig().Floor.TileWidth {
		t.Errorf("tile width = %v, expected default", cfg.Floor.TileWidth)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	if _, err := LoadRunner(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("floor: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadRunner(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestApplyRunnerPreset(t *testing.T) {
	cfg := DefaultRunnerConfig()
	ApplyRunnerPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.HeadStart != 150 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset: head start %d enabled %v", cfg.Difficulty.HeadStart, cfg.Difficulty.Enabled)
	}

	ApplyRunnerPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	before := cfg
	ApplyRunnerPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should not modify the config")
	}
}
