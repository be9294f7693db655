package runner

import (
	"testing"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/registry"
)

func TestRegistered(t *testing.T) {
	for _, id := range []string{ModeChroma, ModeClassic} {
		if !registry.Exists(id) {
			t.Errorf("%s not registered", id)
		}
	}
}

func TestRegistryCreate(t *testing.T) {
	store := newMemStore()
	store.high[ModeClassic] = 70

	g, err := registry.Create(ModeClassic, registry.Options{Store: store})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	game, ok := g.(*Game)
	if !ok {
		t.Fatalf("Create() returned %T", g)
	}
	if game.Config().Floor.RecycleMode != config.RecycleBoundary {
		t.Error("classic mode should recycle at boundaries")
	}
	if game.Session().HighScore() != 70 {
		t.Errorf("high score = %d, expected stored 70", game.Session().HighScore())
	}
	if _, ok := g.(registry.Reconfigurable); !ok {
		t.Error("Game should be reconfigurable")
	}
	if _, ok := g.(registry.Piloted); !ok {
		t.Error("Game should expose an autopilot")
	}
}

func TestResolveConfig(t *testing.T) {
	custom := config.DefaultRunnerConfig()
	custom.Floor.PoolSize = 20

	cfg, err := ResolveConfig(ModeChroma, registry.Options{Config: &custom, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("ResolveConfig() error: %v", err)
	}
	if cfg.Floor.PoolSize != 20 {
		t.Errorf("explicit config ignored: pool size %d", cfg.Floor.PoolSize)
	}
	if cfg.Difficulty.HeadStart != 150 || !cfg.Difficulty.Enabled {
		t.Errorf("hard preset not applied: %+v", cfg.Difficulty)
	}
	if custom.Difficulty.HeadStart != 0 {
		t.Error("ResolveConfig must not modify the caller's config")
	}

	if _, err := ResolveConfig(ModeChroma, registry.Options{Config: &custom, Difficulty: "brutal"}); err == nil {
		t.Error("unknown difficulty accepted")
	}
	if _, err := ResolveConfig(ModeChroma, registry.Options{ConfigPath: "/nonexistent/runner.yaml"}); err == nil {
		t.Error("missing custom config accepted")
	}
}
