package config

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	if err := Validate(DefaultRunnerConfig()); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if err := Validate(ClassicRunnerConfig()); err != nil {
		t.Fatalf("classic config should be valid: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
		want   string
	}{
		{"small pool", func(c *RunnerConfig) { c.Floor.PoolSize = 2 }, "pool_size"},
		{"safety below one", func(c *RunnerConfig) { c.Floor.SafetyFactor = 0.9 }, "safety_factor"},
		{"spacing inverted", func(c *RunnerConfig) { c.Floor.SpacingMin, c.Floor.SpacingMax = 1.6, 1.2 }, "spacing"},
		{"spacing below safety", func(c *RunnerConfig) { c.Floor.SpacingMin = 1.05 }, "spacing_min"},
		{"zero repair step", func(c *RunnerConfig) { c.Floor.RepairStep = 0 }, "repair_step"},
		{"coverage", func(c *RunnerConfig) { c.Floor.ForwardOffset = 200 }, "covers"},
		{"streak", func(c *RunnerConfig) { c.Floor.ColorStreakLimit = 0 }, "color_streak_limit"},
		{"y range", func(c *RunnerConfig) { c.Floor.YMin = 1 }, "y_min"},
		{"y mode", func(c *RunnerConfig) { c.Floor.YMode = "wavy" }, "y_mode"},
		{"recycle mode", func(c *RunnerConfig) { c.Floor.RecycleMode = "teleport" }, "recycle_mode"},
		{"max jumps", func(c *RunnerConfig) { c.Player.MaxJumps = 0 }, "max_jumps"},
		{"jump impulse", func(c *RunnerConfig) { c.Player.JumpImpulse = 0 }, "jump_impulse"},
		{"radius", func(c *RunnerConfig) { c.Player.Radius = 0 }, "player.radius"},
		{"start color", func(c *RunnerConfig) { c.Player.StartColor = "green" }, "start_color"},
		{"starvation", func(c *RunnerConfig) { c.Coins.StarvationLimit = 0 }, "starvation_limit"},
		{"reward", func(c *RunnerConfig) { c.Coins.Reward = -1 }, "reward"},
		{"bounds", func(c *RunnerConfig) { c.Bounds.MinY = 20 }, "min_y"},
		{"breakpoints", func(c *RunnerConfig) { c.Difficulty.Speed.HighAt = 50 }, "speed breakpoints"},
		{"curve range", func(c *RunnerConfig) { c.Difficulty.Speed.Min = 20 }, "speed.min"},
		{"descent min", func(c *RunnerConfig) { c.Difficulty.Descent.Min = 1 }, "descent.min"},
		{"coin rate", func(c *RunnerConfig) { c.Difficulty.CoinRate.Max = 1.5 }, "coin_rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig: %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Floor.PoolSize = 1
	cfg.Player.MaxJumps = 0

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "pool_size") || !strings.Contains(msg, "max_jumps") {
		t.Errorf("all violations should be reported, got %q", msg)
	}
}
