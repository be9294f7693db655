package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Chroma Dash configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file
// cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:    20,
			Iterations: 10,
		},
		Player: RunnerPlayer{
			Radius:         0.5,
			Mass:           1,
			JumpImpulse:    9,
			MaxJumps:       2,
			DescendImpulse: 5,
			ProbeOffset:    0.3,
			ProbeDistance:  0.8,
			StartColor:     "red",
		},
		Floor: RunnerFloor{
			PoolSize:         12,
			TileWidth:        5,
			TileHeight:       1,
			StartX:           0,
			SpacingMin:       1.1,
			SpacingMax:       1.6,
			SafetyFactor:     1.1,
			RepairStep:       0.25,
			TrailingDistance: 15,
			ForwardOffset:    40,
			Margin:           10,
			ColorStreakLimit: 2,
			YMode:            YModeRandom,
			FlatY:            -2.5,
			YMin:             -3,
			YMax:             -2,
			RecycleMode:      RecycleTrailing,
			LeftBoundary:     -15,
			RightBoundary:    50,
		},
		Coins: RunnerCoins{
			Reward:          10,
			StarvationLimit: 4,
			Radius:          0.3,
			XRange:          1,
			YMin:            0.5,
			YMax:            1.5,
		},
		Bounds: RunnerBounds{
			MinY: -10,
			MaxY: 10,
			PitY: -8,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Speed: Curve{
				Start: 5, Mid: 6.5, High: 8,
				LowAt: 100, HighAt: 200,
				TailSlope: 0.005,
				Min:       5, Max: 11,
			},
			Descent: Curve{
				Start: 4, Mid: 4.5, High: 5,
				LowAt: 100, HighAt: 200,
				TailSlope: 0.002,
				Min:       2, Max: 6,
			},
			CoinRate: Curve{
				Start: 0.7, Mid: 0.55, High: 0.4,
				LowAt: 100, HighAt: 200,
				TailSlope: -0.0005,
				Min:       0.25, Max: 0.7,
			},
		},
	}
}

// ClassicRunnerConfig returns the default configuration switched to
// boundary recycling with flat tiles.
func ClassicRunnerConfig() RunnerConfig {
	cfg := DefaultRunnerConfig()
	cfg.Floor.RecycleMode = RecycleBoundary
	cfg.Floor.KeepY = true
	return cfg
}
