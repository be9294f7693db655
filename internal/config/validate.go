package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the structural invariants a run depends on.
// All violations are reported together.
func Validate(cfg RunnerConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	p := cfg.Player
	check(p.Radius > 0, "player.radius must be positive, got %v", p.Radius)
	check(p.Mass > 0, "player.mass must be positive, got %v", p.Mass)
	check(p.JumpImpulse > 0, "player.jump_impulse must be positive, got %v", p.JumpImpulse)
	check(p.MaxJumps >= 1, "player.max_jumps must be at least 1, got %d", p.MaxJumps)
	check(p.DescendImpulse >= 0, "player.descend_impulse must not be negative, got %v", p.DescendImpulse)
	check(p.ProbeDistance > 0, "player.probe_distance must be positive, got %v", p.ProbeDistance)
	check(p.StartColor == "red" || p.StartColor == "blue", "player.start_color must be red or blue, got %q", p.StartColor)

	check(cfg.Physics.Gravity > 0, "physics.gravity must be positive, got %v", cfg.Physics.Gravity)
	check(cfg.Physics.Iterations >= 1, "physics.iterations must be at least 1, got %d", cfg.Physics.Iterations)

	f := cfg.Floor
	check(f.PoolSize >= 3, "floor.pool_size must be at least 3, got %d", f.PoolSize)
	check(f.TileWidth > 0, "floor.tile_width must be positive, got %v", f.TileWidth)
	check(f.TileHeight > 0, "floor.tile_height must be positive, got %v", f.TileHeight)
	check(f.SafetyFactor >= 1, "floor.safety_factor must be at least 1, got %v", f.SafetyFactor)
	check(f.SpacingMin > 0 && f.SpacingMin <= f.SpacingMax,
		"floor spacing must satisfy 0 < spacing_min <= spacing_max, got %v..%v", f.SpacingMin, f.SpacingMax)
	check(f.SpacingMin >= f.SafetyFactor,
		"floor.spacing_min %v must not be below safety_factor %v", f.SpacingMin, f.SafetyFactor)
	check(f.RepairStep > 0, "floor.repair_step must be positive, got %v", f.RepairStep)
	check(f.TrailingDistance > 0, "floor.trailing_distance must be positive, got %v", f.TrailingDistance)
	check(f.ForwardOffset > 0, "floor.forward_offset must be positive, got %v", f.ForwardOffset)
	check(f.ColorStreakLimit >= 1, "floor.color_streak_limit must be at least 1, got %d", f.ColorStreakLimit)
	check(f.YMin <= f.YMax, "floor.y_min %v must not exceed y_max %v", f.YMin, f.YMax)
	check(f.YMode == YModeFlat || f.YMode == YModeRandom, "floor.y_mode %q is unknown", f.YMode)
	check(f.RecycleMode == RecycleTrailing || f.RecycleMode == RecycleBoundary,
		"floor.recycle_mode %q is unknown", f.RecycleMode)
	if f.RecycleMode == RecycleBoundary {
		check(f.LeftBoundary < 0 && f.RightBoundary > 0,
			"floor boundaries must straddle the player, got %v..%v", f.LeftBoundary, f.RightBoundary)
	}

	avgSpacing := (f.SpacingMin + f.SpacingMax) / 2
	covered := float64(f.PoolSize) * avgSpacing * f.TileWidth
	needed := f.TrailingDistance + f.ForwardOffset + f.Margin
	check(covered >= needed,
		"floor pool covers %.2f units, needs trailing+forward+margin = %.2f", covered, needed)

	c := cfg.Coins
	check(c.StarvationLimit >= 1, "coins.starvation_limit must be at least 1, got %d", c.StarvationLimit)
	check(c.Reward >= 0, "coins.reward must not be negative, got %d", c.Reward)
	check(c.Radius > 0, "coins.radius must be positive, got %v", c.Radius)
	check(c.XRange >= 0, "coins.x_range must not be negative, got %v", c.XRange)
	check(c.YMin <= c.YMax, "coins.y_min %v must not exceed y_max %v", c.YMin, c.YMax)

	b := cfg.Bounds
	check(b.MinY < b.MaxY, "bounds.min_y %v must be below max_y %v", b.MinY, b.MaxY)

	d := cfg.Difficulty
	check(d.HeadStart >= 0, "difficulty.head_start must not be negative, got %d", d.HeadStart)
	validateCurve("speed", d.Speed, check)
	validateCurve("descent", d.Descent, check)
	validateCurve("coin_rate", d.CoinRate, check)
	check(d.Speed.Min > 0, "difficulty.speed.min must be positive, got %v", d.Speed.Min)
	check(d.Descent.Min > 1, "difficulty.descent.min must exceed 1, got %v", d.Descent.Min)
	check(d.CoinRate.Min >= 0 && d.CoinRate.Max <= 1,
		"difficulty.coin_rate must stay within [0, 1], got %v..%v", d.CoinRate.Min, d.CoinRate.Max)

	return errors.Join(errs...)
}

func validateCurve(name string, c Curve, check func(bool, string, ...any)) {
	check(c.LowAt > 0 && c.LowAt < c.HighAt,
		"difficulty.%s breakpoints must satisfy 0 < low_at < high_at, got %d, %d", name, c.LowAt, c.HighAt)
	check(c.Min <= c.Max, "difficulty.%s.min %v must not exceed max %v", name, c.Min, c.Max)
}
