package config

import "github.com/vovakirdan/chromadash/internal/core"

// Params are the difficulty-dependent values for one tick.
type Params struct {
	Speed          float64 // Horizontal run speed
	DescentGravity float64 // Gravity multiplier while descending
	CoinRate       float64 // Coin spawn probability per recycled tile
}

// DifficultyScaler maps a score to the current Params.
// It holds no state beyond its config, so Evaluate is safe to call
// as often as needed.
type DifficultyScaler struct {
	cfg DifficultyConfig
}

// NewDifficultyScaler creates a scaler for the given curves.
func NewDifficultyScaler(cfg DifficultyConfig) *DifficultyScaler {
	return &DifficultyScaler{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyScaler) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the score the curves are evaluated at.
// With progression disabled it is pinned to the head start.
func (d *DifficultyScaler) Level(score int) int {
	if score < 0 {
		score = 0
	}
	if !d.cfg.Enabled {
		return d.cfg.HeadStart
	}
	return score + d.cfg.HeadStart
}

// Evaluate returns the parameters for the given score.
func (d *DifficultyScaler) Evaluate(score int) Params {
	level := d.Level(score)
	return Params{
		Speed:          d.cfg.Speed.At(level),
		DescentGravity: d.cfg.Descent.At(level),
		CoinRate:       d.cfg.CoinRate.At(level),
	}
}

// At evaluates the curve. A score exactly on a breakpoint yields the
// value the next segment starts from.
func (c Curve) At(score int) float64 {
	s := float64(score)
	if s < 0 {
		s = 0
	}
	lowAt := float64(c.LowAt)
	highAt := float64(c.HighAt)

	var v float64
	switch {
	case s < lowAt:
		v = core.Lerp(c.Start, c.Mid, s/lowAt)
	case s < highAt:
		v = core.Lerp(c.Mid, c.High, (s-lowAt)/(highAt-lowAt))
	default:
		v = c.High + c.TailSlope*(s-highAt)
	}
	return core.ClampF(v, c.Min, c.Max)
}
