// Package config provides YAML-based game configuration loading,
// validation and difficulty scaling for the runner.
package config

// RunnerConfig contains all configuration for a Chroma Dash run.
// It is loaded once per run and treated as read-only afterwards.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Floor      RunnerFloor      `yaml:"floor"`
	Coins      RunnerCoins      `yaml:"coins"`
	Bounds     RunnerBounds     `yaml:"bounds"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines world-level physics parameters.
type RunnerPhysics struct {
	Gravity    float64 `yaml:"gravity"`    // Downward acceleration (positive number)
	Iterations int     `yaml:"iterations"` // Solver iterations per step
}

// RunnerPlayer defines the player capsule and its controls.
type RunnerPlayer struct {
	Radius         float64 `yaml:"radius"`
	Mass           float64 `yaml:"mass"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	MaxJumps       int     `yaml:"max_jumps"`
	DescendImpulse float64 `yaml:"descend_impulse"`
	ProbeOffset    float64 `yaml:"probe_offset"`   // Probe origin below the capsule center
	ProbeDistance  float64 `yaml:"probe_distance"` // Probe length downward from its origin
	StartColor     string  `yaml:"start_color"`    // "red" or "blue"
}

// RunnerFloor defines the tile pool and how tiles are recycled.
type RunnerFloor struct {
	PoolSize         int     `yaml:"pool_size"`
	TileWidth        float64 `yaml:"tile_width"`
	TileHeight       float64 `yaml:"tile_height"`
	StartX           float64 `yaml:"start_x"`      // Center of the first tile
	SpacingMin       float64 `yaml:"spacing_min"`  // Random spacing, in tile widths
	SpacingMax       float64 `yaml:"spacing_max"`  // Random spacing, in tile widths
	SafetyFactor     float64 `yaml:"safety_factor"` // Minimum center distance, in tile widths
	RepairStep       float64 `yaml:"repair_step"`  // Overlap repair increment, in tile widths
	TrailingDistance float64 `yaml:"trailing_distance"`
	ForwardOffset    float64 `yaml:"forward_offset"`
	Margin           float64 `yaml:"margin"`
	ColorStreakLimit int     `yaml:"color_streak_limit"`
	YMode            string  `yaml:"y_mode"` // "flat" or "random"
	FlatY            float64 `yaml:"flat_y"`
	YMin             float64 `yaml:"y_min"`
	YMax             float64 `yaml:"y_max"`
	RecycleMode      string  `yaml:"recycle_mode"` // "trailing" or "boundary"
	LeftBoundary     float64 `yaml:"left_boundary"`  // Boundary mode, relative to player
	RightBoundary    float64 `yaml:"right_boundary"` // Boundary mode, relative to player
	KeepY            bool    `yaml:"keep_y"`         // Boundary mode keeps the tile's height
}

// RunnerCoins defines the coin economy.
type RunnerCoins struct {
	Reward          int     `yaml:"reward"`
	StarvationLimit int     `yaml:"starvation_limit"` // Max consecutive coin-less tiles + 1
	Radius          float64 `yaml:"radius"`
	XRange          float64 `yaml:"x_range"`
	YMin            float64 `yaml:"y_min"` // Above the tile surface
	YMax            float64 `yaml:"y_max"`
}

// RunnerBounds defines where the run is lost regardless of tiles.
type RunnerBounds struct {
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
	PitY float64 `yaml:"pit_y"` // Hazard strip under the floor
}

// Recycle modes.
const (
	RecycleTrailing = "trailing"
	RecycleBoundary = "boundary"
)

// Tile height modes.
const (
	YModeFlat   = "flat"
	YModeRandom = "random"
)

// DifficultyConfig defines the score-driven difficulty curves.
type DifficultyConfig struct {
	Enabled   bool  `yaml:"enabled"`
	HeadStart int   `yaml:"head_start"` // Points added to the score before evaluation
	Speed     Curve `yaml:"speed"`
	Descent   Curve `yaml:"descent"`   // Gravity multiplier while descending
	CoinRate  Curve `yaml:"coin_rate"` // Spawn probability per recycled tile
}

// Curve is a three-segment piecewise-linear function of score.
// Value is Start at 0, Mid at LowAt, High at HighAt, then grows by
// TailSlope per point. The result is clamped to [Min, Max].
type Curve struct {
	Start     float64 `yaml:"start"`
	Mid       float64 `yaml:"mid"`
	High      float64 `yaml:"high"`
	LowAt     int     `yaml:"low_at"`
	HighAt    int     `yaml:"high_at"`
	TailSlope float64 `yaml:"tail_slope"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// HeadStartForPreset returns the score head start for a difficulty preset.
func HeadStartForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 50
	case DifficultyHard:
		return 150
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
