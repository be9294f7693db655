package runner

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

// Recycler keeps the tile pool ahead of the player by relocating tiles
// that fall behind.
type Recycler struct {
	cfg  config.RunnerFloor
	pool *TilePool
	rng  *rand.Rand
	log  *log.Logger

	lastColor Color
	streak    int // Consecutive tiles of lastColor in spawn order
	seq       int
	repairs   int // Total repair steps taken, for diagnostics
}

// NewRecycler creates a recycler for pool. All randomness comes from rng.
func NewRecycler(cfg config.RunnerFloor, pool *TilePool, rng *rand.Rand, logger *log.Logger) *Recycler {
	return &Recycler{cfg: cfg, pool: pool, rng: rng, log: logger}
}

// MinDistance returns the minimum center distance between tiles.
func (r *Recycler) MinDistance() float64 {
	return r.cfg.TileWidth * r.cfg.SafetyFactor
}

// Repairs returns how many repair steps were taken so far.
func (r *Recycler) Repairs() int {
	return r.repairs
}

// Layout places every tile for a fresh run, left to right from StartX.
// The first tile always gets the start color so the player starts on safe ground.
func (r *Recycler) Layout(first Color) {
	x := r.cfg.StartX
	for i, t := range r.pool.Tiles() {
		if i > 0 {
			x += r.spacing()
		}
		var c Color
		if i == 0 {
			c = first
			r.lastColor, r.streak = first, 1
		} else {
			c = r.PickColor()
		}
		r.place(t, x, r.PickY(), c)
	}
}

// Due reports whether tile should be recycled for the given player x.
func (r *Recycler) Due(t *FloorTile, playerX float64) bool {
	if r.cfg.RecycleMode == config.RecycleBoundary {
		return t.Center.X < playerX+r.cfg.LeftBoundary
	}
	return t.Center.X < playerX-r.cfg.TrailingDistance
}

// Update recycles every due tile and returns them in recycle order.
// Coins of recycled tiles are dropped before relocation.
func (r *Recycler) Update(playerX float64) []*FloorTile {
	var due []*FloorTile
	for _, t := range r.pool.Sorted() {
		if !t.Active || !r.Due(t, playerX) {
			// Sorted by x, so nothing further right can be due.
			break
		}
		due = append(due, t)
	}
	for _, t := range due {
		r.Recycle(t, playerX)
	}
	return due
}

// Recycle relocates t ahead of the player.
func (r *Recycler) Recycle(t *FloorTile, playerX float64) {
	t.Coin = nil

	var x, y float64
	if r.cfg.RecycleMode == config.RecycleBoundary {
		x = playerX + r.cfg.RightBoundary
		y = t.Center.Y
		if !r.cfg.KeepY {
			y = r.PickY()
		}
	} else {
		x = playerX + r.cfg.ForwardOffset + r.spacing()
		y = r.PickY()
	}

	x = r.Repair(x, t.ID)
	c := r.PickColor()
	r.place(t, x, y, c)

	if r.log != nil {
		r.log.Debug("tile recycled", "id", t.ID, "x", x, "y", y, "color", c)
	}
}

// Repair moves x forward by RepairStep tile widths until it keeps the
// minimum distance from every other tile. Each step strictly increases
// x and the pool is finite, so the loop ends.
func (r *Recycler) Repair(x float64, exclude int) float64 {
	step := r.cfg.RepairStep * r.cfg.TileWidth
	min := r.MinDistance()
	for !r.pool.Clear(x, min, exclude) {
		x += step
		r.repairs++
	}
	return x
}

// PickColor draws a uniform color, flipping it when it would extend the
// current run past ColorStreakLimit.
func (r *Recycler) PickColor() Color {
	c := Color(r.rng.Intn(2))
	if r.streak > 0 && c == r.lastColor {
		if r.streak >= r.cfg.ColorStreakLimit {
			c = c.Other()
			r.lastColor, r.streak = c, 1
			return c
		}
		r.streak++
		return c
	}
	r.lastColor, r.streak = c, 1
	return c
}

// PickY returns the height for a newly placed tile.
func (r *Recycler) PickY() float64 {
	if r.cfg.YMode == config.YModeFlat {
		return r.cfg.FlatY
	}
	return r.cfg.YMin + r.rng.Float64()*(r.cfg.YMax-r.cfg.YMin)
}

func (r *Recycler) spacing() float64 {
	f := r.cfg.SpacingMin + r.rng.Float64()*(r.cfg.SpacingMax-r.cfg.SpacingMin)
	return f * r.cfg.TileWidth
}

func (r *Recycler) place(t *FloorTile, x, y float64, c Color) {
	t.Color = c
	t.Seq = r.seq
	r.seq++
	r.pool.Move(t.ID, core.V(x, y))
}
