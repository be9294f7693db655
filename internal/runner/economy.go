package runner

import (
	"math/rand"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

// Economy decides coin spawns for recycled tiles and resolves pickups.
type Economy struct {
	cfg        config.RunnerCoins
	rng        *rand.Rand
	session    *Session
	starvation int // Consecutive recycled tiles without a coin
	spawned    int
	collected  int
}

// NewEconomy creates a coin economy that credits pickups to session.
func NewEconomy(cfg config.RunnerCoins, rng *rand.Rand, session *Session) *Economy {
	return &Economy{cfg: cfg, rng: rng, session: session}
}

// Starvation returns the current count of consecutive coin-less tiles.
func (e *Economy) Starvation() int {
	return e.starvation
}

// Spawned returns how many coins have been placed this run.
func (e *Economy) Spawned() int {
	return e.spawned
}

// Collected returns how many coins have been picked up this run.
func (e *Economy) Collected() int {
	return e.collected
}

// OnTileRecycled decides whether the freshly placed tile gets a coin.
// A random value is always drawn so the sequence stays reproducible
// regardless of the starvation state.
func (e *Economy) OnTileRecycled(t *FloorTile, coinRate float64) *Coin {
	u := e.rng.Float64()
	if u > coinRate && e.starvation+1 < e.cfg.StarvationLimit {
		e.starvation++
		t.Coin = nil
		return nil
	}
	e.starvation = 0

	x := t.Center.X + (e.rng.Float64()*2-1)*e.cfg.XRange
	x = core.ClampF(x, t.Left(), t.Right())
	y := t.Top() + e.cfg.YMin + e.rng.Float64()*(e.cfg.YMax-e.cfg.YMin)

	t.Coin = &Coin{Pos: core.V(x, y), TileID: t.ID}
	e.spawned++
	return t.Coin
}

// Collect picks up the coin of t and credits the reward.
// It returns false when there is nothing to collect or the session does
// not accept score.
func (e *Economy) Collect(t *FloorTile) bool {
	if t == nil || t.Coin == nil || t.Coin.Collected {
		return false
	}
	if e.session.IsPaused() || e.session.IsGameOver() {
		return false
	}
	t.Coin.Collected = true
	t.Coin = nil
	e.collected++
	e.session.AddScore(e.cfg.Reward)
	return true
}
