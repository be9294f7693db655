// Package runner implements Chroma Dash, an endless runner where the
// player must land on floor tiles matching its current color.
package runner

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/physics"
)

// Game IDs.
const (
	ModeChroma  = "chroma"
	ModeClassic = "chroma-classic"
)

// spawnLift keeps the player just above the first tile at reset.
const spawnLift = 0.05

// Game ties the physics world, tile pool, economy and player together
// and advances them one fixed tick at a time.
type Game struct {
	id       string
	cfg      config.RunnerConfig
	runtime  core.RuntimeConfig
	newWorld WorldFactory
	store    HighScoreStore
	log      *log.Logger

	world    World
	pool     *TilePool
	recycler *Recycler
	economy  *Economy
	player   *Player
	session  *Session
	scaler   *config.DifficultyScaler
	rng      *rand.Rand
	params   config.Params
	ticks    int
	startX   float64
	pending  *config.RunnerConfig
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithStore persists high scores through s.
func WithStore(s HighScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithWorldFactory replaces the Chipmunk world, mainly for tests.
func WithWorldFactory(f WorldFactory) Option {
	return func(g *Game) {
		if f != nil {
			g.newWorld = f
		}
	}
}

// New validates cfg and creates a game registered under id.
// Reset must be called before the first Step.
func New(id string, cfg config.RunnerConfig, opts ...Option) (*Game, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	g := &Game{
		id:       id,
		cfg:      cfg,
		newWorld: NewPhysicsWorld,
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.session = NewSession(id, g.store, g.log)
	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == ModeClassic {
		return "Chroma Dash Classic"
	}
	return "Chroma Dash"
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Reconfigure validates cfg and applies it on the next Reset.
func (g *Game) Reconfigure(cfg config.RunnerConfig) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	g.pending = &cfg
	return nil
}

// Reset starts a new run. The layout depends only on the config and
// the seed.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	if g.pending != nil {
		g.cfg = *g.pending
		g.pending = nil
		g.log.Info("config applied", "mode", g.id)
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.scaler = config.NewDifficultyScaler(g.cfg.Difficulty)
	g.session.Reset()
	g.params = g.scaler.Evaluate(0)
	g.ticks = 0

	f := g.cfg.Floor
	g.pool = NewTilePool(f.PoolSize, f.TileWidth, f.TileHeight)
	g.recycler = NewRecycler(f, g.pool, g.rng, g.log)
	g.economy = NewEconomy(g.cfg.Coins, g.rng, g.session)

	startColor, _ := ParseColor(g.cfg.Player.StartColor)
	g.recycler.Layout(startColor)

	first := g.pool.Get(0)
	start := core.V(first.Center.X, first.Top()+g.cfg.Player.Radius+spawnLift)
	g.startX = start.X
	g.world = g.newWorld(g.cfg, start)
	for _, t := range g.pool.Tiles() {
		g.world.AddTile(t.ID, t.Center, t.W, t.H)
		if t.ID == 0 {
			continue
		}
		if c := g.economy.OnTileRecycled(t, g.params.CoinRate); c != nil {
			g.world.PlaceCoin(t.ID, c.Pos, g.cfg.Coins.Radius)
		}
	}
	g.world.MoveHazard(start.X)

	g.player = NewPlayer(g.cfg.Player, g.cfg.Bounds, g.world, g.session, g.log)
	g.log.Debug("run started", "mode", g.id, "seed", rt.Seed, "tiles", f.PoolSize)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.session.IsGameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	// Paused or finished runs keep the body still and skip everything else.
	if g.session.IsPaused() || g.session.IsGameOver() {
		g.world.SetPlayerVelocity(core.Vec2{})
		return core.StepResult{State: g.State()}
	}

	g.ticks++
	g.world.MoveHazard(g.player.Pos.X)
	g.world.Step(g.runtime.TickSeconds())
	g.resolveContacts()

	// Score changes from pickups apply in the same tick.
	g.params = g.scaler.Evaluate(g.session.Score())
	g.player.Update(in, g.params)
	if g.player.State == Dead {
		st := g.Stats()
		g.log.Info("run ended", "mode", g.id, "cause", g.player.Cause, "score", g.session.Score(),
			"ticks", st.Ticks, "distance", st.Distance, "coins", st.CoinsCollected, "spawned", st.CoinsSpawned,
			"repairs", st.Repairs, "frontier", st.Frontier, "progression", st.Progression)
		return core.StepResult{State: g.State()}
	}

	for _, t := range g.recycler.Update(g.player.Pos.X) {
		g.world.RemoveCoin(t.ID)
		g.world.MoveTile(t.ID, t.Center)
		if c := g.economy.OnTileRecycled(t, g.params.CoinRate); c != nil {
			g.world.PlaceCoin(t.ID, c.Pos, g.cfg.Coins.Radius)
			g.log.Debug("coin spawned", "tile", t.ID, "x", c.Pos.X, "y", c.Pos.Y)
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) resolveContacts() {
	for _, c := range g.world.Drain() {
		switch c.Kind {
		case physics.TileEnter:
			g.player.OnTileEnter(g.pool.Get(c.ID))
		case physics.TileExit:
			g.player.OnTileExit(c.ID)
		case physics.CoinEnter:
			if g.economy.Collect(g.pool.Get(c.ID)) {
				g.world.RemoveCoin(c.ID)
			}
		case physics.HazardEnter:
			g.player.OnHazard()
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		GameOver:  g.session.IsGameOver(),
		Paused:    g.session.IsPaused(),
	}
}

// Session returns the run session.
func (g *Game) Session() *Session {
	return g.session
}

// Ticks returns how many simulation ticks the current run has taken.
func (g *Game) Ticks() int {
	return g.ticks
}

// Distance returns how far the player has run since the last reset.
func (g *Game) Distance() float64 {
	return g.player.Pos.X - g.startX
}

// RunStats summarizes the current run for diagnostics.
type RunStats struct {
	Ticks          int
	Distance       float64
	CoinsSpawned   int
	CoinsCollected int
	Repairs        int     // Recycler repair steps
	Frontier       float64 // Right-most tile center
	Progression    bool    // Difficulty follows the score
	Gravity        float64 // Current player gravity multiplier
}

// Stats returns the diagnostics of the current run.
func (g *Game) Stats() RunStats {
	return RunStats{
		Ticks:          g.ticks,
		Distance:       g.Distance(),
		CoinsSpawned:   g.economy.Spawned(),
		CoinsCollected: g.economy.Collected(),
		Repairs:        g.recycler.Repairs(),
		Frontier:       g.pool.Frontier(),
		Progression:    g.scaler.IsEnabled(),
		Gravity:        g.world.GravityScale(),
	}
}
