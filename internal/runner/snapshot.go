package runner

import (
	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

// PlayerView is a read-only copy of the player for presentation.
type PlayerView struct {
	Pos       core.Vec2
	Vel       core.Vec2
	Radius    float64
	Color     Color
	State     PlayerState
	JumpCount int
	MaxJumps  int
	Alive     bool
	Cause     string
}

// TileView is a read-only copy of a floor tile.
type TileView struct {
	ID      int
	Center  core.Vec2
	W, H    float64
	Color   Color
	Active  bool
	Seq     int
	HasCoin bool
	Coin    core.Vec2
}

// Snapshot is everything a presentation layer needs for one frame.
type Snapshot struct {
	Player     PlayerView
	Tiles      []TileView // Ordered by center x
	Params     config.Params
	Score      int
	HighScore  int
	NewBest    bool
	Paused     bool
	GameOver   bool
	Tick       int
	Starvation int
	PitY       float64
}

// Snapshot returns a copy of the current run state.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	s := Snapshot{
		Player: PlayerView{
			Pos:       p.Pos,
			Vel:       p.Vel,
			Radius:    g.cfg.Player.Radius,
			Color:     p.Color,
			State:     p.State,
			JumpCount: p.JumpCount,
			MaxJumps:  g.cfg.Player.MaxJumps,
			Alive:     p.Alive,
			Cause:     p.Cause,
		},
		Tiles:      make([]TileView, 0, g.pool.Len()),
		Params:     g.params,
		Score:      g.session.Score(),
		HighScore:  g.session.HighScore(),
		NewBest:    g.session.NewBest(),
		Paused:     g.session.IsPaused(),
		GameOver:   g.session.IsGameOver(),
		Tick:       g.ticks,
		Starvation: g.economy.Starvation(),
		PitY:       g.cfg.Bounds.PitY,
	}
	for _, t := range g.pool.Sorted() {
		v := TileView{
			ID:     t.ID,
			Center: t.Center,
			W:      t.W,
			H:      t.H,
			Color:  t.Color,
			Active: t.Active,
			Seq:    t.Seq,
		}
		if t.Coin != nil && !t.Coin.Collected {
			v.HasCoin = true
			v.Coin = t.Coin.Pos
		}
		s.Tiles = append(s.Tiles, v)
	}
	return s
}

// Top returns the y of the tile's upper surface.
func (t TileView) Top() float64 {
	return t.Center.Y + t.H/2
}

// ContainsX reports whether x lies over the tile.
func (t TileView) ContainsX(x float64) bool {
	return x >= t.Center.X-t.W/2 && x <= t.Center.X+t.W/2
}
