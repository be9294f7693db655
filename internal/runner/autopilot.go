package runner

import "github.com/vovakirdan/chromadash/internal/core"

// Autopilot plays the game from snapshots. It powers headless
// simulation and attract mode; it is a heuristic, not a solver.
type Autopilot struct {
	// Lead is how many seconds ahead the pilot looks for its next tile.
	Lead float64
	// EdgeTime is how close to a tile edge, in seconds, it jumps.
	EdgeTime float64
}

// DefaultAutopilot returns a pilot tuned for the default config.
func DefaultAutopilot() Autopilot {
	return Autopilot{Lead: 0.35, EdgeTime: 0.1}
}

// Decide returns the input for the next tick.
func (a Autopilot) Decide(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if s.GameOver || s.Paused || !s.Player.Alive {
		return in
	}

	p := s.Player
	speed := s.Params.Speed
	feet := p.Pos.Y - p.Radius

	current := tileAt(s.Tiles, p.Pos.X, feet+0.2)
	ahead := tileAt(s.Tiles, p.Pos.X+speed*a.Lead, feet+0.2)
	if ahead == nil {
		ahead = nextTile(s.Tiles, p.Pos.X)
	}

	// Match whatever we are about to touch next.
	target := current
	if target == nil || p.State != Grounded {
		target = ahead
	}
	if target != nil && target.Color != p.Color {
		in.Set(core.ActionToggleColor)
	}

	switch p.State {
	case Grounded:
		if current == nil {
			break
		}
		edge := current.Center.X + current.W/2 - p.Pos.X
		if edge < speed*a.EdgeTime {
			in.Set(core.ActionJump)
			break
		}
		if next := nextTile(s.Tiles, p.Pos.X); next != nil {
			gap := next.Center.X - next.W/2 - p.Pos.X
			if next.Top() > current.Top()+0.3 && gap < speed*a.Lead {
				in.Set(core.ActionJump)
			}
		}
	case Airborne:
		if p.Vel.Y < 0 && p.JumpCount < p.MaxJumps && tileAt(s.Tiles, p.Pos.X+speed*a.Lead, feet) == nil {
			in.Set(core.ActionJump)
		}
	}
	return in
}

// tileAt returns the highest active tile under x whose top is at or
// below maxTop.
func tileAt(tiles []TileView, x, maxTop float64) *TileView {
	var best *TileView
	for i := range tiles {
		t := &tiles[i]
		if !t.Active || !t.ContainsX(x) || t.Top() > maxTop {
			continue
		}
		if best == nil || t.Top() > best.Top() {
			best = t
		}
	}
	return best
}

// nextTile returns the first active tile starting to the right of x.
func nextTile(tiles []TileView, x float64) *TileView {
	for i := range tiles {
		t := &tiles[i]
		if t.Active && t.Center.X-t.W/2 > x {
			return t
		}
	}
	return nil
}

// AutopilotInput returns the autopilot's input for the current state.
func (g *Game) AutopilotInput() core.InputFrame {
	return DefaultAutopilot().Decide(g.Snapshot())
}
