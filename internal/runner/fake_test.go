package runner

import (
	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/physics"
)

// fakeWorld is a scriptable World: it integrates velocity without
// gravity and reports whatever contacts and probe result a test sets.
type fakeWorld struct {
	pos, vel     core.Vec2
	probe        bool
	gravityScale float64
	frozen       bool
	impulses     []core.Vec2
	contacts     []physics.Contact
	tiles        map[int]core.Vec2
	coins        map[int]core.Vec2
	hazardX      float64
	steps        int
}

func newFakeWorld(start core.Vec2) *fakeWorld {
	return &fakeWorld{
		pos:          start,
		probe:        true,
		gravityScale: 1,
		tiles:        make(map[int]core.Vec2),
		coins:        make(map[int]core.Vec2),
	}
}

// fakeFactory returns a WorldFactory that records the last world built.
func fakeFactory(last **fakeWorld) WorldFactory {
	return func(cfg config.RunnerConfig, start core.Vec2) World {
		w := newFakeWorld(start)
		*last = w
		return w
	}
}

func (w *fakeWorld) Step(dt float64) {
	w.steps++
	w.pos = w.pos.Add(w.vel.Scale(dt))
}

func (w *fakeWorld) Drain() []physics.Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

func (w *fakeWorld) AddTile(id int, center core.Vec2, width, height float64) { w.tiles[id] = center }
func (w *fakeWorld) MoveTile(id int, center core.Vec2)                       { w.tiles[id] = center }
func (w *fakeWorld) PlaceCoin(id int, pos core.Vec2, radius float64)         { w.coins[id] = pos }
func (w *fakeWorld) RemoveCoin(id int)                                       { delete(w.coins, id) }
func (w *fakeWorld) MoveHazard(x float64)                                    { w.hazardX = x }
func (w *fakeWorld) PlayerPosition() core.Vec2                               { return w.pos }
func (w *fakeWorld) PlayerVelocity() core.Vec2                               { return w.vel }
func (w *fakeWorld) ProbeGround(offset, distance float64) bool               { return w.probe }

func (w *fakeWorld) SetPlayerVelocity(v core.Vec2) {
	if !w.frozen {
		w.vel = v
	}
}

func (w *fakeWorld) ApplyPlayerImpulse(impulse core.Vec2) {
	if w.frozen {
		return
	}
	w.impulses = append(w.impulses, impulse)
	w.vel = w.vel.Add(impulse)
}

func (w *fakeWorld) SetGravityScale(scale float64) {
	if !w.frozen {
		w.gravityScale = scale
	}
}

func (w *fakeWorld) GravityScale() float64 {
	return w.gravityScale
}

func (w *fakeWorld) FreezePlayer() {
	w.vel = core.Vec2{}
	w.gravityScale = 0
	w.frozen = true
}

var _ World = (*fakeWorld)(nil)
var _ World = (*physics.World)(nil)
