// Package physics wraps a Chipmunk space with the handful of bodies the
// runner needs: one player capsule, a pool of floor tiles, coin sensors
// and a hazard strip that follows the player.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeFloor
	collisionTypeCoin
	collisionTypeHazard
)

// Category bits for shape filters.
const (
	categoryPlayer uint = 1 << iota
	categoryFloor
	categoryCoin
	categoryHazard
)

// hazardWidth is wide enough that the strip covers every tile in play.
const hazardWidth = 400.0

// ContactKind identifies what the player touched or stopped touching.
type ContactKind int

const (
	TileEnter ContactKind = iota
	TileExit
	CoinEnter
	HazardEnter
)

// String returns the name of the contact kind.
func (k ContactKind) String() string {
	switch k {
	case TileEnter:
		return "TileEnter"
	case TileExit:
		return "TileExit"
	case CoinEnter:
		return "CoinEnter"
	case HazardEnter:
		return "HazardEnter"
	default:
		return "Unknown"
	}
}

// Contact is a player contact event recorded during Step.
// ID is the tile slot for tile and coin contacts.
type Contact struct {
	Kind ContactKind
	ID   int
}

// World is a Chipmunk space holding the runner's bodies.
// It is not safe for concurrent use.
type World struct {
	space *cp.Space

	player      *cp.Body
	playerShape *cp.Shape
	scale       float64
	frozen      bool

	tiles      map[int]*cp.Body
	shapeTile  map[*cp.Shape]int
	coins      map[int]*cp.Shape
	shapeCoin  map[*cp.Shape]int
	hazard     *cp.Body
	floorQuery cp.ShapeFilter

	contacts []Contact
}

// New creates a world with the player resting at start.
func New(cfg config.RunnerConfig, start core.Vec2) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: -cfg.Physics.Gravity})
	if cfg.Physics.Iterations > 0 {
		space.Iterations = uint(cfg.Physics.Iterations)
	}

	w := &World{
		space:      space,
		scale:      1,
		tiles:      make(map[int]*cp.Body),
		shapeTile:  make(map[*cp.Shape]int),
		coins:      make(map[int]*cp.Shape),
		shapeCoin:  make(map[*cp.Shape]int),
		floorQuery: cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: categoryFloor},
	}

	// Infinite moment keeps the capsule upright.
	body := cp.NewBody(cfg.Player.Mass, math.Inf(1))
	body.SetPosition(vec(start))
	body.SetVelocityUpdateFunc(func(b *cp.Body, g cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(b, g.Mult(w.scale), damping, dt)
	})
	shape := cp.NewCircle(body, cfg.Player.Radius, cp.Vector{})
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryPlayer, Mask: cp.ALL_CATEGORIES})
	space.AddBody(body)
	space.AddShape(shape)
	w.player = body
	w.playerShape = shape

	hazard := cp.NewKinematicBody()
	hazard.SetPosition(cp.Vector{X: start.X, Y: cfg.Bounds.PitY})
	hazardShape := cp.NewBox(hazard, hazardWidth, 1, 0)
	hazardShape.SetSensor(true)
	hazardShape.SetCollisionType(collisionTypeHazard)
	hazardShape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryHazard, Mask: cp.ALL_CATEGORIES})
	space.AddBody(hazard)
	space.AddShape(hazardShape)
	w.hazard = hazard

	w.setupHandlers()
	return w
}

func (w *World) setupHandlers() {
	floor := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeFloor)
	floor.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if id, ok := w.tileOf(arb); ok {
			w.contacts = append(w.contacts, Contact{Kind: TileEnter, ID: id})
		}
		return true
	}
	floor.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if id, ok := w.tileOf(arb); ok {
			w.contacts = append(w.contacts, Contact{Kind: TileExit, ID: id})
		}
	}

	coin := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeCoin)
	coin.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		a, b := arb.Shapes()
		id, ok := w.shapeCoin[a]
		if !ok {
			id, ok = w.shapeCoin[b]
		}
		if ok {
			w.contacts = append(w.contacts, Contact{Kind: CoinEnter, ID: id})
		}
		return false
	}

	hazard := w.space.NewCollisionHandler(collisionTypePlayer, collisionTypeHazard)
	hazard.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		w.contacts = append(w.contacts, Contact{Kind: HazardEnter, ID: -1})
		return false
	}
}

func (w *World) tileOf(arb *cp.Arbiter) (int, bool) {
	a, b := arb.Shapes()
	if id, ok := w.shapeTile[a]; ok {
		return id, true
	}
	id, ok := w.shapeTile[b]
	return id, ok
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// Drain returns the contacts recorded since the last call, oldest first.
func (w *World) Drain() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

// AddTile creates a floor tile with the given slot id.
func (w *World) AddTile(id int, center core.Vec2, width, height float64) {
	body := cp.NewKinematicBody()
	body.SetPosition(vec(center))
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeFloor)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryFloor, Mask: cp.ALL_CATEGORIES})
	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.tiles[id] = body
	w.shapeTile[shape] = id
}

// MoveTile relocates a tile. Unknown ids are ignored.
func (w *World) MoveTile(id int, center core.Vec2) {
	if body, ok := w.tiles[id]; ok {
		body.SetPosition(vec(center))
	}
}

// PlaceCoin puts a coin sensor for tile id at pos, replacing any
// coin the tile already had.
func (w *World) PlaceCoin(id int, pos core.Vec2, radius float64) {
	w.RemoveCoin(id)
	shape := cp.NewCircle(w.space.StaticBody, radius, vec(pos))
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeCoin)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: categoryCoin, Mask: categoryPlayer})
	w.space.AddShape(shape)
	w.coins[id] = shape
	w.shapeCoin[shape] = id
}

// RemoveCoin removes the coin of tile id, if any.
// It must not be called from inside Step.
func (w *World) RemoveCoin(id int) {
	shape, ok := w.coins[id]
	if !ok {
		return
	}
	w.space.RemoveShape(shape)
	delete(w.coins, id)
	delete(w.shapeCoin, shape)
}

// HasCoin reports whether tile id currently has a coin sensor.
func (w *World) HasCoin(id int) bool {
	_, ok := w.coins[id]
	return ok
}

// MoveHazard centers the hazard strip under x.
func (w *World) MoveHazard(x float64) {
	p := w.hazard.Position()
	w.hazard.SetPosition(cp.Vector{X: x, Y: p.Y})
}

// PlayerPosition returns the capsule center.
func (w *World) PlayerPosition() core.Vec2 {
	p := w.player.Position()
	return core.Vec2{X: p.X, Y: p.Y}
}

// PlayerVelocity returns the capsule velocity.
func (w *World) PlayerVelocity() core.Vec2 {
	v := w.player.Velocity()
	return core.Vec2{X: v.X, Y: v.Y}
}

// SetPlayerVelocity overwrites the capsule velocity. Ignored once frozen.
func (w *World) SetPlayerVelocity(v core.Vec2) {
	if w.frozen {
		return
	}
	w.player.SetVelocityVector(vec(v))
}

// ApplyPlayerImpulse applies an impulse at the capsule center.
func (w *World) ApplyPlayerImpulse(impulse core.Vec2) {
	if w.frozen {
		return
	}
	w.player.ApplyImpulseAtLocalPoint(vec(impulse), cp.Vector{})
}

// SetGravityScale multiplies the gravity applied to the player.
func (w *World) SetGravityScale(scale float64) {
	if w.frozen {
		return
	}
	w.scale = scale
}

// GravityScale returns the current player gravity multiplier.
func (w *World) GravityScale() float64 {
	return w.scale
}

// FreezePlayer zeroes the capsule velocity and stops gravity from acting
// on it. A frozen player stays frozen for the lifetime of the world.
func (w *World) FreezePlayer() {
	w.player.SetVelocityVector(cp.Vector{})
	w.scale = 0
	w.frozen = true
}

// ProbeGround casts a short ray down from below the capsule center and
// reports whether it hits a floor tile.
func (w *World) ProbeGround(offset, distance float64) bool {
	p := w.player.Position()
	start := cp.Vector{X: p.X, Y: p.Y - offset}
	end := cp.Vector{X: p.X, Y: p.Y - offset - distance}
	info := w.space.SegmentQueryFirst(start, end, 0, w.floorQuery)
	return info.Shape != nil
}

func vec(v core.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}
