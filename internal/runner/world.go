package runner

import (
	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
	"github.com/vovakirdan/chromadash/internal/physics"
)

// World is the rigid-body collaborator the simulation drives.
// *physics.World implements it; tests may substitute a fake.
type World interface {
	Step(dt float64)
	Drain() []physics.Contact

	AddTile(id int, center core.Vec2, width, height float64)
	MoveTile(id int, center core.Vec2)
	PlaceCoin(id int, pos core.Vec2, radius float64)
	RemoveCoin(id int)
	MoveHazard(x float64)

	PlayerPosition() core.Vec2
	PlayerVelocity() core.Vec2
	SetPlayerVelocity(v core.Vec2)
	ApplyPlayerImpulse(impulse core.Vec2)
	SetGravityScale(scale float64)
	GravityScale() float64
	FreezePlayer()
	ProbeGround(offset, distance float64) bool
}

// WorldFactory builds a world for a run with the player at start.
type WorldFactory func(cfg config.RunnerConfig, start core.Vec2) World

// NewPhysicsWorld is the default WorldFactory backed by Chipmunk.
func NewPhysicsWorld(cfg config.RunnerConfig, start core.Vec2) World {
	return physics.New(cfg, start)
}
