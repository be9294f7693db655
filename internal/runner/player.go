package runner

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

// PlayerState is the movement state of the player.
type PlayerState int

const (
	Grounded PlayerState = iota
	Airborne
	Descending
	Dead
)

// String returns the state name.
func (s PlayerState) String() string {
	switch s {
	case Grounded:
		return "Grounded"
	case Airborne:
		return "Airborne"
	case Descending:
		return "Descending"
	case Dead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// groundedSlack tolerates the tiny upward velocity the contact solver
// can leave on a resting body.
const groundedSlack = 1e-3

// Player is the input-driven state machine on top of the physics body.
type Player struct {
	cfg     config.RunnerPlayer
	bounds  config.RunnerBounds
	world   World
	session *Session
	log     *log.Logger

	Pos       core.Vec2
	Vel       core.Vec2
	Color     Color
	JumpCount int
	State     PlayerState
	Alive     bool
	Cause     string // Why the player died, empty while alive

	contacts map[int]struct{} // Tiles currently in contact, by tile ID
}

// NewPlayer creates a grounded, living player.
func NewPlayer(cfg config.RunnerPlayer, bounds config.RunnerBounds, world World, session *Session, logger *log.Logger) *Player {
	color, _ := ParseColor(cfg.StartColor)
	p := &Player{
		cfg:      cfg,
		bounds:   bounds,
		world:    world,
		session:  session,
		log:      logger,
		Color:    color,
		State:    Grounded,
		Alive:    true,
		contacts: make(map[int]struct{}),
	}
	p.sync()
	return p
}

// OnTileEnter handles the start of a contact with a floor tile.
// Landing on the other color is fatal.
func (p *Player) OnTileEnter(t *FloorTile) {
	if p.State == Dead || t == nil {
		return
	}
	p.contacts[t.ID] = struct{}{}
	if t.Color != p.Color {
		p.Kill("color mismatch")
	}
}

// OnTileExit handles the end of a contact with tile id. The player
// stays touching while any other tile is still in contact.
func (p *Player) OnTileExit(id int) {
	delete(p.contacts, id)
}

// Touching reports whether any floor tile is in contact.
func (p *Player) Touching() bool {
	return len(p.contacts) > 0
}

// OnHazard handles contact with the hazard strip.
func (p *Player) OnHazard() {
	p.Kill("hazard")
}

// Update runs one tick of the state machine after the physics step.
func (p *Player) Update(in core.InputFrame, params config.Params) {
	if p.State == Dead {
		return
	}
	p.sync()

	if p.Pos.Y < p.bounds.MinY || p.Pos.Y > p.bounds.MaxY {
		p.Kill("out of bounds")
		return
	}

	probe := p.world.ProbeGround(p.cfg.ProbeOffset, p.cfg.ProbeDistance)
	if (probe || p.Touching()) && p.Vel.Y <= groundedSlack {
		p.State = Grounded
		p.JumpCount = 0
		p.world.SetGravityScale(1)
	} else if p.State == Grounded {
		p.State = Airborne
	}

	cancelled := false
	if in.Has(core.ActionJump) {
		cancelled = p.jump()
	}

	// A cancelled dive re-latches on the next tick at the earliest.
	if !cancelled && in.IsHeld(core.ActionDescend) && p.State != Grounded && p.State != Descending {
		p.State = Descending
		p.world.ApplyPlayerImpulse(core.V(0, -p.cfg.DescendImpulse))
	}
	if p.State == Descending {
		p.world.SetGravityScale(params.DescentGravity)
	}

	if in.Has(core.ActionToggleColor) {
		p.Color = p.Color.Other()
	}

	v := p.world.PlayerVelocity()
	p.world.SetPlayerVelocity(core.V(params.Speed, v.Y))
	p.sync()
}

// jump applies a jump if one is left. A press while descending only
// cancels the dive and reports true.
func (p *Player) jump() bool {
	if p.State == Descending {
		p.State = Airborne
		p.world.SetGravityScale(1)
		return true
	}
	if p.JumpCount >= p.cfg.MaxJumps {
		return false
	}
	v := p.world.PlayerVelocity()
	p.world.SetPlayerVelocity(core.V(v.X, 0))
	p.world.ApplyPlayerImpulse(core.V(0, p.cfg.JumpImpulse))
	p.JumpCount++
	p.State = Airborne
	clear(p.contacts)
	return false
}

// Kill moves the player to Dead and ends the run. Repeated calls are
// ignored.
func (p *Player) Kill(cause string) {
	if p.State == Dead {
		return
	}
	p.State = Dead
	p.Alive = false
	p.Cause = cause
	p.world.FreezePlayer()
	p.sync()
	if p.log != nil {
		p.log.Debug("player died", "cause", cause, "x", p.Pos.X, "y", p.Pos.Y)
	}
	p.session.TriggerGameOver()
}

func (p *Player) sync() {
	p.Pos = p.world.PlayerPosition()
	p.Vel = p.world.PlayerVelocity()
}
