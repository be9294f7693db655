package physics

import (
	"testing"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

const dt = 1.0 / 60.0

func stepN(w *World, n int) []Contact {
	var all []Contact
	for i := 0; i < n; i++ {
		w.Step(dt)
		all = append(all, w.Drain()...)
	}
	return all
}

func hasContact(cs []Contact, kind ContactKind, id int) bool {
	for _, c := range cs {
		if c.Kind == kind && c.ID == id {
			return true
		}
	}
	return false
}

func TestPlayerLandsOnTile(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, 0))
	w.AddTile(3, core.V(0, -2.5), 5, 1)

	if w.ProbeGround(cfg.Player.ProbeOffset, cfg.Player.ProbeDistance) {
		t.Fatal("probe should miss while the player is above the tile")
	}

	contacts := stepN(w, 60)
	if !hasContact(contacts, TileEnter, 3) {
		t.Fatalf("expected TileEnter for tile 3, got %v", contacts)
	}
	if !w.ProbeGround(cfg.Player.ProbeOffset, cfg.Player.ProbeDistance) {
		t.Error("probe should hit the tile after landing")
	}

	pos := w.PlayerPosition()
	if pos.Y < -1.7 || pos.Y > -1.4 {
		t.Errorf("player rests at y=%v, expected about -1.5", pos.Y)
	}
}

func TestTileExitOnJump(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, -1.45))
	w.AddTile(0, core.V(0, -2.5), 5, 1)
	stepN(w, 30)

	w.SetPlayerVelocity(core.V(0, 0))
	w.ApplyPlayerImpulse(core.V(0, cfg.Player.JumpImpulse))
	contacts := stepN(w, 10)

	if !hasContact(contacts, TileExit, 0) {
		t.Errorf("expected TileExit after jumping, got %v", contacts)
	}
	if w.PlayerVelocity().Y <= 0 {
		t.Errorf("player should be rising, vy=%v", w.PlayerVelocity().Y)
	}
}

func TestCoinContact(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, 0))
	w.PlaceCoin(5, core.V(0, -0.6), cfg.Coins.Radius)

	if !w.HasCoin(5) {
		t.Fatal("HasCoin should report the placed coin")
	}

	contacts := stepN(w, 20)
	if !hasContact(contacts, CoinEnter, 5) {
		t.Fatalf("expected CoinEnter for tile 5, got %v", contacts)
	}

	w.RemoveCoin(5)
	if w.HasCoin(5) {
		t.Error("RemoveCoin should drop the coin")
	}
	w.RemoveCoin(5) // removing twice is a no-op
}

func TestCoinIsNotSolid(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, 0))
	w.PlaceCoin(1, core.V(0, -1), cfg.Coins.Radius)

	stepN(w, 40)
	if w.PlayerPosition().Y > -2 {
		t.Errorf("player should fall through a coin, y=%v", w.PlayerPosition().Y)
	}
}

func TestHazardContact(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, 0))
	w.MoveHazard(0)

	contacts := stepN(w, 120)
	if !hasContact(contacts, HazardEnter, -1) {
		t.Fatalf("expected HazardEnter after falling, got %v", contacts)
	}
}

func TestGravityScale(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	normal := New(cfg, core.V(0, 0))
	stepN(normal, 10)

	heavy := New(cfg, core.V(0, 0))
	heavy.SetGravityScale(4)
	stepN(heavy, 10)

	if heavy.GravityScale() != 4 {
		t.Errorf("GravityScale() = %v, expected 4", heavy.GravityScale())
	}
	if heavy.PlayerVelocity().Y >= normal.PlayerVelocity().Y {
		t.Errorf("scaled gravity should fall faster: %v vs %v",
			heavy.PlayerVelocity().Y, normal.PlayerVelocity().Y)
	}
}

func TestFreezePlayer(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, 0))
	w.SetPlayerVelocity(core.V(5, 3))
	w.FreezePlayer()

	before := w.PlayerPosition()
	stepN(w, 30)
	after := w.PlayerPosition()

	if before != after {
		t.Errorf("frozen player moved from %v to %v", before, after)
	}

	// Further writes are ignored
	w.SetPlayerVelocity(core.V(5, 0))
	w.ApplyPlayerImpulse(core.V(0, 9))
	w.SetGravityScale(1)
	if w.PlayerVelocity() != (core.Vec2{}) || w.GravityScale() != 0 {
		t.Error("frozen player should ignore velocity, impulse and gravity changes")
	}
}

func TestMoveTile(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(20, -1.4))
	w.AddTile(0, core.V(0, -2.5), 5, 1)
	w.MoveTile(0, core.V(20, -2.5))
	w.MoveTile(42, core.V(0, 0)) // unknown id

	stepN(w, 30)
	if !w.ProbeGround(cfg.Player.ProbeOffset, cfg.Player.ProbeDistance) {
		t.Error("player should stand on the moved tile")
	}
}

func TestDrainClears(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := New(cfg, core.V(0, -1.45))
	w.AddTile(0, core.V(0, -2.5), 5, 1)
	stepN(w, 5)

	if len(w.Drain()) != 0 {
		t.Error("Drain should return nothing after being drained")
	}
}

func TestContactKindString(t *testing.T) {
	if TileEnter.String() != "TileEnter" || HazardEnter.String() != "HazardEnter" {
		t.Error("unexpected ContactKind names")
	}
	if ContactKind(9).String() != "Unknown" {
		t.Error("unknown kinds should stringify as Unknown")
	}
}
