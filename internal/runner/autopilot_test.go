package runner

import (
	"testing"

	"github.com/vovakirdan/chromadash/internal/config"
	"github.com/vovakirdan/chromadash/internal/core"
)

func pilotSnapshot(x float64, state PlayerState, color Color, tiles ...TileView) Snapshot {
	return Snapshot{
		Player: PlayerView{
			Pos:      core.V(x, -1.5),
			Vel:      core.V(5, 0),
			Radius:   0.5,
			Color:    color,
			State:    state,
			MaxJumps: 2,
			Alive:    true,
		},
		Tiles:  tiles,
		Params: config.Params{Speed: 5, DescentGravity: 4, CoinRate: 0.7},
	}
}

func pilotTile(x float64, c Color) TileView {
	return TileView{Center: core.V(x, -2.5), W: 5, H: 1, Color: c, Active: true}
}

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name       string
		snap       Snapshot
		wantJump   bool
		wantToggle bool
	}{
		{
			name:       "toggles to match current tile",
			snap:       pilotSnapshot(0, Grounded, Red, pilotTile(0, Blue)),
			wantToggle: true,
		},
		{
			name:     "jumps at the edge",
			snap:     pilotSnapshot(2.3, Grounded, Red, pilotTile(0, Red)),
			wantJump: true,
		},
		{
			name: "keeps running mid tile",
			snap: pilotSnapshot(0, Grounded, Red, pilotTile(0, Red), pilotTile(8, Red)),
		},
		{
			name:       "matches the tile ahead while airborne",
			snap:       pilotSnapshot(3, Airborne, Red, pilotTile(0, Red), pilotTile(6, Blue)),
			wantToggle: true,
		},
	}

	pilot := DefaultAutopilot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := pilot.Decide(tt.snap)
			if got := in.Has(core.ActionJump); got != tt.wantJump {
				t.Errorf("jump = %v, expected %v", got, tt.wantJump)
			}
			if got := in.Has(core.ActionToggleColor); got != tt.wantToggle {
				t.Errorf("toggle = %v, expected %v", got, tt.wantToggle)
			}
		})
	}
}

func TestAutopilotAirJumpOverGap(t *testing.T) {
	s := pilotSnapshot(10, Airborne, Red, pilotTile(0, Red))
	s.Player.Vel = core.V(5, -2)
	s.Player.JumpCount = 1

	if !DefaultAutopilot().Decide(s).Has(core.ActionJump) {
		t.Error("expected an air jump while falling over a gap")
	}

	s.Player.JumpCount = 2
	if DefaultAutopilot().Decide(s).Has(core.ActionJump) {
		t.Error("no jumps left, expected no jump")
	}
}

func TestAutopilotIdleWhenOver(t *testing.T) {
	s := pilotSnapshot(2.3, Grounded, Red, pilotTile(0, Blue))
	s.GameOver = true

	in := DefaultAutopilot().Decide(s)
	if in.Has(core.ActionJump) || in.Has(core.ActionToggleColor) {
		t.Error("autopilot should not act after game over")
	}
}

func TestAutopilotIdleAtStart(t *testing.T) {
	g, _ := newTestGame(t, 7)
	in := g.AutopilotInput()
	if in.Has(core.ActionJump) || in.Has(core.ActionToggleColor) {
		t.Errorf("autopilot acted on the matching start tile: %+v", in.Actions)
	}
}
