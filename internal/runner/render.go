package runner

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/chromadash/internal/core"
)

// Visual characters for rendering
const (
	TileChar       = '█'
	CoinChar       = 'o'
	PlayerChar     = '●'
	DescendChar    = '▼'
	DeadChar       = 'x'
	PitChar        = '~'
	viewTop        = 6.0 // Highest world y kept on screen
	playerColumnAt = 4   // Player sits at width/playerColumnAt
)

// camera maps world units to screen cells with the player fixed at a
// column and the vertical band fitted to the screen height.
type camera struct {
	originX float64
	col     int
	sx, sy  float64
}

func newCamera(dst *core.Screen, playerX, bottom float64) camera {
	rows := float64(dst.Height() - 2)
	sy := math.Max(rows/(viewTop-bottom), 0.5)
	return camera{
		originX: playerX,
		col:     dst.Width() / playerColumnAt,
		sx:      sy * 2, // Terminal cells are about twice as tall as wide
		sy:      sy,
	}
}

func (c camera) x(wx float64) int {
	return c.col + int(math.Round((wx-c.originX)*c.sx))
}

func (c camera) y(wy float64) int {
	return 1 + int(math.Round((viewTop-wy)*c.sy))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()
	cam := newCamera(dst, s.Player.Pos.X, s.PitY-1)

	// Hazard strip
	dst.DrawHLine(0, cam.y(s.PitY), dst.Width(), PitChar, core.ColorGray)

	for _, t := range s.Tiles {
		if !t.Active {
			continue
		}
		left := cam.x(t.Center.X - t.W/2)
		right := cam.x(t.Center.X + t.W/2)
		top := cam.y(t.Top())
		bottom := core.Max(cam.y(t.Center.Y-t.H/2), top+1)
		dst.DrawRect(core.NewRect(left, top, right-left, bottom-top), TileChar, tileColor(t.Color))
		if t.HasCoin {
			dst.SetColor(cam.x(t.Coin.X), cam.y(t.Coin.Y), CoinChar, core.ColorYellow)
		}
	}

	g.drawPlayer(dst, cam, s.Player)
	g.drawHUD(dst, s)

	if s.Paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.GameOver {
		title := "GAME OVER"
		if s.NewBest {
			title = "NEW HIGH SCORE"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  |  Press R to restart", s.Score))
	}
}

func (g *Game) drawPlayer(dst *core.Screen, cam camera, p PlayerView) {
	ch := PlayerChar
	switch p.State {
	case Descending:
		ch = DescendChar
	case Dead:
		ch = DeadChar
	}
	dst.SetColor(cam.x(p.Pos.X), cam.y(p.Pos.Y), ch, playerColor(p.Color))
}

func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", s.Score, s.HighScore))

	color := strings.ToUpper(s.Player.Color.String())
	jumps := s.Player.MaxJumps - s.Player.JumpCount
	right := fmt.Sprintf(" Spd: %.1f  Jumps: %d  [%s] ", s.Params.Speed, jumps, color)
	x := dst.Width() - len(right) - 2
	dst.DrawText(x, 0, right)
	// Tint the color tag so it reads at a glance.
	dst.DrawTextColor(x+len(right)-len(color)-2, 0, color, playerColor(s.Player.Color))
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
