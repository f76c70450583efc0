package shooter

import (
	"fmt"

	"github.com/vovakirdan/arcade-shooter/internal/core"
)

// Text sizes in world pixels.
const (
	titleSize  = 64
	bodySize   = 22
	hintSize   = 18
	hudSize    = 24
	bannerSize = 48

	// hudInset is the horizontal distance of the HUD labels from the walls.
	hudInset = 50
	hudY     = 20
)

// Render draws the current phase onto the canvas.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorBackground)

	switch g.phase {
	case core.PhaseMenu:
		g.renderMenu(dst)
	case core.PhasePlaying:
		g.renderPlaying(dst)
	case core.PhaseGameOver:
		g.renderGameOver(dst)
	}
}

func (g *Game) renderMenu(dst core.Canvas) {
	w, h := g.runtime.WorldW, g.runtime.WorldH
	dst.Text("GRAPHICAL SHOOTER", titleSize, w/2, h/4, core.ColorText)
	dst.Text("Arrow keys to move, Space to shoot", bodySize, w/2, h/2, core.ColorText)
	dst.Text("Press Enter or Space to begin", hintSize, w/2, h*0.75, core.ColorDim)
}

func (g *Game) renderPlaying(dst core.Canvas) {
	w, h := g.runtime.WorldW, g.runtime.WorldH

	for _, p := range g.powerUps {
		c := p.Rect.Center()
		dst.FillCircle(c.X, c.Y, PowerUpSize/2, core.ColorPowerUp)
	}
	for _, e := range g.enemies {
		dst.FillRect(e.Rect, core.ColorEnemy)
	}
	for _, b := range g.bullets {
		dst.FillRect(b.Rect, core.ColorBullet)
	}
	if g.player != nil {
		color := core.ColorPlayer
		if g.player.PoweredUp() {
			color = core.ColorPlayerBoost
		}
		dst.FillPolygon(g.player.Hull(), color)
	}
	for _, x := range g.explosions {
		dst.FillCircle(x.Center.X, x.Center.Y, x.Radius(), core.ColorExplosion)
	}

	dst.Text(fmt.Sprintf("Score: %d", g.score), hudSize, hudInset, hudY, core.ColorText)
	dst.Text(fmt.Sprintf("Lives: %d", max(g.lives, 0)), hudSize, w-hudInset, hudY, core.ColorText)
	if secs := g.PowerUpSeconds(); secs > 0 {
		dst.Text(fmt.Sprintf("Triple %.1fs", secs), hudSize, w/2, hudY, core.ColorPowerUp)
	}

	if g.paused {
		dst.Text("PAUSED", bannerSize, w/2, h/2, core.ColorText)
		dst.Text("Press P to resume", hintSize, w/2, h/2+bannerSize, core.ColorDim)
	}
}

func (g *Game) renderGameOver(dst core.Canvas) {
	w, h := g.runtime.WorldW, g.runtime.WorldH
	dst.Text("GAME OVER", titleSize, w/2, h/4, core.ColorEnemy)
	dst.Text(fmt.Sprintf("Final score: %d", g.score), bodySize, w/2, h/2, core.ColorText)
	dst.Text("Press Enter to return to the menu", hintSize, w/2, h*0.75, core.ColorDim)
}
