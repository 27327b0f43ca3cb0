package game

import (
	"fmt"

	"github.com/ainchor-labs/LevelForge/internal/config"
	"github.com/ainchor-labs/LevelForge/internal/core"
)

// hudRows is the number of screen rows reserved at the top for the HUD.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderTargets(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// cellX maps a world x coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, x float64) int {
	return int(x * float64(dst.Width()) / g.cfg.World.Width)
}

// cellY maps a world y coordinate to a screen row. World Y points up;
// the play area sits below the HUD.
func (g *Game) cellY(dst *core.Screen, y float64) int {
	areaH := float64(dst.Height() - hudRows - 1)
	return dst.Height() - 1 - int(y*areaH/g.cfg.World.Height)
}

// renderHUD draws the score, attempts and wave indicators.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.round.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("%s: %d", g.attemptLabel, g.round.Attempts()))

	var right string
	if g.cfg.Gameplay.ClearPolicy == config.ClearPolicyRespawn {
		right = fmt.Sprintf("Wave: %d", g.wave)
	} else {
		right = fmt.Sprintf("Left: %d", g.reg.LiveCount())
	}
	dst.DrawText(dst.Width()-len(right)-1, 0, right)

	// Separator line
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, SeparatorH)
	}
}

// renderTargets draws all live targets colored by tier tag.
func (g *Game) renderTargets(dst *core.Screen) {
	for _, t := range g.reg.All() {
		if !t.Alive {
			continue
		}
		color, ok := tagColors[t.Tag]
		if !ok {
			color = core.ColorCyan
		}

		if g.cfg.Targets.Layout == config.LayoutScatter {
			dst.SetColored(g.cellX(dst, t.Pos.X), g.cellY(dst, t.Pos.Y), g.targetGlyph, color)
			continue
		}

		// Grid bricks cover their full box extent.
		x0 := g.cellX(dst, t.Pos.X-g.cfg.Targets.HalfW)
		x1 := g.cellX(dst, t.Pos.X+g.cfg.Targets.HalfW)
		y0 := g.cellY(dst, t.Pos.Y+g.cfg.Targets.HalfH)
		y1 := g.cellY(dst, t.Pos.Y-g.cfg.Targets.HalfH)
		for y := y0; y <= y1; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y, g.targetGlyph, color)
			}
		}
	}
}

// renderPaddle draws the paddle over its full extent.
func (g *Game) renderPaddle(dst *core.Screen) {
	pos := g.paddle.Position()
	halfW, halfH := g.paddle.HalfExtents()

	x0 := g.cellX(dst, pos.X-halfW)
	x1 := g.cellX(dst, pos.X+halfW)
	y0 := g.cellY(dst, pos.Y+halfH)
	y1 := g.cellY(dst, pos.Y-halfH)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 < y0 {
		y1 = y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, g.paddleGlyph, core.ColorBrightCyan)
		}
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	pos := g.ball.Position()
	dst.SetColored(g.cellX(dst, pos.X), g.cellY(dst, pos.Y), BallChar, core.ColorBrightYellow)
}

// renderOverlay draws phase messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
		return
	}

	switch g.round.Phase() {
	case PhaseServe:
		if g.round.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.round.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)
		if g.respawnErr != nil {
			dst.DrawTextCentered(dst.Height()-1, fmt.Sprintf("Error: %v", g.respawnErr))
		}

	case PhaseWon:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.round.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
