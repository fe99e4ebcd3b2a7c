package survival

import (
	"fmt"

	"github.com/undeadbits/outbreak/internal/core"
	"github.com/undeadbits/outbreak/internal/interact"
)

// promptBar is the HUD's interaction prompt line. It implements
// interact.PromptSink.
type promptBar struct {
	text    string
	visible bool
}

// ShowPrompt displays text on the prompt line.
func (b *promptBar) ShowPrompt(text string) {
	b.text = text
	b.visible = true
}

// HidePrompt clears the prompt line.
func (b *promptBar) HidePrompt() {
	b.text = ""
	b.visible = false
}

// PromptShown reports whether a prompt is currently displayed.
func (b *promptBar) PromptShown() bool {
	return b.visible
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderEntities(dst)
	g.renderZombies(dst)
	g.renderPlayer(dst)
	g.renderMessages(dst)
	g.renderPrompt(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "You survived the outbreak!", fmt.Sprintf("Final score: %d", g.ledger.Earned()))
	case g.gameOver:
		g.renderOverlay(dst, "You were overrun", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hp, maxHP := g.player.Health()
	ammo, maxAmmo := g.player.Ammo()

	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Outbreak (Endless) — HP: %d/%d  Ammo: %d/%d  Points: %d  Wave: %d  Kills: %d",
			hp, maxHP, ammo, maxAmmo, g.ledger.Balance(), g.wave, g.kills)
	} else {
		hud = fmt.Sprintf(" Outbreak — HP: %d/%d  Ammo: %d/%d  Points: %d  Wave: %d/%d  Kills: %d",
			hp, maxHP, ammo, maxAmmo, g.ledger.Balance(), g.wave, g.cfg.Waves.FinalWave, g.kills)
	}

	color := core.ColorDefault
	if hp*4 <= maxHP {
		color = core.ColorRed
	}
	dst.DrawTextColored(0, 0, hud, color)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws walls.
func (g *Game) renderMap(dst *core.Screen) {
	for y := 0; y < g.mapHeight; y++ {
		for x := 0; x < g.mapWidth; x++ {
			if g.world.Wall(x, y) {
				dst.SetColored(g.mapOffsetX+x, g.mapOffsetY+y, '#', core.ColorGray)
			}
		}
	}
}

// renderEntities draws pickups and the chest.
func (g *Game) renderEntities(dst *core.Screen) {
	g.world.EachEntity(func(e *Entity) {
		x, y := e.Position().Cell()
		sx, sy := g.mapOffsetX+x, g.mapOffsetY+y

		switch obj := e.Object().(type) {
		case *interact.AmmoPickup:
			dst.SetColored(sx, sy, 'a', core.ColorYellow)
		case *interact.HealPickup:
			dst.SetColored(sx, sy, '+', core.ColorBrightGreen)
		case *interact.Chest:
			if obj.IsOpen() {
				dst.SetColored(sx, sy, 'c', core.ColorOrange)
			} else {
				dst.SetColored(sx, sy, 'C', core.ColorOrange)
			}
		}
	})
}

// renderZombies draws the walkers.
func (g *Game) renderZombies(dst *core.Screen) {
	for _, z := range g.zombies {
		x, y := z.pos.Cell()
		dst.SetColored(g.mapOffsetX+x, g.mapOffsetY+y, 'z', core.ColorGreen)
	}
}

// renderPlayer draws the survivor.
func (g *Game) renderPlayer(dst *core.Screen) {
	x, y := g.player.Position().Cell()
	dst.SetColored(g.mapOffsetX+x, g.mapOffsetY+y, '@', core.ColorBrightWhite)
}

// renderMessages draws the HUD message log under the map.
func (g *Game) renderMessages(dst *core.Screen) {
	y := g.mapOffsetY + g.mapHeight
	for i, msg := range g.messages.Visible() {
		if y+i >= dst.Height() {
			break
		}
		dst.DrawTextColored(g.mapOffsetX, y+i, msg, core.ColorYellow)
	}
}

// renderPrompt draws the interaction prompt on the bottom line.
func (g *Game) renderPrompt(dst *core.Screen) {
	if !g.prompt.PromptShown() {
		return
	}
	dst.DrawTextColored(g.mapOffsetX, dst.Height()-1, "["+g.prompt.text+"]", core.ColorCyan)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if y == boxY || y == boxY+boxH-1 {
				dst.Set(x, y, '═')
			} else if x == boxX || x == boxX+boxW-1 {
				dst.Set(x, y, '║')
			} else {
				dst.Set(x, y, ' ')
			}
		}
	}

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
