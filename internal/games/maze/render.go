package maze

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

const (
	cellW     = 2 // screen columns per tile
	hudHeight = 3 // HUD, separator, prompt
)

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()

	renderHUD(dst, snap)

	gw, gh := snap.Grid.Width()*cellW, snap.Grid.Height()
	if dst.Width() < gw || dst.Height() < hudHeight+gh+2 {
		dst.DrawPanel([]string{"Window too small", fmt.Sprintf("Need %dx%d", gw, hudHeight+gh+2)}, core.ColorBad)
		return
	}
	offX := (dst.Width() - gw) / 2
	offY := hudHeight

	renderGrid(dst, snap.Grid, offX, offY)
	renderItems(dst, snap, offX, offY)
	renderLegend(dst, snap, offY+gh)

	switch {
	case snap.Phase == PhaseComplete:
		dst.DrawPanel([]string{"You Win!", fmt.Sprintf("Final Score: %d", snap.Score), "Press R to play again"}, core.ColorGood)
	case snap.Phase == PhaseGameOver:
		dst.DrawPanel([]string{"Game Over", fmt.Sprintf("Final Score: %d", snap.Score), "Restarting..."}, core.ColorBad)
	case snap.Paused:
		dst.DrawPanel([]string{"Paused", "Press P to continue"}, core.ColorHUD)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	hearts := strings.Repeat("♥", snap.Lives) + strings.Repeat("♡", max(0, snap.MaxLives-snap.Lives))
	hud := fmt.Sprintf(" Level %d/%d  Score: %d  Lives: %s", snap.Level, snap.LevelCount, snap.Score, hearts)
	if snap.HasKey {
		hud += "  [key]"
	}
	dst.DrawTextColor(0, 0, hud, core.ColorHUD)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorMuted)
	}
	dst.DrawTextCentered(2, snap.Prompt, core.ColorPrompt)
}

func renderGrid(dst *core.Screen, grid *engine.Grid, offX, offY int) {
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			t, _ := grid.TileAt(col, row)
			if !grid.Solid().Has(t) {
				continue
			}
			x := offX + col*cellW
			dst.SetColor(x, offY+row, '█', core.ColorWall)
			dst.SetColor(x+1, offY+row, '█', core.ColorWall)
		}
	}
}

func drawAt(dst *core.Screen, p core.Vec, offX, offY int, r rune, c core.Color) {
	col, row := p.Cell()
	dst.SetColor(offX+col*cellW, offY+row, r, c)
}

func renderItems(dst *core.Screen, snap Snapshot, offX, offY int) {
	for _, gem := range snap.Gems {
		if gem.Visible {
			drawAt(dst, gem.Pos, offX, offY, '◆', core.ColorGem)
		}
	}
	if snap.Lock.Visible && !snap.Lock.Collected {
		drawAt(dst, snap.Lock.Pos, offX, offY, '▣', core.ColorKey)
	}
	if snap.Key.Visible {
		drawAt(dst, snap.Key.Pos, offX, offY, 'k', core.ColorKey)
	}
	for i, a := range snap.Answers {
		if !a.Collected {
			drawAt(dst, a.Pos, offX, offY, rune('A'+i), core.ColorAnswer)
		}
	}

	enemyRune, enemyColor := '&', core.ColorEnemy
	if snap.Frozen {
		enemyRune, enemyColor = '*', core.ColorFrozen
	}
	for _, e := range snap.Enemies {
		drawAt(dst, e, offX, offY, enemyRune, enemyColor)
	}

	if snap.PlayerVisible {
		drawAt(dst, snap.Player, offX, offY, '@', core.ColorPlayer)
	}
}

func renderLegend(dst *core.Screen, snap Snapshot, y int) {
	x := 1
	for i, a := range snap.Answers {
		label := fmt.Sprintf("%c %s", 'A'+i, a.Text)
		c := core.ColorAnswer
		if a.Collected {
			c = core.ColorMuted
		}
		dst.DrawTextColor(x, y, label, c)
		x += len([]rune(label)) + 3
	}

	status := snap.Popup
	if status == "" && snap.Frozen {
		n := int(snap.FreezeLeft*10 + 0.999)
		status = "Frozen " + strings.Repeat("▮", n)
	}
	dst.DrawTextCentered(y+1, status, core.ColorGood)
}
