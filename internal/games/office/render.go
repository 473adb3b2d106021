package office

import (
	"fmt"

	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

const (
	tileW     = 4
	tileH     = 2
	hudHeight = 2
	minWidth  = 40
)

type tileGlyph struct {
	r rune
	c core.Color
}

var glyphs = map[engine.Tile]tileGlyph{
	engine.TileWall:     {'█', core.ColorWall},
	engine.TileDesk:     {'▄', core.ColorFurniture},
	engine.TilePlant:    {'♣', core.ColorGood},
	engine.TileComputer: {'▣', core.ColorHUD},
	engine.TileVending:  {'▓', core.ColorFurniture},
}

// Render draws the office into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	snap := g.session.Snapshot()

	if snap.Phase == PhaseIntro {
		dst.DrawPanel([]string{
			"Office Hero",
			"The Soft Skills Sprint",
			"",
			fmt.Sprintf("Talk to all %d coworkers in %d seconds.", snap.NPCCount, snap.Seconds),
			"Press ← or → to start",
		}, core.ColorPrompt)
		return
	}

	worldH := snap.World.Height() * tileH
	if dst.Width() < minWidth || dst.Height() < hudHeight+worldH+2 {
		dst.DrawPanel([]string{"Window too small", fmt.Sprintf("Need %dx%d", minWidth, hudHeight+worldH+2)}, core.ColorBad)
		return
	}

	renderHUD(dst, snap)

	view := float64(dst.Width()) / tileW
	camCols := int(CameraX(snap.Player.X, view, float64(snap.World.Width())) * tileW)
	renderWorld(dst, snap.World, camCols)
	renderNPCs(dst, snap, camCols)
	renderPlayer(dst, snap, camCols)

	statusY := hudHeight + worldH
	if snap.Popup != "" {
		dst.DrawTextCentered(statusY, snap.Popup, core.ColorGood)
	}
	dst.DrawTextCentered(statusY+1, "←/→ walk   1-3 answer   P pause   Q quit", core.ColorMuted)

	switch {
	case snap.Dialogue != nil:
		renderDialogue(dst, snap.Dialogue)
	case snap.Phase == PhaseComplete:
		dst.DrawPanel([]string{
			"Time's up!",
			fmt.Sprintf("Trust Score: %d/%d", snap.Trust, snap.NPCCount),
			snap.Result,
			"",
			"Press R to play again",
		}, core.ColorGood)
	case snap.Paused:
		dst.DrawPanel([]string{"Paused", "Press P to continue"}, core.ColorHUD)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	timeColor := core.ColorHUD
	if snap.Seconds <= 10 {
		timeColor = core.ColorBad
	}
	dst.DrawTextColor(1, 0, fmt.Sprintf("Time: %ds", snap.Seconds), timeColor)
	dst.DrawTextCentered(0, fmt.Sprintf("Room %d/%d", snap.Room+1, len(rooms)), core.ColorMuted)
	trust := fmt.Sprintf("Trust: %d/%d", snap.Trust, snap.NPCCount)
	dst.DrawTextColor(dst.Width()-len(trust)-1, 0, trust, core.ColorGood)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColor(x, 1, '─', core.ColorMuted)
	}
}

func renderWorld(dst *core.Screen, world *engine.Grid, camCols int) {
	for row := 0; row < world.Height(); row++ {
		for col := 0; col < world.Width(); col++ {
			t, _ := world.TileAt(col, row)
			gl, ok := glyphs[t]
			if !ok {
				continue
			}
			sx := col*tileW - camCols
			if sx+tileW <= 0 || sx >= dst.Width() {
				continue
			}
			dst.FillRect(core.NewRect(sx, hudHeight+row*tileH, tileW, tileH), gl.r, gl.c)
		}
	}
}

// spriteX returns the screen column where a two-column sprite centered on x
// starts.
func spriteX(x float64, camCols int) int {
	return int(x*tileW) - camCols - 1
}

func renderNPCs(dst *core.Screen, snap Snapshot, camCols int) {
	for _, n := range snap.NPCs {
		p := n.Pos()
		x := spriteX(p.X, camCols)
		y := hudHeight + int(p.Y)*tileH
		c := core.ColorNPC
		if n.Talked {
			c = core.ColorGood
		}
		dst.DrawTextColor(x, y, "()", c)
		dst.DrawTextColor(x, y+1, "/\\", c)
		dst.DrawTextColor(x+1-len(n.Name)/2, y-1, n.Name, c)
	}
}

func renderPlayer(dst *core.Screen, snap Snapshot, camCols int) {
	x := spriteX(snap.Player.X, camCols)
	y := hudHeight + int(snap.Player.Y)*tileH

	head := "@>"
	if snap.Facing < 0 {
		head = "<@"
	}
	legs := "/\\"
	if snap.WalkFrame == 1 {
		legs = "||"
	}
	dst.DrawTextColor(x, y, head, core.ColorPlayer)
	dst.DrawTextColor(x, y+1, legs, core.ColorPlayer)
}

func renderDialogue(dst *core.Screen, d *Dialogue) {
	lines := []string{
		d.NPC + ": " + d.Title,
		"",
		d.Question,
		"",
	}
	for i, opt := range d.Options {
		marker := "  "
		if i == d.Cursor {
			marker = "> "
		}
		lines = append(lines, fmt.Sprintf("%s%d. %s", marker, i+1, opt))
	}
	lines = append(lines, "", "1-3 or ↑/↓ + Enter")
	dst.DrawPanel(lines, core.ColorPrompt)
}
