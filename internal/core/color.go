package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI codes in the platform renderer.
type Color uint8

// Palette used by the games. Game code names cells by meaning, the renderer
// decides the actual terminal colour.
const (
	ColorDefault Color = iota
	ColorWall
	ColorFloor
	ColorPlayer
	ColorEnemy
	ColorFrozen
	ColorAnswer
	ColorGem
	ColorKey
	ColorHUD
	ColorPrompt
	ColorGood
	ColorBad
	ColorFurniture
	ColorNPC
	ColorMuted
)

var colorNames = map[Color]string{
	ColorDefault:   "default",
	ColorWall:      "wall",
	ColorFloor:     "floor",
	ColorPlayer:    "player",
	ColorEnemy:     "enemy",
	ColorFrozen:    "frozen",
	ColorAnswer:    "answer",
	ColorGem:       "gem",
	ColorKey:       "key",
	ColorHUD:       "hud",
	ColorPrompt:    "prompt",
	ColorGood:      "good",
	ColorBad:       "bad",
	ColorFurniture: "furniture",
	ColorNPC:       "npc",
	ColorMuted:     "muted",
}

// String returns the palette name of the colour.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}
