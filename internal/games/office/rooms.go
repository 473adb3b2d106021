package office

import (
	"strings"

	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

const (
	RoomWidth  = 10 // tiles per room
	RoomHeight = 8
	walkRow    = 5 // the row the player and NPCs stand on
)

// rooms are authored separately and joined left to right. Row 5 is the
// walking row; its doorways line up across room boundaries.
var rooms = [][]string{
	{
		"##########",
		"#........#",
		"#..D..P..#",
		"#..D.....#",
		"#........#",
		"#.........",
		"#.........",
		"##########",
	},
	{
		"##########",
		"#........#",
		"#.DD...P.#",
		"#.CC.....#",
		"#........#",
		"..........",
		"..........",
		"##########",
	},
	{
		"##########",
		"#........#",
		"#...V....#",
		"#...V.DD.#",
		"#.P...CC.#",
		".........#",
		".........#",
		"##########",
	},
}

// Option is one answer to a scenario.
type Option struct {
	Text    string
	Correct bool
}

// Scenario is the question an NPC asks.
type Scenario struct {
	Title    string
	Question string
	Options  []Option
}

// NPCDef places a coworker in the world.
type NPCDef struct {
	Name     string
	Col      int
	Scenario Scenario
}

// Pos returns the NPC's center on the walking row.
func (n NPCDef) Pos() core.Vec {
	return core.V(float64(n.Col)+0.5, walkRow+0.5)
}

// Coworkers stand one per room.
var Coworkers = []NPCDef{
	{
		Name: "Jordan",
		Col:  6,
		Scenario: Scenario{
			Title:    "Deadline Management",
			Question: "Jordan missed a deadline. What do you do?",
			Options: []Option{
				{Text: "Complain to the boss"},
				{Text: "Ask what happened and offer help", Correct: true},
				{Text: "Do their work for them"},
			},
		},
	},
	{
		Name: "Alex",
		Col:  16,
		Scenario: Scenario{
			Title:    "Conflict Resolution",
			Question: "Your teammate blames you for an error. What do you do?",
			Options: []Option{
				{Text: "Defend yourself immediately"},
				{Text: "Listen, then clarify facts", Correct: true},
				{Text: "Ignore them"},
			},
		},
	},
	{
		Name: "Sam",
		Col:  26,
		Scenario: Scenario{
			Title:    "Collaboration",
			Question: "A colleague has a different approach. How do you respond?",
			Options: []Option{
				{Text: "Insist your way is better"},
				{Text: "Discuss both ideas and find common ground", Correct: true},
				{Text: "Let them do it their way without input"},
			},
		},
	},
}

// StartPos is where the player spawns.
var StartPos = core.V(2.5, walkRow+0.5)

// joinRooms concatenates room layouts row by row.
func joinRooms(rs [][]string) []string {
	out := make([]string, RoomHeight)
	for row := range out {
		var b strings.Builder
		for _, r := range rs {
			b.WriteString(r[row])
		}
		out[row] = b.String()
	}
	return out
}

// NewWorld parses the joined office floor.
func NewWorld() (*engine.Grid, error) {
	return engine.ParseGrid(joinRooms(rooms), engine.OfficeLegend, engine.OfficeSolid)
}

// RoomOf returns the room index containing x, clamped to the world.
func RoomOf(x float64) int {
	return core.Clamp(int(x/RoomWidth), 0, len(rooms)-1)
}

// CameraX returns the left edge of a view of width view tiles following x,
// clamped so the view never leaves the world.
func CameraX(x, view, world float64) float64 {
	if view >= world {
		return 0
	}
	return core.ClampF(x-view/2, 0, world-view)
}

// ResultMessage grades a finished run by trust earned out of total.
func ResultMessage(trust, total int) string {
	switch {
	case total > 0 && trust >= total:
		return "Perfect! You're a soft-skills master!"
	case trust*3 >= total*2 && trust > 0:
		return "Great job! You build strong relationships!"
	case trust > 0:
		return "Good start! Keep practicing those soft skills!"
	default:
		return "Keep learning! Soft skills take practice!"
	}
}
