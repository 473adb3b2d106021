package maze

import (
	"fmt"

	"github.com/vovakirdan/softskills-arcade/internal/config"
	"github.com/vovakirdan/softskills-arcade/internal/core"
	"github.com/vovakirdan/softskills-arcade/internal/engine"
)

// CompletePrompt replaces the question once every level is cleared.
const CompletePrompt = "You completed all levels!"

// AnswerDef is an answer as authored in a level.
type AnswerDef struct {
	Text    string
	Pos     core.Vec
	Correct bool
}

// Level is an immutable level template. Sessions copy what they mutate.
type Level struct {
	Prompt  string
	Grid    *engine.Grid
	Start   core.Vec
	Enemies []core.Vec
	Answers []AnswerDef
	Gems    []core.Vec
	Key     *core.Vec // non-nil means the exit is gated by key and lock
	Lock    *core.Vec
}

// Gated reports whether a correct answer spawns a key and lock instead of
// advancing straight away.
func (l Level) Gated() bool {
	return l.Key != nil && l.Lock != nil
}

// classicLayout is the 20x16 maze both variants start on.
var classicLayout = []string{
	"####################",
	"#..................#",
	"#.#.#.#..#.#..#.#..#",
	"#..................#",
	"#.#.#..#.#.#..#.#..#",
	"#..................#",
	"#.#..#.#..#..#..#..#",
	"#..................#",
	"#.#.#.#..#.#..#.#..#",
	"#..................#",
	"#..#.#..#.#..#.#...#",
	"#..................#",
	"#.#..#.#.#.#..#.#..#",
	"#..................#",
	"#..................#",
	"####################",
}

// vaultLayout has longer corridors; the gem variant alternates it with the
// classic maze.
var vaultLayout = []string{
	"####################",
	"#..................#",
	"#.####.######.####.#",
	"#.#..............#.#",
	"#.#.###.####.###.#.#",
	"#..................#",
	"###.#.###..###.#.###",
	"#...#..........#...#",
	"#.#####.####.#####.#",
	"#..................#",
	"#.##.###.##.###.##.#",
	"#....#........#....#",
	"#.##.#.######.#.##.#",
	"#..................#",
	"#..................#",
	"####################",
}

func cell(col, row int) *[2]int { return &[2]int{col, row} }

// ClassicLevels is the four-question bank with one slow chaser.
var ClassicLevels = []config.LevelConfig{
	{
		Prompt:  "What makes a good team member?",
		Layout:  classicLayout,
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}},
		Answers: []config.AnswerConfig{
			{Text: "Listening", Cell: [2]int{3, 3}, Correct: true},
			{Text: "Gossip", Cell: [2]int{8, 5}},
			{Text: "Ego", Cell: [2]int{12, 8}},
			{Text: "Blaming", Cell: [2]int{16, 13}},
		},
	},
	{
		Prompt:  "Best way to handle conflict?",
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}},
		Answers: []config.AnswerConfig{
			{Text: "Collaborate", Cell: [2]int{10, 1}, Correct: true},
			{Text: "Avoid it", Cell: [2]int{4, 7}},
			{Text: "Blame", Cell: [2]int{14, 9}},
			{Text: "Yell", Cell: [2]int{6, 13}},
		},
	},
	{
		Prompt:  "How to build trust?",
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}},
		Answers: []config.AnswerConfig{
			{Text: "Honesty", Cell: [2]int{17, 3}, Correct: true},
			{Text: "Secrets", Cell: [2]int{8, 5}},
			{Text: "Lies", Cell: [2]int{12, 10}},
			{Text: "Hiding", Cell: [2]int{4, 14}},
		},
	},
	{
		Prompt:  "Key to productivity?",
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}},
		Answers: []config.AnswerConfig{
			{Text: "Focus", Cell: [2]int{6, 7}, Correct: true},
			{Text: "Multitask", Cell: [2]int{3, 3}},
			{Text: "Distract", Cell: [2]int{14, 9}},
			{Text: "Procrastinate", Cell: [2]int{10, 13}},
		},
	},
}

// GemLevels adds freeze gems, a key/lock exit and a second chaser.
var GemLevels = []config.LevelConfig{
	{
		Prompt:  "What makes a good team member?",
		Layout:  classicLayout,
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}, {18, 14}},
		Answers: []config.AnswerConfig{
			{Text: "Listening", Cell: [2]int{3, 3}, Correct: true},
			{Text: "Gossip", Cell: [2]int{8, 5}},
			{Text: "Ego", Cell: [2]int{12, 8}},
			{Text: "Blaming", Cell: [2]int{16, 13}},
		},
		Gems: [][2]int{{10, 7}, {1, 13}},
		Key:  cell(5, 9),
		Lock: cell(18, 7),
	},
	{
		Prompt:  "Best way to handle conflict?",
		Layout:  vaultLayout,
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}, {10, 14}},
		Answers: []config.AnswerConfig{
			{Text: "Collaborate", Cell: [2]int{9, 3}, Correct: true},
			{Text: "Avoid it", Cell: [2]int{3, 7}},
			{Text: "Blame", Cell: [2]int{16, 11}},
			{Text: "Yell", Cell: [2]int{6, 13}},
		},
		Gems: [][2]int{{9, 7}, {1, 11}},
		Key:  cell(18, 9),
		Lock: cell(1, 14),
	},
	{
		Prompt:  "How to build trust?",
		Layout:  classicLayout,
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}, {1, 14}},
		Answers: []config.AnswerConfig{
			{Text: "Honesty", Cell: [2]int{17, 3}, Correct: true},
			{Text: "Secrets", Cell: [2]int{8, 5}},
			{Text: "Lies", Cell: [2]int{12, 10}},
			{Text: "Hiding", Cell: [2]int{4, 14}},
		},
		Gems: [][2]int{{10, 5}, {18, 11}},
		Key:  cell(2, 13),
		Lock: cell(18, 3),
	},
	{
		Prompt:  "Key to productivity?",
		Layout:  vaultLayout,
		Start:   [2]int{1, 1},
		Enemies: [][2]int{{18, 1}, {18, 14}},
		Answers: []config.AnswerConfig{
			{Text: "Focus", Cell: [2]int{12, 5}, Correct: true},
			{Text: "Multitask", Cell: [2]int{3, 3}},
			{Text: "Distract", Cell: [2]int{14, 9}},
			{Text: "Procrastinate", Cell: [2]int{10, 13}},
		},
		Gems: [][2]int{{10, 7}, {1, 9}},
		Key:  cell(6, 11),
		Lock: cell(18, 13),
	},
}

func center(c [2]int) core.Vec {
	return core.V(float64(c[0])+0.5, float64(c[1])+0.5)
}

// BuildLevels parses a level bank. A level without a layout reuses the
// previous one; every placement must sit on a walkable cell.
func BuildLevels(bank []config.LevelConfig) ([]Level, error) {
	if len(bank) == 0 {
		return nil, fmt.Errorf("maze: %w: empty level bank", config.ErrInvalid)
	}

	levels := make([]Level, 0, len(bank))
	var grid *engine.Grid
	for i, lc := range bank {
		if len(lc.Layout) > 0 {
			g, err := engine.ParseGrid(lc.Layout, engine.MazeLegend, engine.MazeSolid)
			if err != nil {
				return nil, fmt.Errorf("maze: level %d: %w", i+1, err)
			}
			grid = g
		}
		if grid == nil {
			return nil, fmt.Errorf("maze: level %d: %w: no layout", i+1, config.ErrInvalid)
		}

		place := func(what string, c [2]int) (core.Vec, error) {
			p := center(c)
			if grid.BlockedAt(p) {
				return p, fmt.Errorf("maze: level %d: %s at cell %v is blocked: %w", i+1, what, c, config.ErrInvalid)
			}
			return p, nil
		}

		lvl := Level{Prompt: lc.Prompt, Grid: grid}
		var err error
		if lvl.Start, err = place("start", lc.Start); err != nil {
			return nil, err
		}
		for _, e := range lc.Enemies {
			p, err := place("enemy", e)
			if err != nil {
				return nil, err
			}
			lvl.Enemies = append(lvl.Enemies, p)
		}
		for _, a := range lc.Answers {
			p, err := place(fmt.Sprintf("answer %q", a.Text), a.Cell)
			if err != nil {
				return nil, err
			}
			lvl.Answers = append(lvl.Answers, AnswerDef{Text: a.Text, Pos: p, Correct: a.Correct})
		}
		for _, gem := range lc.Gems {
			p, err := place("gem", gem)
			if err != nil {
				return nil, err
			}
			lvl.Gems = append(lvl.Gems, p)
		}
		if lc.Key != nil && lc.Lock != nil {
			k, err := place("key", *lc.Key)
			if err != nil {
				return nil, err
			}
			l, err := place("lock", *lc.Lock)
			if err != nil {
				return nil, err
			}
			lvl.Key, lvl.Lock = &k, &l
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
