package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	maze, err := LoadMaze("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMazeConfig(), maze)

	office, err := LoadOffice("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOfficeConfig(), office)
}

func TestGetDefaultYAML(t *testing.T) {
	assert.Equal(t, defaultMazeYAML, GetDefaultYAML("maze"))
	assert.Equal(t, defaultMazeYAML, GetDefaultYAML("maze_gems"))
	assert.Equal(t, defaultOfficeYAML, GetDefaultYAML("office"))
	assert.Nil(t, GetDefaultYAML("pong"))
}

func TestLoadMazeCustomPartial(t *testing.T) {
	path := writeFile(t, "maze.yaml", `
gameplay:
  lives: 7
enemies:
  speed: 0.05
`)

	cfg, err := LoadMaze(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Gameplay.Lives)
	assert.Equal(t, 0.05, cfg.Enemies.Speed)
	// Untouched keys keep their defaults.
	assert.Equal(t, 100, cfg.Gameplay.CorrectPoints)
	assert.Equal(t, 0.1, cfg.Player.Speed)
}

func TestLoadMazeLevels(t *testing.T) {
	path := writeFile(t, "maze.yaml", `
levels:
  - prompt: "Best way to give feedback?"
    layout:
      - "#####"
      - "#...#"
      - "#####"
    start: [1, 1]
    enemies: [[3, 1]]
    answers:
      - { text: "Be specific", cell: [2, 1], correct: true }
      - { text: "Be vague", cell: [3, 1] }
    key: [1, 1]
    lock: [3, 1]
`)

	cfg, err := LoadMaze(path)
	require.NoError(t, err)
	require.Len(t, cfg.Levels, 1)

	lvl := cfg.Levels[0]
	assert.Equal(t, "Best way to give feedback?", lvl.Prompt)
	assert.Len(t, lvl.Layout, 3)
	assert.Equal(t, [][2]int{{3, 1}}, lvl.Enemies)
	assert.True(t, lvl.Answers[0].Correct)
	assert.False(t, lvl.Answers[1].Correct)
	require.NotNil(t, lvl.Key)
	assert.Equal(t, [2]int{3, 1}, *lvl.Lock)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadMaze(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "player: [not, a, map")
	_, err = LoadOffice(bad)
	assert.Error(t, err)

	invalid := writeFile(t, "office.yaml", "gameplay:\n  duration_seconds: -1\n")
	_, err = LoadOffice(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestMazeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MazeConfig)
	}{
		{"zero player speed", func(c *MazeConfig) { c.Player.Speed = 0 }},
		{"negative enemy speed", func(c *MazeConfig) { c.Enemies.Speed = -1 }},
		{"negative radius", func(c *MazeConfig) { c.Player.Radius = -0.1 }},
		{"inverted redirect range", func(c *MazeConfig) { c.Enemies.RedirectMax = 10 }},
		{"no lives", func(c *MazeConfig) { c.Gameplay.Lives = 0 }},
		{"zero freeze", func(c *MazeConfig) { c.Gameplay.FreezeTicks = 0 }},
		{"zero tile size", func(c *MazeConfig) { c.Proximity.TileSize = 0 }},
		{"zero lock threshold", func(c *MazeConfig) { c.Proximity.Lock = 0 }},
		{"two correct answers", func(c *MazeConfig) {
			c.Levels = []LevelConfig{{Prompt: "q", Answers: []AnswerConfig{{Correct: true}, {Correct: true}}}}
		}},
		{"key without lock", func(c *MazeConfig) {
			c.Levels = []LevelConfig{{Prompt: "q", Answers: []AnswerConfig{{Correct: true}}, Key: &[2]int{1, 1}}}
		}},
		{"empty prompt", func(c *MazeConfig) {
			c.Levels = []LevelConfig{{Answers: []AnswerConfig{{Correct: true}}}}
		}},
	}

	require.NoError(t, DefaultMazeConfig().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultMazeConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestOfficeValidate(t *testing.T) {
	require.NoError(t, DefaultOfficeConfig().Validate())

	cfg := DefaultOfficeConfig()
	cfg.Player.FrameInterval = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = DefaultOfficeConfig()
	cfg.Gameplay.ResumeMS = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(s), p)
	}
	_, err := ParsePreset("nightmare")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestApplyMazePreset(t *testing.T) {
	cfg := DefaultMazeConfig()
	ApplyMazePreset(&cfg, "")
	assert.Equal(t, DefaultMazeConfig(), cfg, "empty preset leaves config untouched")

	ApplyMazePreset(&cfg, DifficultyEasy)
	assert.Equal(t, 5, cfg.Gameplay.Lives)
	assert.Less(t, cfg.Enemies.Speed, DefaultMazeConfig().Enemies.Speed)

	cfg = DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyHard)
	assert.Equal(t, 2, cfg.Gameplay.Lives)
	assert.Equal(t, 0.7, cfg.Difficulty.InitialLevel)
	assert.True(t, cfg.Difficulty.Enabled)

	cfg = DefaultMazeConfig()
	ApplyMazePreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestApplyOfficePreset(t *testing.T) {
	cfg := DefaultOfficeConfig()
	ApplyOfficePreset(&cfg, DifficultyEasy)
	assert.Equal(t, 90.0, cfg.Gameplay.DurationSeconds)

	cfg = DefaultOfficeConfig()
	ApplyOfficePreset(&cfg, DifficultyHard)
	assert.Equal(t, 45.0, cfg.Gameplay.DurationSeconds)
	require.NoError(t, cfg.Validate())
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultMazeConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	assert.True(t, dm.IsEnabled())
	assert.Equal(t, 0.0, dm.Level(0, 0))
	assert.InDelta(t, 1.0/3, dm.Level(1, 0), 1e-9)
	assert.Equal(t, 1.0, dm.Level(10, 0), "progress clamps at max_at")
	assert.InDelta(t, 0.03, dm.Speed(0.03, 0, 0), 1e-12)
	assert.InDelta(t, 0.045, dm.Speed(0.03, 3, 0), 1e-12)

	dm.SetInitialLevel(0.5)
	assert.InDelta(t, 0.5+0.5/3, dm.Level(1, 0), 1e-9)

	dm.SetEnabled(false)
	assert.False(t, dm.IsEnabled())
	assert.Equal(t, 0.5, dm.Level(3, 999))

	dm.SetInitialLevel(4)
	assert.Equal(t, 1.0, dm.Level(0, 0), "initial level is clamped")
}

func TestDifficultyManagerScore(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 400},
		Scaling:     ScalingConfig{SpeedMultiplier: 1},
	})
	assert.Equal(t, 0.5, dm.Level(99, 200))
	assert.Equal(t, 2.0, dm.Speed(1, 0, 400))

	none := NewDifficultyManager(DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "none"}})
	assert.False(t, none.IsEnabled())
	assert.Equal(t, 0.2, none.Level(5, 5000))
}
