// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned (wrapped) by Validate for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// MazeConfig contains all configuration for the maze quiz games.
type MazeConfig struct {
	Player     MazePlayer       `yaml:"player"`
	Enemies    MazeEnemies      `yaml:"enemies"`
	Gameplay   MazeGameplay     `yaml:"gameplay"`
	Proximity  MazeProximity    `yaml:"proximity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Levels     []LevelConfig    `yaml:"levels,omitempty"` // overrides the built-in question bank
}

// MazePlayer defines the player entity.
type MazePlayer struct {
	Speed  float64 `yaml:"speed"`  // tiles per tick
	Radius float64 `yaml:"radius"` // 0 disables corner sampling
}

// MazeEnemies defines the chasers.
type MazeEnemies struct {
	Speed       float64 `yaml:"speed"`
	Radius      float64 `yaml:"radius"`
	RedirectMin int     `yaml:"redirect_min"` // ticks
	RedirectMax int     `yaml:"redirect_max"`
}

// MazeGameplay defines scoring, lives and timer lengths. Fields ending in
// Ticks count frames; fields ending in MS are wall-clock delays.
type MazeGameplay struct {
	Lives           int `yaml:"lives"`
	CorrectPoints   int `yaml:"correct_points"`
	WrongPenalty    int `yaml:"wrong_penalty"`
	GemPoints       int `yaml:"gem_points"`
	InvincibleTicks int `yaml:"invincible_ticks"`
	FreezeTicks     int `yaml:"freeze_ticks"`
	AdvanceDelayMS  int `yaml:"advance_delay_ms"`
	GameOverMS      int `yaml:"game_over_ms"`
	PopupTicks      int `yaml:"popup_ticks"`
}

// MazeProximity defines trigger thresholds in pixels at TileSize pixels per tile.
type MazeProximity struct {
	TileSize float64 `yaml:"tile_size"`
	Answer   float64 `yaml:"answer"`
	Enemy    float64 `yaml:"enemy"`
	Gem      float64 `yaml:"gem"`
	Key      float64 `yaml:"key"`
	Lock     float64 `yaml:"lock"`
}

// LevelConfig is one question of a maze level bank. Positions are tile cells;
// entities are placed at the cell center.
type LevelConfig struct {
	Prompt  string         `yaml:"prompt"`
	Layout  []string       `yaml:"layout,omitempty"` // empty reuses the previous level's layout
	Start   [2]int         `yaml:"start"`
	Enemies [][2]int       `yaml:"enemies"`
	Answers []AnswerConfig `yaml:"answers"`
	Gems    [][2]int       `yaml:"gems,omitempty"`
	Key     *[2]int        `yaml:"key,omitempty"`
	Lock    *[2]int        `yaml:"lock,omitempty"`
}

// AnswerConfig is one collectible answer.
type AnswerConfig struct {
	Text    string `yaml:"text"`
	Cell    [2]int `yaml:"cell"`
	Correct bool   `yaml:"correct,omitempty"`
}

// OfficeConfig contains all configuration for the office side-scroller.
type OfficeConfig struct {
	Player   OfficePlayer   `yaml:"player"`
	Gameplay OfficeGameplay `yaml:"gameplay"`
}

// OfficePlayer defines the walking player, in pixels at TileSize pixels per tile.
type OfficePlayer struct {
	TileSize      float64 `yaml:"tile_size"`
	Speed         float64 `yaml:"speed"`          // pixels per tick
	FrameInterval float64 `yaml:"frame_interval"` // seconds per walk frame
}

// OfficeGameplay defines the countdown and dialogue trigger.
type OfficeGameplay struct {
	DurationSeconds float64 `yaml:"duration_seconds"`
	TalkRadius      float64 `yaml:"talk_radius"` // pixels
	ResumeMS        int     `yaml:"resume_ms"`
	PopupTicks      int     `yaml:"popup_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "stage", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Stage index or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the maze configuration.
func (c MazeConfig) Validate() error {
	switch {
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalid)
	case c.Enemies.Speed <= 0:
		return fmt.Errorf("%w: enemies.speed must be positive", ErrInvalid)
	case c.Player.Radius < 0 || c.Enemies.Radius < 0:
		return fmt.Errorf("%w: radius must not be negative", ErrInvalid)
	case c.Enemies.RedirectMin <= 0 || c.Enemies.RedirectMax < c.Enemies.RedirectMin:
		return fmt.Errorf("%w: redirect range [%d, %d)", ErrInvalid, c.Enemies.RedirectMin, c.Enemies.RedirectMax)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: gameplay.lives must be positive", ErrInvalid)
	case c.Gameplay.InvincibleTicks <= 0, c.Gameplay.FreezeTicks <= 0,
		c.Gameplay.AdvanceDelayMS <= 0, c.Gameplay.GameOverMS <= 0:
		return fmt.Errorf("%w: gameplay tick counts must be positive", ErrInvalid)
	case c.Proximity.TileSize <= 0:
		return fmt.Errorf("%w: proximity.tile_size must be positive", ErrInvalid)
	case c.Proximity.Answer <= 0, c.Proximity.Enemy <= 0, c.Proximity.Gem <= 0,
		c.Proximity.Key <= 0, c.Proximity.Lock <= 0:
		return fmt.Errorf("%w: proximity thresholds must be positive", ErrInvalid)
	}
	for i, lvl := range c.Levels {
		if err := lvl.validate(); err != nil {
			return fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return nil
}

func (l LevelConfig) validate() error {
	if l.Prompt == "" {
		return fmt.Errorf("%w: empty prompt", ErrInvalid)
	}
	correct := 0
	for _, a := range l.Answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: %d correct answers, expected exactly 1", ErrInvalid, correct)
	}
	if (l.Key == nil) != (l.Lock == nil) {
		return fmt.Errorf("%w: key and lock must be set together", ErrInvalid)
	}
	return nil
}

// Validate checks the office configuration.
func (c OfficeConfig) Validate() error {
	switch {
	case c.Player.TileSize <= 0:
		return fmt.Errorf("%w: player.tile_size must be positive", ErrInvalid)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player.speed must be positive", ErrInvalid)
	case c.Player.FrameInterval <= 0:
		return fmt.Errorf("%w: player.frame_interval must be positive", ErrInvalid)
	case c.Gameplay.DurationSeconds <= 0:
		return fmt.Errorf("%w: gameplay.duration_seconds must be positive", ErrInvalid)
	case c.Gameplay.TalkRadius <= 0:
		return fmt.Errorf("%w: gameplay.talk_radius must be positive", ErrInvalid)
	case c.Gameplay.ResumeMS <= 0:
		return fmt.Errorf("%w: gameplay.resume_ms must be positive", ErrInvalid)
	}
	return nil
}
