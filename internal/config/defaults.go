package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

//go:embed defaults/office.yaml
var defaultOfficeYAML []byte

// DefaultMazeConfig returns the default maze configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Player: MazePlayer{
			Speed:  0.1,
			Radius: 0.5,
		},
		Enemies: MazeEnemies{
			Speed:       0.03,
			Radius:      0.5,
			RedirectMin: 60, // 1-2 seconds at 60fps
			RedirectMax: 120,
		},
		Gameplay: MazeGameplay{
			Lives:           3,
			CorrectPoints:   100,
			WrongPenalty:    50,
			GemPoints:       50,
			InvincibleTicks: 120,
			FreezeTicks:     180,
			AdvanceDelayMS:  100,
			GameOverMS:      3000,
			PopupTicks:      90,
		},
		Proximity: MazeProximity{
			TileSize: 48,
			Answer:   35,
			Enemy:    30,
			Gem:      30,
			Key:      30,
			Lock:     35,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "stage",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultOfficeConfig returns the default office configuration.
func DefaultOfficeConfig() OfficeConfig {
	return OfficeConfig{
		Player: OfficePlayer{
			TileSize:      64,
			Speed:         2,
			FrameInterval: 0.2,
		},
		Gameplay: OfficeGameplay{
			DurationSeconds: 60,
			TalkRadius:      96, // 1.5 tiles
			ResumeMS:        1000,
			PopupTicks:      90,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "maze", "maze_gems":
		return defaultMazeYAML
	case "office":
		return defaultOfficeYAML
	default:
		return nil
	}
}
