package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads maze configuration.
// Search order: customPath -> ~/.arcade/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (MazeConfig, error) {
	cfg, err := load("maze.yaml", customPath, defaultMazeYAML, DefaultMazeConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid maze config: %w", err)
	}
	return cfg, nil
}

// LoadOffice loads office configuration.
// Search order: customPath -> ~/.arcade/configs/office.yaml -> ./configs/office.yaml -> embedded default
func LoadOffice(customPath string) (OfficeConfig, error) {
	cfg, err := load("office.yaml", customPath, defaultOfficeYAML, DefaultOfficeConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid office config: %w", err)
	}
	return cfg, nil
}

// load decodes the first config found on top of the hardcoded defaults, so a
// file only needs the keys it changes.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		next := defaults()
		if err := yaml.Unmarshal(data, &next); err == nil {
			return next, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyMazePreset modifies the config based on a difficulty preset.
func ApplyMazePreset(cfg *MazeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Enemies.Speed = 0.02
		cfg.Gameplay.InvincibleTicks = 180
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Enemies.Speed = 0.045
		cfg.Gameplay.FreezeTicks = 120
	}
}

// ApplyOfficePreset modifies the config based on a difficulty preset.
func ApplyOfficePreset(cfg *OfficeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.DurationSeconds = 90
	case DifficultyHard:
		cfg.Gameplay.DurationSeconds = 45
		cfg.Gameplay.TalkRadius = 72
	}
}
