package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
//
// Only an explicit customPath can fail; the implicit locations are skipped
// when missing, unreadable or invalid.
func LoadTetris(customPath string) (TetrisConfig, error) {
	if customPath != "" {
		cfg, err := readTetris(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	candidates := []string{
		UserConfigPath("tetris"),
		filepath.Join("configs", "tetris.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := readTetris(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseTetris(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseTetris decodes YAML on top of the defaults, so a file only needs
// to list the keys it changes, and validates the result.
func ParseTetris(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot parse tetris config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func readTetris(path string) (TetrisConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TetrisConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseTetris(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// CheckTetrisOptions reports a bad explicit config file or difficulty
// name. Games fall back to defaults on their own, so callers check first.
func CheckTetrisOptions(path, difficulty string) error {
	if difficulty != "" && ParsePreset(difficulty) == "" {
		return fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}
	if path == "" {
		return nil
	}
	if _, err := LoadTetris(path); err != nil {
		return err
	}
	return nil
}

// UserConfigPath returns the per-user config file for a game, or empty if
// home is unavailable.
func UserConfigPath(gameID string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", gameID+".yaml")
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Base fall speed also follows the preset
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.IntervalMS = 1200
	case DifficultyHard:
		cfg.Gravity.IntervalMS = 700
	}
	if cfg.Gravity.MinIntervalMS > cfg.Gravity.IntervalMS {
		cfg.Gravity.MinIntervalMS = cfg.Gravity.IntervalMS
	}
}
