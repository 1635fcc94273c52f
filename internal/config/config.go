// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "fmt"

// TetrisConfig contains all configuration for Tetris.
type TetrisConfig struct {
	Board      TetrisBoard      `yaml:"board"`
	Scoring    TetrisScoring    `yaml:"scoring"`
	Gravity    TetrisGravity    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// Bounding box of the pieces in spawn orientation: I is four wide, the
// others two high.
const (
	spawnWidth  = 4
	spawnHeight = 2
)

// TetrisBoard defines the well dimensions and spawn point.
type TetrisBoard struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SpawnRow int `yaml:"spawn_row"`
	SpawnCol int `yaml:"spawn_col"` // -1 = cols/2 - 1
}

// TetrisScoring defines point rewards.
type TetrisScoring struct {
	LineReward int `yaml:"line_reward"` // Points per cleared row, no combo bonus
}

// TetrisGravity defines how fast pieces fall on their own.
type TetrisGravity struct {
	IntervalMS    int `yaml:"interval_ms"`     // Time between gravity steps at level 0
	MinIntervalMS int `yaml:"min_interval_ms"` // Floor at max difficulty
}

// Validate checks that the configuration describes a playable board.
func (c TetrisConfig) Validate() error {
	if c.Board.Rows < spawnHeight || c.Board.Cols < spawnWidth {
		return fmt.Errorf("config: board must be at least %dx%d, got %dx%d",
			spawnHeight, spawnWidth, c.Board.Rows, c.Board.Cols)
	}
	if c.Board.SpawnCol < -1 {
		return fmt.Errorf("config: spawn_col %d outside board", c.Board.SpawnCol)
	}
	// Every piece must fit at the spawn point of an empty board
	if c.Board.SpawnRow < 0 || c.Board.SpawnRow+spawnHeight > c.Board.Rows {
		return fmt.Errorf("config: spawn_row %d leaves no room for a piece", c.Board.SpawnRow)
	}
	if col := c.SpawnColumn(); col+spawnWidth > c.Board.Cols {
		return fmt.Errorf("config: spawn_col %d leaves no room for a piece on %d columns", col, c.Board.Cols)
	}
	if c.Scoring.LineReward < 0 {
		return fmt.Errorf("config: line_reward must not be negative")
	}
	if c.Gravity.IntervalMS <= 0 || c.Gravity.MinIntervalMS <= 0 {
		return fmt.Errorf("config: gravity intervals must be positive")
	}
	if c.Gravity.MinIntervalMS > c.Gravity.IntervalMS {
		return fmt.Errorf("config: min_interval_ms %d exceeds interval_ms %d",
			c.Gravity.MinIntervalMS, c.Gravity.IntervalMS)
	}
	return nil
}

// SpawnColumn resolves spawn_col, where -1 means cols/2 - 1.
func (c TetrisConfig) SpawnColumn() int {
	if c.Board.SpawnCol < 0 {
		return c.Board.Cols/2 - 1
	}
	return c.Board.SpawnCol
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield ""
// which means "use the config file as is".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
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
