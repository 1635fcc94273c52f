package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Rows:     20,
			Cols:     10,
			SpawnRow: 0,
			SpawnCol: -1,
		},
		Scoring: TetrisScoring{
			LineReward: 100,
		},
		Gravity: TetrisGravity{
			IntervalMS:    1000,
			MinIntervalMS: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000, // 100 lines at the default reward
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0, // 1000ms -> 200ms at max
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
