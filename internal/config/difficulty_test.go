package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
	})

	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(500, 0), 1e-9)
	assert.InDelta(t, 1.0, d.Level(5000, 0), 1e-9, "level is capped at 1")
}

func TestDifficultyDisabledKeepsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.3, d.Level(100, 100), 1e-9)
}

func TestDifficultyInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 4.0},
	})

	assert.Equal(t, time.Second, d.Interval(1000, 100, 0, 0))
	assert.Equal(t, 200*time.Millisecond, d.Interval(1000, 100, 1000, 0))
	assert.Equal(t, 300*time.Millisecond, d.Interval(1000, 300, 1000, 0), "never below the floor")
}
