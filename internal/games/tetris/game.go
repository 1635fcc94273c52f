// Package tetris implements falling-block Tetris on a fixed well.
//
// Board holds the rules: a grid of locked cells, the falling piece and the
// score, with every move validated before it is applied. Game wraps a Board
// for the platform, adding the gravity timer, input handling and rendering.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("" keeps the config's own).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for Tetris.
type Game struct {
	board      *Board
	pieces     *Randomizer
	cfg        config.TetrisConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	tick    uint64
	gravity time.Duration // Time since the last gravity step
	paused  bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a new Tetris game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tetris"
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Left/Right: Move | Up: Rotate | Down: Drop | Space: Hard drop | P: Pause | Q: Quit"
}

// Reset builds a fresh board. The previous board, including a finished
// one, is discarded entirely.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	config.ApplyTetrisPreset(&cfg, difficultyPreset)

	g.resetWith(runtime, cfg)
}

func (g *Game) resetWith(runtime core.RuntimeConfig, cfg config.TetrisConfig) {
	g.runtime = runtime
	g.pieces = NewRandomizer(runtime.Seed)

	board, err := NewBoard(boardOptions(cfg), g.pieces)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
		board, _ = NewBoard(boardOptions(cfg), g.pieces)
	}

	g.cfg = cfg
	g.board = board
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.tick = 0
	g.gravity = 0
	g.paused = false
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

func boardOptions(cfg config.TetrisConfig) BoardOptions {
	return BoardOptions{
		Rows:       cfg.Board.Rows,
		Cols:       cfg.Board.Cols,
		LineReward: cfg.Scoring.LineReward,
		SpawnRow:   cfg.Board.SpawnRow,
		SpawnCol:   cfg.SpawnColumn(),
	}
}

// Resize adapts the layout to a new terminal size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	minW, minH := g.minScreenSize()
	g.tooSmall = width < minW || height < minH
}

// Step advances the game by one tick: player input first, then gravity.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.board.GameOver() {
		return g.result(0)
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result(0)
	}

	cleared := g.applyInput(in)

	if !g.board.GameOver() {
		g.gravity += g.runtime.TickDuration()
		if g.gravity > g.GravityInterval() {
			g.gravity = 0
			cleared += g.fall()
		}
	}

	return g.result(cleared)
}

// applyInput performs the frame's moves in a fixed order and returns the
// number of rows cleared by drops.
func (g *Game) applyInput(in core.InputFrame) int {
	for range in.Count(core.ActionLeft) {
		g.board.Shift(-1)
	}
	for range in.Count(core.ActionRight) {
		g.board.Shift(1)
	}
	for range in.Count(core.ActionRotate) {
		g.board.Rotate()
	}

	cleared := 0
	for range in.Count(core.ActionSoftDrop) {
		if g.board.GameOver() {
			return cleared
		}
		cleared += g.fall()
	}
	if in.Has(core.ActionHardDrop) && !g.board.GameOver() {
		g.board.HardDrop()
		cleared += g.board.LastCleared()
		g.gravity = 0
	}
	return cleared
}

// fall steps the piece one row and reports rows cleared if it locked.
func (g *Game) fall() int {
	switch g.board.Step(1) {
	case StepLocked, StepToppedOut:
		g.gravity = 0
		return g.board.LastCleared()
	default:
		return 0
	}
}

func (g *Game) result(cleared int) core.StepResult {
	return core.StepResult{State: g.State(), LinesCleared: cleared}
}

// GravityInterval returns the current time between automatic drops.
func (g *Game) GravityInterval() time.Duration {
	return g.difficulty.Interval(
		g.cfg.Gravity.IntervalMS,
		g.cfg.Gravity.MinIntervalMS,
		g.board.Score(),
		int(g.tick),
	)
}

// Level returns the 1-based speed level shown in the HUD.
func (g *Game) Level() int {
	return 1 + int(g.difficulty.Level(g.board.Score(), int(g.tick))*9)
}

// Lines returns the number of rows cleared this game.
func (g *Game) Lines() int {
	if g.board == nil {
		return 0
	}
	return g.board.Lines()
}

// Board exposes the underlying state machine.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.board.GameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}
