package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move piece
  Up/W/X           - Rotate clockwise
  Down/S           - Soft drop
  Space            - Hard drop
  P                - Pause
  Esc/B            - Pause, or leave a paused/finished game
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower gravity, speeds up with score
  normal - Config defaults
  hard   - Faster gravity, speeds up with score
  fixed  - Gravity never speeds up

Examples:
  arcade play tetris
  arcade play tetris --difficulty hard
  arcade play tetris --seed 42
  arcade play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame checks the CLI settings and passes them to a game package
// before it is created.
func configureGame(gameID string) error {
	switch gameID {
	case "tetris":
		if err := config.CheckTetrisOptions(flagConfig, flagDifficulty); err != nil {
			return err
		}
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

// openStore opens the score database, or returns nil if it is unavailable.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := configureGame(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Continue without storage if needed - game still works
	store := openStore()

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
