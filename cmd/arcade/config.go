package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print or install a game's default config",
	Long: `Print the built-in YAML configuration for a game.

With --write the defaults are saved to ~/.arcade/configs/<game>.yaml,
which 'arcade play' picks up automatically. An existing file is never
overwritten.

Examples:
  arcade config tetris
  arcade config tetris > my-tetris.yaml
  arcade config tetris --write`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Save the defaults to the user config directory")
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		os.Exit(1)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: %s has no configuration\n", gameID)
		os.Exit(1)
	}

	if !flagConfigWrite {
		os.Stdout.Write(data) //nolint:errcheck
		return
	}

	path := config.UserConfigPath(gameID)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory")
		os.Exit(1)
	}
	if _, err := os.Stat(path); err == nil {
		logger.Warn("config already exists, leaving it untouched", "path", path)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
