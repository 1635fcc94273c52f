package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresCSV   string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

With --csv the full score history is exported instead, ranked by score.
Use "-" to write the CSV to stdout.

Examples:
  arcade scores tetris
  arcade scores tetris --limit 25
  arcade scores tetris --csv scores.csv
  arcade scores tetris --csv - | column -s, -t
  arcade scores tetris --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresCSV, "csv", "", `Export all scores as CSV to a file ("-" for stdout)`)
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = clearScores(store, info)
	case flagScoresCSV != "":
		err = exportScores(store, gameID, flagScoresCSV)
	default:
		err = printScores(store, info)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, info registry.GameInfo) error {
	if err := store.ClearScores(info.ID); err != nil {
		return err
	}
	fmt.Printf("Cleared all %s scores.\n", info.Title)
	return nil
}

func exportScores(store *storage.Store, gameID, dest string) error {
	scores, err := store.AllScores(gameID)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if dest != "-" {
		f, err := os.Create(dest)
		if err != nil {
			return fmt.Errorf("cannot create %s: %w", dest, err)
		}
		defer f.Close()
		w = f
	}

	if err := storage.WriteScoresCSV(w, scores); err != nil {
		return err
	}
	if dest != "-" {
		fmt.Printf("Exported %d scores to %s\n", len(scores), dest)
	}
	return nil
}

func printScores(store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "Rank", "Score", "Lines", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-16s  %s\n", i+1, entry.Score, entry.Lines, player, dateStr)
	}

	stats, err := store.GetGameStats(info.ID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f  |  Lines: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines)
	}
	return nil
}
