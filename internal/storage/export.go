package storage

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// scoreRow is the CSV shape of a ScoreEntry.
type scoreRow struct {
	Rank     int    `csv:"rank"`
	GameID   string `csv:"game"`
	Player   string `csv:"player"`
	Score    int    `csv:"score"`
	Lines    int    `csv:"lines"`
	PlayedAt string `csv:"played_at"`
}

// WriteScoresCSV writes entries as CSV with a header row. Ranks follow the
// order of entries, starting at 1.
func WriteScoresCSV(w io.Writer, entries []ScoreEntry) error {
	records := make([]*scoreRow, 0, len(entries))
	for i, e := range entries {
		row := &scoreRow{
			Rank:   i + 1,
			GameID: e.GameID,
			Player: e.Player,
			Score:  e.Score,
			Lines:  e.Lines,
		}
		if !e.CreatedAt.IsZero() {
			row.PlayedAt = e.CreatedAt.Format(timeLayout)
		}
		records = append(records, row)
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("storage: cannot write csv: %w", err)
	}
	return nil
}
