package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// BoardSnapshot is a deep copy of a Board's observable state.
type BoardSnapshot struct {
	Grid  [][]core.Color
	Piece Piece
	Score int
	Lines int
	Phase Phase
}

// Snapshot returns a copy of the board that later moves cannot change.
func (b *Board) Snapshot() BoardSnapshot {
	grid := make([][]core.Color, len(b.grid))
	for r := range b.grid {
		grid[r] = append([]core.Color(nil), b.grid[r]...)
	}
	return BoardSnapshot{
		Grid:  grid,
		Piece: b.piece.Clone(),
		Score: b.score,
		Lines: b.lines,
		Phase: b.phase,
	}
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Board  BoardSnapshot
	Next   Kind
	Level  int
	Paused bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Board:  g.board.Snapshot(),
		Next:   g.pieces.Peek(),
		Level:  g.Level(),
		Paused: g.paused,
	}
}
