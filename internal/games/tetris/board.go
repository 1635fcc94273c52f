package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Phase is the board's position in the falling/lock/clear cycle.
type Phase int

const (
	PhaseFalling  Phase = iota // Piece active, accepting input
	PhaseLocking               // Downward step failed, piece being committed
	PhaseCleared               // Full rows removed, score updated
	PhaseGameOver              // Spawned piece did not fit; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseCleared:
		return "cleared"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepOutcome reports what a vertical step did.
type StepOutcome int

const (
	StepBlocked   StepOutcome = iota // Nothing changed
	StepMoved                        // Piece translated
	StepLocked                       // Piece locked and a new one spawned
	StepToppedOut                    // Piece locked and the new one did not fit
)

// BoardOptions configures a Board.
type BoardOptions struct {
	Rows       int
	Cols       int
	LineReward int // Points per cleared row
	SpawnRow   int
	SpawnCol   int // Negative means Cols/2 - 1
}

// Board is the Tetris well: a fixed grid of locked cells, the falling
// piece, and the score. Every change to the piece is checked against the
// grid before it is committed, so the piece never overlaps a locked cell
// or leaves the well.
//
// Board is not safe for concurrent use.
type Board struct {
	rows, cols  int
	grid        [][]core.Color
	piece       Piece
	spawn       core.Point
	reward      int
	score       int
	lines       int
	lastCleared int
	phase       Phase
	src         PieceSource
}

// NewBoard creates an empty board and spawns the first piece from src.
func NewBoard(opts BoardOptions, src PieceSource) (*Board, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("tetris: invalid board size %dx%d", opts.Rows, opts.Cols)
	}
	if opts.LineReward < 0 {
		return nil, fmt.Errorf("tetris: negative line reward %d", opts.LineReward)
	}
	if src == nil {
		return nil, fmt.Errorf("tetris: nil piece source")
	}

	spawnCol := opts.SpawnCol
	if spawnCol < 0 {
		spawnCol = opts.Cols/2 - 1
	}
	if spawnCol >= opts.Cols || opts.SpawnRow < 0 || opts.SpawnRow >= opts.Rows {
		return nil, fmt.Errorf("tetris: spawn (%d,%d) outside %dx%d board",
			opts.SpawnRow, spawnCol, opts.Rows, opts.Cols)
	}

	b := &Board{
		rows:   opts.Rows,
		cols:   opts.Cols,
		grid:   make([][]core.Color, opts.Rows),
		spawn:  core.Point{Row: opts.SpawnRow, Col: spawnCol},
		reward: opts.LineReward,
		src:    src,
	}
	for r := range b.grid {
		b.grid[r] = make([]core.Color, opts.Cols)
	}
	b.Spawn(src.Next())
	return b, nil
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Score returns the accumulated score.
func (b *Board) Score() int { return b.score }

// Lines returns the total number of cleared rows.
func (b *Board) Lines() int { return b.lines }

// LastCleared returns how many rows the most recent lock cleared.
func (b *Board) LastCleared() int { return b.lastCleared }

// Phase returns the current phase.
func (b *Board) Phase() Phase { return b.phase }

// GameOver reports whether the board has reached its terminal phase.
func (b *Board) GameOver() bool { return b.phase == PhaseGameOver }

// Piece returns a copy of the falling piece.
func (b *Board) Piece() Piece { return b.piece.Clone() }

// Cell returns the locked color at (row, col); ColorDefault means empty
// or out of bounds.
func (b *Board) Cell(row, col int) core.Color {
	if !b.inBounds(row, col) {
		return core.ColorDefault
	}
	return b.grid[row][col]
}

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// fits reports whether shape placed at pos lies on empty in-bounds cells.
func (b *Board) fits(shape Shape, pos core.Point) bool {
	for r, row := range shape {
		for c, filled := range row {
			if !filled {
				continue
			}
			br, bc := pos.Row+r, pos.Col+c
			if !b.inBounds(br, bc) || !b.grid[br][bc].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// TryMove reports whether shape fits at the current piece position offset
// by (dRow, dCol). It never mutates the board.
func (b *Board) TryMove(shape Shape, dRow, dCol int) bool {
	return b.fits(shape, b.piece.Pos.Add(dRow, dCol))
}

// Shift moves the piece horizontally by dCol if the target is free.
func (b *Board) Shift(dCol int) bool {
	if b.GameOver() || !b.TryMove(b.piece.Shape, 0, dCol) {
		return false
	}
	b.piece.Pos.Col += dCol
	return true
}

// Rotate turns the piece clockwise in place. If the rotated shape does
// not fit, the piece is left untouched; no wall kick is attempted.
func (b *Board) Rotate() bool {
	if b.GameOver() {
		return false
	}
	candidate := b.piece.Shape.Rotated()
	if !b.TryMove(candidate, 0, 0) {
		return false
	}
	b.piece.Shape = candidate
	return true
}

// Step moves the piece dRow rows. A blocked downward step locks the piece,
// clears full rows and spawns the next piece; if that piece does not fit
// the board enters PhaseGameOver.
func (b *Board) Step(dRow int) StepOutcome {
	if b.GameOver() {
		return StepBlocked
	}
	if b.TryMove(b.piece.Shape, dRow, 0) {
		b.piece.Pos.Row += dRow
		return StepMoved
	}
	if dRow <= 0 {
		return StepBlocked
	}

	b.Lock()
	b.phase = PhaseCleared
	b.lastCleared = b.ClearLines()

	if !b.Spawn(b.src.Next()) {
		return StepToppedOut
	}
	return StepLocked
}

// HardDrop steps the piece down until it locks and returns the number of
// rows it fell.
func (b *Board) HardDrop() int {
	fell := 0
	for b.Step(1) == StepMoved {
		fell++
	}
	return fell
}

// Ghost returns the row at which the piece would lock if dropped now.
func (b *Board) Ghost() int {
	d := 0
	for b.TryMove(b.piece.Shape, d+1, 0) {
		d++
	}
	return b.piece.Pos.Row + d
}

// Lock writes the falling piece's cells into the grid in its color.
func (b *Board) Lock() {
	if b.GameOver() {
		return
	}
	b.phase = PhaseLocking
	for _, p := range b.piece.Shape.Cells() {
		r, c := b.piece.Pos.Row+p.Row, b.piece.Pos.Col+p.Col
		if b.inBounds(r, c) {
			b.grid[r][c] = b.piece.Color
		}
	}
}

// ClearLines removes every full row, inserts the same number of empty rows
// at the top, and awards LineReward per removed row. It returns the number
// of rows removed.
func (b *Board) ClearLines() int {
	if b.GameOver() {
		return 0
	}

	kept := make([][]core.Color, 0, b.rows)
	for _, row := range b.grid {
		if !rowFull(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	grid := make([][]core.Color, 0, b.rows)
	for range cleared {
		grid = append(grid, make([]core.Color, b.cols))
	}
	b.grid = append(grid, kept...)

	b.score += cleared * b.reward
	b.lines += cleared
	return cleared
}

func rowFull(row []core.Color) bool {
	for _, c := range row {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Spawn places p at the spawn position. If it overlaps locked cells or
// leaves the board, the board enters PhaseGameOver and Spawn returns false.
// The grid is never modified.
func (b *Board) Spawn(p Piece) bool {
	if b.GameOver() {
		return false
	}
	p.Pos = b.spawn
	b.piece = p
	if !b.fits(p.Shape, p.Pos) {
		b.phase = PhaseGameOver
		return false
	}
	b.phase = PhaseFalling
	return true
}
