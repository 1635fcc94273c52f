package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape is a piece's bounding box; true marks a filled cell.
// Rows are indexed first, matching the board.
type Shape [][]bool

// ShapeFromRows builds a Shape from strings where '#' marks a filled cell.
// Every row must have the same length.
func ShapeFromRows(rows ...string) Shape {
	s := make(Shape, len(rows))
	for r, line := range rows {
		s[r] = make([]bool, len(line))
		for c, ch := range line {
			s[r][c] = ch == '#'
		}
	}
	return s
}

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotated returns the shape turned 90° clockwise: the row order is
// reversed and the result transposed. The receiver is not modified.
func (s Shape) Rotated() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for r := range w {
		out[r] = make([]bool, h)
		for c := range h {
			out[r][c] = s[h-1-c][r]
		}
	}
	return out
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for r := range s {
		out[r] = append([]bool(nil), s[r]...)
	}
	return out
}

// Equal reports whether two shapes have identical cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for r := range s {
		if len(s[r]) != len(other[r]) {
			return false
		}
		for c := range s[r] {
			if s[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells returns the filled cells relative to the shape origin.
func (s Shape) Cells() []core.Point {
	var pts []core.Point
	for r, row := range s {
		for c, filled := range row {
			if filled {
				pts = append(pts, core.Point{Row: r, Col: c})
			}
		}
	}
	return pts
}

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindT
	KindZ
	KindS
	KindO
	KindL
	KindJ
	kindCount
)

type kindDef struct {
	name  string
	color core.Color
	rows  []string
}

var kinds = [kindCount]kindDef{
	KindI: {"I", core.ColorCyan, []string{"####"}},
	KindT: {"T", core.ColorOrange, []string{"###", ".#."}},
	KindZ: {"Z", core.ColorBlue, []string{"##.", ".##"}},
	KindS: {"S", core.ColorRed, []string{".##", "##."}},
	KindO: {"O", core.ColorGreen, []string{"##", "##"}},
	KindL: {"L", core.ColorYellow, []string{"#..", "###"}},
	KindJ: {"J", core.ColorMagenta, []string{"..#", "###"}},
}

// String returns the conventional letter for the tetromino.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "?"
	}
	return kinds[k].name
}

// Color returns the fill color used for the tetromino.
func (k Kind) Color() core.Color {
	if k < 0 || k >= kindCount {
		return core.ColorWhite
	}
	return kinds[k].color
}

// Shape returns a fresh copy of the tetromino's spawn orientation.
func (k Kind) Shape() Shape {
	if k < 0 || k >= kindCount {
		return nil
	}
	return ShapeFromRows(kinds[k].rows...)
}

// Piece is the falling piece: a shape, its color, and the board
// position of the shape's top-left corner.
type Piece struct {
	Kind  Kind
	Shape Shape
	Color core.Color
	Pos   core.Point
}

// NewPiece returns the tetromino of the given kind at the origin.
func NewPiece(k Kind) Piece {
	return Piece{
		Kind:  k,
		Shape: k.Shape(),
		Color: k.Color(),
	}
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}

// PieceSource supplies the board with new pieces each time one locks.
type PieceSource interface {
	Next() Piece
}

// Randomizer deals tetrominoes uniformly at random from a seeded source,
// one piece ahead so the HUD can show what comes next.
type Randomizer struct {
	rng  *rand.Rand
	next Kind
}

// NewRandomizer creates a deterministic randomizer for the given seed.
func NewRandomizer(seed int64) *Randomizer {
	r := &Randomizer{rng: rand.New(rand.NewSource(seed))}
	r.next = r.roll()
	return r
}

func (r *Randomizer) roll() Kind {
	return Kind(r.rng.Intn(int(kindCount)))
}

// Next returns the upcoming piece and draws a new one behind it.
func (r *Randomizer) Next() Piece {
	k := r.next
	r.next = r.roll()
	return NewPiece(k)
}

// Peek returns the kind Next will deal without consuming it.
func (r *Randomizer) Peek() Kind {
	return r.next
}
