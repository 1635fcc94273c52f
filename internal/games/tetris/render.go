package tetris

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellWidth    = 2  // Screen columns per board cell
	sidebarWidth = 14 // HUD panel to the right of the well
	sidebarGap   = 2
)

// Visual characters for rendering
const (
	blockChar = '█'
	ghostChar = '░'
	emptyChar = '·'
)

func (g *Game) minScreenSize() (int, int) {
	w := g.cfg.Board.Cols*cellWidth + 2 + sidebarGap + sidebarWidth
	h := g.cfg.Board.Rows + 2 + 1 // Well border plus title line
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	minW, minH := g.minScreenSize()
	originX := core.Clamp((g.screenW-minW)/2, 0, g.screenW)
	originY := core.Clamp((g.screenH-minH)/2, 0, g.screenH)

	dst.DrawTextColored(originX, originY, "T E T R I S", core.ColorBrightWhite)

	well := core.NewRect(originX, originY+1, g.board.Cols()*cellWidth+2, g.board.Rows()+2)
	dst.DrawBoxColored(well, core.ColorGray)
	g.renderWell(dst, well.X+1, well.Y+1)

	g.renderSidebar(dst, well.Right()+sidebarGap, well.Y)
	g.renderOverlays(dst, well)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.minScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", minW, minH, g.screenW, g.screenH))
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderWell draws locked cells, the ghost and the falling piece.
func (g *Game) renderWell(dst *core.Screen, x0, y0 int) {
	drawCell := func(r, c int, ch rune, color core.Color) {
		x := x0 + c*cellWidth
		dst.SetColored(x, y0+r, ch, color)
		dst.SetColored(x+1, y0+r, ch, color)
	}

	for r := range g.board.Rows() {
		for c := range g.board.Cols() {
			if color := g.board.Cell(r, c); !color.IsEmpty() {
				drawCell(r, c, blockChar, color)
			} else {
				dst.SetColored(x0+c*cellWidth+1, y0+r, emptyChar, core.ColorGray)
			}
		}
	}

	if g.board.GameOver() {
		return
	}

	piece := g.board.Piece()
	ghostRow := g.board.Ghost()
	for _, p := range piece.Shape.Cells() {
		drawCell(ghostRow+p.Row, piece.Pos.Col+p.Col, ghostChar, core.ColorGray)
	}
	for _, p := range piece.Shape.Cells() {
		drawCell(piece.Pos.Row+p.Row, piece.Pos.Col+p.Col, blockChar, piece.Color)
	}
}

// renderSidebar draws score, lines, level and the next piece.
func (g *Game) renderSidebar(dst *core.Screen, x, y int) {
	rows := []struct {
		label string
		value string
	}{
		{"SCORE", strconv.Itoa(g.board.Score())},
		{"LINES", strconv.Itoa(g.board.Lines())},
		{"LEVEL", strconv.Itoa(g.Level())},
	}
	for i, row := range rows {
		dst.DrawTextColored(x, y+i*3, row.label, core.ColorGray)
		dst.DrawTextColored(x, y+i*3+1, row.value, core.ColorBrightWhite)
	}

	nextY := y + len(rows)*3
	dst.DrawTextColored(x, nextY, "NEXT", core.ColorGray)
	next := g.pieces.Peek()
	for _, p := range next.Shape().Cells() {
		px := x + p.Col*cellWidth
		dst.SetColored(px, nextY+1+p.Row, blockChar, next.Color())
		dst.SetColored(px+1, nextY+1+p.Row, blockChar, next.Color())
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, well core.Rect) {
	centerX := well.X + well.W/2
	centerY := well.Y + well.H/2

	if g.board.GameOver() {
		g.drawOverlay(dst, centerX, centerY,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.board.Score()),
			"R: restart",
		)
		return
	}

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a centered boxed message.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
