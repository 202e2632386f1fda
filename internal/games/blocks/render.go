package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/glyph"
)

// Layout, in screen cells. Each board cell is two screen cells wide so the
// playfield looks square in a terminal.
const (
	cellW = 2

	boardW = engine.BoardCols*cellW + 2
	boardH = engine.BoardRows + 2

	// The preview holds the next piece at a one-cell offset inside its area.
	previewCells  = 6
	previewOffset = 1
	previewW      = previewCells*cellW + 2
	previewH      = previewCells + 2

	panelGap = 2

	// MinWidth and MinHeight are the smallest screen the layout fits in.
	MinWidth  = boardW + panelGap + previewW
	MinHeight = boardH
)

// layout holds the screen origins computed for one frame.
type layout struct {
	boardX, boardY     int
	panelX, panelY     int
	previewX, previewY int
}

func (g *Game) layout(w, h int) layout {
	x := (w - MinWidth) / 2
	y := (h - MinHeight) / 2
	l := layout{
		boardX: x,
		boardY: y,
		panelX: x + boardW + panelGap,
		panelY: y,
	}
	l.previewX = l.panelX
	l.previewY = l.panelY + 1
	return l
}

// Render draws the current game state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.FillRect(core.NewRect(0, 0, dst.Width(), dst.Height()), g.palette.Background)

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		g.renderTooSmall(dst)
		return
	}

	l := g.layout(dst.Width(), dst.Height())
	g.renderBoard(dst, l)
	g.renderPanel(dst, l)

	switch g.phase {
	case PhasePaused:
		g.renderBanner(dst, l, "PAUSED", "Press Esc or P to resume")
	case PhaseGameOver:
		g.renderBanner(dst, l, "GAME OVER",
			fmt.Sprintf("Score: %d", g.score),
			"Press Space or R to play again")
	}
}

// cellRect maps a board cell to its screen rectangle.
func cellRect(originX, originY, row, col int) core.Rect {
	return core.NewRect(originX+1+col*cellW, originY+1+row, cellW, 1)
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	frame := core.NewRect(l.boardX, l.boardY, boardW, boardH)
	inner := core.NewRect(frame.X+1, frame.Y+1, boardW-2, boardH-2)
	dst.FillRect(inner, g.palette.Board)
	dst.DrawBox(frame, g.palette.Text)

	if !g.board.Valid() {
		return
	}
	for row := 0; row < g.board.Rows; row++ {
		for col := 0; col < g.board.Cols; col++ {
			b := g.board.At(row, col)
			if b.Occupied {
				dst.FillRect(cellRect(l.boardX, l.boardY, row, col), b.Color)
			}
		}
	}
	g.renderPiece(dst, &g.falling, l.boardX, l.boardY, g.falling.Row, g.falling.Col, inner)
}

// renderPiece paints a piece's occupied cells at (row, col) relative to the
// area whose frame starts at (originX, originY), clipped to clip.
func (g *Game) renderPiece(dst *core.Screen, t *engine.Tetromino, originX, originY, row, col int, clip core.Rect) {
	if !t.Grid.Valid() {
		return
	}
	for r := 0; r < t.Size; r++ {
		for c := 0; c < t.Size; c++ {
			b := t.Grid.At(r, c)
			if !b.Occupied {
				continue
			}
			rect := cellRect(originX, originY, row+r, col+c)
			if !clip.Contains(rect.X, rect.Y) {
				continue
			}
			dst.FillRect(rect, b.Color)
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, l layout) {
	dst.DrawText(l.panelX, l.panelY, "NEXT", g.palette.Text)

	frame := core.NewRect(l.previewX, l.previewY, previewW, previewH)
	inner := core.NewRect(frame.X+1, frame.Y+1, previewW-2, previewH-2)
	dst.FillRect(inner, g.palette.Preview)
	dst.DrawBox(frame, g.palette.Text)
	g.renderPiece(dst, &g.next, l.previewX, l.previewY, previewOffset, previewOffset, inner)

	y := l.previewY + previewH + 1
	stats := []struct {
		label string
		value int
	}{
		{"SCORE", g.score},
		{"LINES", g.lines},
		{"LEVEL", g.level},
	}
	for _, s := range stats {
		dst.DrawText(l.panelX, y, fmt.Sprintf("%-6s%8d", s.label, s.value), g.palette.Text)
		y++
	}
}

// renderBanner draws wrapped lines centered over the board.
func (g *Game) renderBanner(dst *core.Screen, l layout, lines ...string) {
	width := boardW - 4
	var wrapped []string
	for _, line := range lines {
		wrapped = append(wrapped, glyph.Wrap(line, width)...)
	}

	top := l.boardY + (boardH-len(wrapped))/2
	band := core.NewRect(l.boardX+1, top-1, boardW-2, len(wrapped)+2)
	dst.FillRect(band, g.palette.Background)
	for i, line := range wrapped {
		x := l.boardX + (boardW-len([]rune(line)))/2
		dst.DrawText(x, top+i, line, g.palette.Text)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := fmt.Sprintf("Window too small (need %dx%d)", MinWidth, MinHeight)
	lines := glyph.Wrap(msg, dst.Width())
	top := (dst.Height() - len(lines)) / 2
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line, g.palette.Text)
	}
}
