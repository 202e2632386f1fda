package blocks

import (
	"strings"

	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	RoundTicks   int // Running ticks since the round began
	Phase        Phase
	Score        int
	Lines        int
	Level        int
	FallTimer    int
	FallInterval int
	Shape        engine.Shape // Falling piece
	Row          int
	Col          int
	Next         engine.Shape
	Occupied     int      // Locked board cells
	Board        []string // One string per row, '#' for occupied
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		RoundTicks:   g.roundTicks,
		Phase:        g.phase,
		Score:        g.score,
		Lines:        g.lines,
		Level:        g.level,
		FallTimer:    g.fallTimer,
		FallInterval: g.fallInterval,
		Shape:        g.falling.Shape,
		Row:          g.falling.Row,
		Col:          g.falling.Col,
		Next:         g.next.Shape,
	}
	if !g.board.Valid() {
		return s
	}
	s.Occupied = g.board.Occupied()
	s.Board = make([]string, g.board.Rows)
	var sb strings.Builder
	for row := 0; row < g.board.Rows; row++ {
		sb.Reset()
		for col := 0; col < g.board.Cols; col++ {
			if g.board.At(row, col).Occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		s.Board[row] = sb.String()
	}
	return s
}
