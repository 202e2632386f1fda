// Package engine implements the block-grid and tetromino rules of the blocks
// game: grids, piece generation and rotation, collision, merging and line
// clearing. It is UI-agnostic and deterministic for a given RNG.
package engine

import "github.com/vovakirdan/tui-blocks/internal/core"

// Board dimensions of the playfield.
const (
	BoardRows = 20
	BoardCols = 10
)

// Block is a single grid cell.
type Block struct {
	Occupied bool
	Color    core.RGBA
}

// Erase resets the block to an empty, colorless cell.
func (b *Block) Erase() {
	*b = Block{}
}

// Grid is a rectangular array of blocks stored row-major:
// index = row*Cols + col, len(Cells) == Rows*Cols.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Block
}

// NewGrid allocates a rows x cols grid of empty blocks.
func NewGrid(rows, cols int) Grid {
	return Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Block, rows*cols),
	}
}

// NewBoard allocates an empty playfield.
func NewBoard() Grid {
	return NewGrid(BoardRows, BoardCols)
}

// At returns the block at (row, col). The caller must check bounds first.
func (g *Grid) At(row, col int) *Block {
	return &g.Cells[row*g.Cols+col]
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Valid reports whether the backing storage matches the dimensions.
func (g *Grid) Valid() bool {
	return g != nil && g.Rows > 0 && g.Cols > 0 && len(g.Cells) == g.Rows*g.Cols
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Block, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Rows: g.Rows, Cols: g.Cols, Cells: cells}
}

// RowFull reports whether every cell of the row is occupied.
func (g *Grid) RowFull(row int) bool {
	for col := 0; col < g.Cols; col++ {
		if !g.At(row, col).Occupied {
			return false
		}
	}
	return true
}

// Occupied returns the number of occupied cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, b := range g.Cells {
		if b.Occupied {
			n++
		}
	}
	return n
}
