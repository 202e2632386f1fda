package engine

import (
	"math/rand"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Shape identifies one of the seven tetromino kinds.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeT
	ShapeO
	ShapeZ
	ShapeS
	ShapeLLeft
	ShapeLRight

	shapeCount = 7
)

// String returns the display name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeT:
		return "T"
	case ShapeO:
		return "O"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeLLeft:
		return "L_LEFT"
	case ShapeLRight:
		return "L_RIGHT"
	default:
		return "Unknown"
	}
}

// Shapes lists every shape in generation order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeT, ShapeO, ShapeZ, ShapeS, ShapeLLeft, ShapeLRight}
}

// cell is a (row, col) position inside a piece's local grid.
type cell struct{ row, col int }

// shapeDef is the spawn layout of a shape inside its minimal bounding square.
type shapeDef struct {
	size  int
	cells [4]cell
}

var shapeTable = [shapeCount]shapeDef{
	ShapeI:      {4, [4]cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	ShapeT:      {3, [4]cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
	ShapeO:      {2, [4]cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
	ShapeZ:      {3, [4]cell{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
	ShapeS:      {3, [4]cell{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
	ShapeLLeft:  {3, [4]cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
	ShapeLRight: {3, [4]cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}}},
}

// Tetromino is a falling piece. Row and Col place the top-left corner of
// its local grid in board coordinates and may be out of range transiently.
type Tetromino struct {
	Shape Shape
	Size  int
	Row   int
	Col   int
	Grid  Grid
}

// NewTetromino builds a piece of the given shape at (0, 0) with every
// occupied cell painted color.
func NewTetromino(shape Shape, color core.RGBA) Tetromino {
	def := shapeTable[shape]
	t := Tetromino{
		Shape: shape,
		Size:  def.size,
		Grid:  NewGrid(def.size, def.size),
	}
	for _, c := range def.cells {
		*t.Grid.At(c.row, c.col) = Block{Occupied: true, Color: color}
	}
	return t
}

// Generate picks a uniformly random shape and a random opaque color with
// each channel in [0, 254].
func Generate(rng *rand.Rand) Tetromino {
	shape := Shape(rng.Intn(shapeCount))
	color := core.Opaque(
		uint8(rng.Intn(0xFF)),
		uint8(rng.Intn(0xFF)),
		uint8(rng.Intn(0xFF)),
	)
	return NewTetromino(shape, color)
}

// Clone returns a deep copy, so moving or rotating the copy never touches
// the original's grid.
func (t Tetromino) Clone() Tetromino {
	t.Grid = t.Grid.Clone()
	return t
}

// Moved returns a copy shifted by (dRow, dCol).
func (t Tetromino) Moved(dRow, dCol int) Tetromino {
	c := t.Clone()
	c.Row += dRow
	c.Col += dCol
	return c
}

// Color returns the color shared by the piece's cells.
func (t *Tetromino) Color() core.RGBA {
	for _, b := range t.Grid.Cells {
		if b.Occupied {
			return b.Color
		}
	}
	return core.RGBA{}
}

// RotateClockwise returns the piece rotated 90 degrees clockwise about the
// center of its local grid: transpose, then reverse column order.
// The O piece is returned unchanged.
func (t Tetromino) RotateClockwise() Tetromino {
	if t.Shape == ShapeO {
		return t.Clone()
	}
	n := t.Size
	rotated := transpose(t.Grid, n)
	out := NewGrid(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			*out.At(row, n-1-col) = *rotated.At(row, col)
		}
	}
	t.Grid = out
	return t
}

// RotateAntiClockwise returns the piece rotated 90 degrees counter-clockwise:
// transpose, then reverse row order. The O piece is returned unchanged.
func (t Tetromino) RotateAntiClockwise() Tetromino {
	if t.Shape == ShapeO {
		return t.Clone()
	}
	n := t.Size
	rotated := transpose(t.Grid, n)
	out := NewGrid(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			*out.At(n-1-row, col) = *rotated.At(row, col)
		}
	}
	t.Grid = out
	return t
}

func transpose(g Grid, n int) Grid {
	out := NewGrid(n, n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			*out.At(col, row) = *g.At(row, col)
		}
	}
	return out
}
