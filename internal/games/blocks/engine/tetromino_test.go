package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

var red = core.Opaque(200, 10, 10)

// occupancy returns the occupied (row, col) cells of a local grid in row-major order.
func occupancy(g Grid) []cell {
	var out []cell
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.At(r, c).Occupied {
				out = append(out, cell{r, c})
			}
		}
	}
	return out
}

func TestShapeTable(t *testing.T) {
	tests := []struct {
		shape Shape
		size  int
		cells []cell
	}{
		{ShapeI, 4, []cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{ShapeT, 3, []cell{{0, 0}, {0, 1}, {0, 2}, {1, 1}}},
		{ShapeO, 2, []cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{ShapeZ, 3, []cell{{0, 0}, {0, 1}, {1, 1}, {1, 2}}},
		{ShapeS, 3, []cell{{0, 1}, {0, 2}, {1, 0}, {1, 1}}},
		{ShapeLLeft, 3, []cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}}},
		{ShapeLRight, 3, []cell{{0, 0}, {0, 1}, {0, 2}, {1, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			p := NewTetromino(tc.shape, red)
			assert.Equal(t, tc.size, p.Size)
			assert.Equal(t, tc.size, p.Grid.Rows)
			assert.Equal(t, tc.size, p.Grid.Cols)
			assert.Equal(t, tc.cells, occupancy(p.Grid))
			assert.Equal(t, 0, p.Row)
			assert.Equal(t, 0, p.Col)
		})
	}
}

func TestGenerateInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Shape]bool)

	for i := 0; i < 500; i++ {
		p := Generate(rng)
		seen[p.Shape] = true

		require.Equal(t, shapeTable[p.Shape].size, p.Size)
		require.Equal(t, 4, p.Grid.Occupied())

		color := p.Color()
		assert.Equal(t, uint8(0xFF), color.A)
		assert.Less(t, color.R, uint8(0xFF))
		assert.Less(t, color.G, uint8(0xFF))
		assert.Less(t, color.B, uint8(0xFF))
		for _, b := range p.Grid.Cells {
			if b.Occupied {
				require.Equal(t, color, b.Color)
			}
		}
	}

	assert.Len(t, seen, shapeCount, "all shapes should appear over 500 draws")
}

func TestGenerateDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		assert.Equal(t, Generate(a), Generate(b))
	}
}

func TestRotateClockwiseT(t *testing.T) {
	p := NewTetromino(ShapeT, red).RotateClockwise()

	// Top bar becomes the right column, stem points left.
	assert.Equal(t, []cell{{0, 2}, {1, 1}, {1, 2}, {2, 2}}, occupancy(p.Grid))
}

func TestRotateAntiClockwiseT(t *testing.T) {
	p := NewTetromino(ShapeT, red).RotateAntiClockwise()

	// Top bar becomes the left column, stem points right.
	assert.Equal(t, []cell{{0, 0}, {1, 0}, {1, 1}, {2, 0}}, occupancy(p.Grid))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, shape := range Shapes() {
		t.Run(shape.String(), func(t *testing.T) {
			orig := NewTetromino(shape, red)
			p := orig
			for i := 0; i < 4; i++ {
				p = p.RotateClockwise()
				require.Equal(t, 4, p.Grid.Occupied())
			}
			assert.Equal(t, occupancy(orig.Grid), occupancy(p.Grid))

			q := orig
			for i := 0; i < 4; i++ {
				q = q.RotateAntiClockwise()
			}
			assert.Equal(t, occupancy(orig.Grid), occupancy(q.Grid))
		})
	}
}

func TestRotateOIsNoop(t *testing.T) {
	o := NewTetromino(ShapeO, red)
	o.Row, o.Col = 5, 3

	assert.Equal(t, o, o.RotateClockwise())
	assert.Equal(t, o, o.RotateAntiClockwise())
}

func TestRotateInverse(t *testing.T) {
	for _, shape := range Shapes() {
		p := NewTetromino(shape, red)
		back := p.RotateClockwise().RotateAntiClockwise()
		assert.Equal(t, occupancy(p.Grid), occupancy(back.Grid), shape.String())
	}
}

func TestRotateDoesNotAliasOriginal(t *testing.T) {
	p := NewTetromino(ShapeLLeft, red)
	before := occupancy(p.Grid)

	r := p.RotateClockwise()
	r.Grid.At(0, 0).Occupied = true

	assert.Equal(t, before, occupancy(p.Grid))
}

func TestMovedDoesNotAliasOriginal(t *testing.T) {
	p := NewTetromino(ShapeS, red)
	m := p.Moved(1, -1)

	assert.Equal(t, 1, m.Row)
	assert.Equal(t, -1, m.Col)
	assert.Equal(t, 0, p.Row)

	m.Grid.At(2, 2).Occupied = true
	assert.Equal(t, 4, p.Grid.Occupied())
}
