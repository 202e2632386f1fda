package engine

// HasCollision reports whether any occupied cell of t, placed on board,
// lies outside the board or on an occupied board cell. A missing or
// malformed grid on either side counts as a collision.
func HasCollision(board *Grid, t *Tetromino) bool {
	if board == nil || t == nil || !board.Valid() || !t.Grid.Valid() {
		return true
	}
	for r := 0; r < t.Grid.Rows; r++ {
		for c := 0; c < t.Grid.Cols; c++ {
			if !t.Grid.At(r, c).Occupied {
				continue
			}
			row, col := t.Row+r, t.Col+c
			if !board.InBounds(row, col) {
				return true
			}
			if board.At(row, col).Occupied {
				return true
			}
		}
	}
	return false
}

// Merge stamps every occupied cell of t onto board, overwriting what was
// there. Cells outside the board are skipped; missing grids are a no-op.
func Merge(board *Grid, t *Tetromino) {
	if board == nil || t == nil || !board.Valid() || !t.Grid.Valid() {
		return
	}
	for r := 0; r < t.Grid.Rows; r++ {
		for c := 0; c < t.Grid.Cols; c++ {
			src := t.Grid.At(r, c)
			if !src.Occupied {
				continue
			}
			row, col := t.Row+r, t.Col+c
			if board.InBounds(row, col) {
				*board.At(row, col) = *src
			}
		}
	}
}

// ClearLines removes every full row and lets the rows above fall into the
// gap. It scans bottom to top keeping a running shift (full rows found so
// far); each row is copied down by the current shift, then the top shift
// rows are erased. Returns the number of rows removed.
func ClearLines(board *Grid) int {
	if !board.Valid() {
		return 0
	}
	shift := 0
	for row := board.Rows - 1; row >= 0; row-- {
		full := true
		for col := 0; col < board.Cols; col++ {
			b := board.At(row, col)
			if !b.Occupied {
				full = false
			}
			if shift > 0 {
				*board.At(row+shift, col) = *b
			}
		}
		if full {
			shift++
		}
	}
	for row := 0; row < shift; row++ {
		for col := 0; col < board.Cols; col++ {
			board.At(row, col).Erase()
		}
	}
	return shift
}

// LineScore returns the points for clearing n lines at once.
func LineScore(n int) int {
	switch n {
	case 1:
		return 1
	case 2:
		return 4
	case 3:
		return 8
	case 4:
		return 16
	default:
		return 0
	}
}
