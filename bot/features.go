package bot

import "github.com/plus3/tetrimino/tetris"

// Features summarizes the locked cells of a board after a placement. Walls and
// the floor count as filled cells.
type Features struct {
	// rows removed by the placement
	Lines int

	AggregateHeight int
	MaxHeight       int
	Holes           int
	Bumpiness       int
	RowTransitions  int
	ColTransitions  int
	// empty cells with both horizontal neighbors filled
	WellCells int
}

// Measure computes the features of a board with no falling piece.
func Measure(board *tetris.Board) Features {
	w, h := board.Width(), board.Height()
	filled := func(x, y int) bool {
		if x < 0 || x >= w || y >= h {
			return true
		}
		if y < 0 {
			return false
		}
		_, ok := board.FixedColor(x, y)
		return ok
	}

	var f Features
	heights := make([]int, w)
	for x := 0; x < w; x++ {
		top := h
		for y := 0; y < h; y++ {
			if filled(x, y) {
				top = y
				break
			}
		}
		heights[x] = h - top

		for y := top + 1; y < h; y++ {
			if !filled(x, y) {
				f.Holes++
			}
		}

		// column transitions, starting from the empty space above the board
		last := false
		for y := 0; y <= h; y++ {
			cur := filled(x, y)
			if cur != last {
				f.ColTransitions++
			}
			last = cur
		}
	}

	for x, height := range heights {
		f.AggregateHeight += height
		f.MaxHeight = max(f.MaxHeight, height)
		if x > 0 {
			f.Bumpiness += abs(height - heights[x-1])
		}
	}

	for y := 0; y < h; y++ {
		last := true
		for x := 0; x <= w; x++ {
			cur := filled(x, y)
			if cur != last {
				f.RowTransitions++
			}
			last = cur

			if x < w && !cur && filled(x-1, y) && filled(x+1, y) {
				f.WellCells++
			}
		}
	}
	return f
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
